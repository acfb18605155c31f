package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/daybook"
	"github.com/etnz/daybook/date"
	"github.com/etnz/daybook/renderer"
	"github.com/google/subcommands"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	id       string
	title    string
	amount   string
	typ      string
	category string
	notes    string
	day      string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify fields of an existing entry" }
func (*editCmd) Usage() string {
	return `dbk edit -id <id> [-title <title>] [-a <amount>] [-type income|expense] [-c <category>] [-n <notes>] [-d <day>]

  Modifies an entry. Only the flags you pass are changed; the entry keeps its
  identity and original timestamp, unless you move it to another day.

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the entry to edit.")
	f.StringVar(&c.title, "title", "", "New title.")
	f.StringVar(&c.amount, "a", "", "New amount expression.")
	f.StringVar(&c.typ, "type", "", "New type: income or expense.")
	f.StringVar(&c.category, "c", "", "New category.")
	f.StringVar(&c.notes, "n", "", "New notes.")
	f.StringVar(&c.day, "d", "", "New day (YYYY-MM-DD).")
}

// patch builds the partial update from the flags that were explicitly set.
func (c *editCmd) patch(f *flag.FlagSet) (daybook.Patch, error) {
	var p daybook.Patch
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "title":
			p.Title = &c.title
		case "a":
			var amount daybook.Amount
			if amount, err = daybook.EvalAmount(c.amount); err == nil {
				p.Amount = &amount
			}
		case "type":
			var typ daybook.Type
			if typ, err = daybook.ParseType(c.typ); err == nil {
				p.Type = &typ
			}
		case "c":
			p.Category = &c.category
		case "n":
			p.Notes = &c.notes
		case "d":
			var day date.Date
			if day, err = date.Parse(c.day); err == nil {
				p.Day = &day
			}
		}
	})
	return p, err
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	p, err := c.patch(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := store.Update(ctx, c.id, p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if daybook.IsValidation(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	if err := CloseStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated: %s\n", renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

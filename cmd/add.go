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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	title    string
	amount   string
	typ      string
	category string
	notes    string
	day      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new entry in the ledger" }
func (*addCmd) Usage() string {
	return `dbk add -title <title> -a <amount> [-type income|expense] [-c <category>] [-n <notes>] [-d <day>]

  Records a new entry. The amount is an arithmetic expression ("12+3.5*2").
  The day defaults to today.

Usage Examples:
$ dbk add -title "coffee" -a 4.20
$ dbk add -title "salary" -a 1000 -type income -c Salary

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the entry.")
	f.StringVar(&c.amount, "a", "", "Amount expression (e.g. \"12+3.5\").")
	f.StringVar(&c.typ, "type", "expense", "Entry type: income or expense.")
	f.StringVar(&c.category, "c", "", "Category. Defaults to "+daybook.DefaultCategory+".")
	f.StringVar(&c.notes, "n", "", "Free-form notes.")
	f.StringVar(&c.day, "d", "", "Day of the entry (YYYY-MM-DD). Defaults to today.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := daybook.ParseType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	var day date.Date
	if c.day != "" {
		if day, err = date.Parse(c.day); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing day: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := store.Create(ctx, daybook.Input{
		Title:    c.title,
		Amount:   c.amount,
		Type:     typ,
		Category: c.category,
		Notes:    c.notes,
		Day:      day,
	})
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

	fmt.Printf("%s (id %s)\n", renderer.Transaction(tx), tx.ID)
	return subcommands.ExitSuccess
}

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

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	day string
	typ string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list ledger entries grouped by day" }
func (*listCmd) Usage() string {
	return `dbk list [-d <day>] [-type income|expense]

  Lists entries grouped by day, newest first. Each day shows its own expense
  total.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Show only this day (YYYY-MM-DD).")
	f.StringVar(&c.typ, "type", "", "Show only entries of this type.")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(daybook.Transaction) bool
	if c.day != "" {
		day, err := date.Parse(c.day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing day: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, daybook.OnDay(day))
	}
	if c.typ != "" {
		typ, err := daybook.ParseType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, daybook.ByType(typ))
	}

	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger := store.Ledger()
	if len(filters) > 0 {
		// Filters compose as an intersection here: apply them one by one.
		view := daybook.NewLedger()
		for _, tx := range ledger.Transactions() {
			keep := true
			for _, filter := range filters {
				if !filter(tx) {
					keep = false
					break
				}
			}
			if keep {
				view.Append(tx)
			}
		}
		ledger = view
	}

	if ledger.Len() == 0 {
		fmt.Println("No entries.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderDays(renderer.NewDayList(ledger)))
	return subcommands.ExitSuccess
}

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

// clearDayCmd holds the flags for the 'clear-day' subcommand.
type clearDayCmd struct {
	day   string
	force bool
}

func (*clearDayCmd) Name() string     { return "clear-day" }
func (*clearDayCmd) Synopsis() string { return "remove every entry of one day" }
func (*clearDayCmd) Usage() string {
	return `dbk clear-day [-d <day>] -f

  Removes every entry recorded on the given day (defaults to today), as one
  atomic batch. Without -f it only lists what would be removed.

`
}

func (c *clearDayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", date.Today().String(), "Day to clear (YYYY-MM-DD).")
	f.BoolVar(&c.force, "f", false, "Actually remove the entries.")
}

func (c *clearDayCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := date.Parse(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing day: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var matching []daybook.Transaction
	for _, tx := range store.Ledger().Transactions(daybook.OnDay(day)) {
		matching = append(matching, tx)
	}
	if len(matching) == 0 {
		fmt.Printf("Nothing recorded on %s.\n", day)
		return subcommands.ExitSuccess
	}

	if !c.force {
		for _, tx := range matching {
			fmt.Printf("%s (id %s)\n", renderer.Transaction(tx), tx.ID)
		}
		fmt.Printf("Would remove %d entries from %s. Re-run with -f to proceed.\n", len(matching), day)
		return subcommands.ExitSuccess
	}

	if err := store.ClearDay(ctx, day); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := CloseStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed %d entries from %s.\n", len(matching), day)
	return subcommands.ExitSuccess
}

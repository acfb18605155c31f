package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/daybook/date"
	"github.com/etnz/daybook/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	day string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the balance, last payday and day's expense" }
func (*summaryCmd) Usage() string {
	return `dbk summary [-d <day>]

  Displays the three headline figures for a day: the cumulative balance, the
  money received on the most recent payday, and the amount spent that day.

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", date.Today().String(), "Day for the summary (YYYY-MM-DD).")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing day: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderSummary(renderer.NewSummary(store.Ledger(), on)))
	return subcommands.ExitSuccess
}

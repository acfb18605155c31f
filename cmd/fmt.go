package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/daybook"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the local ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `dbk fmt

  Rewrites the local ledger blob: entries are normalized (day keys resolved,
  categories defaulted), sorted chronologically, and written back one JSON
  object per line. Remote collections are normalized at load time and need no
  formatting.

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	local, err := daybook.NewDirStore(*localDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open local folder: %v\n", err)
		return subcommands.ExitFailure
	}

	n, err := daybook.FormatLocal(local)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if n == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no local ledger found to format.")
		return subcommands.ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d entries.\n", n)
	return subcommands.ExitSuccess
}

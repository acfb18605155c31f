package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/daybook/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type suggestCmd struct{}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest a category for an entry title" }
func (*suggestCmd) Usage() string {
	return `dbk suggest <title>...

  Asks the Gemini API which category fits the given title and prints it.
  Requires the GEMINI_API_KEY environment variable.

`
}

func (*suggestCmd) SetFlags(_ *flag.FlagSet) {}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a title is required.")
		return subcommands.ExitUsageError
	}
	title := strings.Join(f.Args(), " ")

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	suggester := agent.NewSuggester()
	if err := suggester.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting suggester:", err)
		return subcommands.ExitFailure
	}

	category, err := suggester.Suggest(ctx, title)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(category)
	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/daybook/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// A .env in the working directory can hold DAYBOOK_USER, DAYBOOK_REMOTE,
	// DAYBOOK_TOKEN and GEMINI_API_KEY. Absence is fine.
	godotenv.Load()

	// Shell completion of the subcommand names. Complete returns immediately
	// when not running as a completion hook.
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("dbk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

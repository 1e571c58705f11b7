// Command pft tracks a personal stock portfolio from the command line.
//
// Without arguments it enters an interactive menu; with arguments it
// dispatches one of the verbs (add, remove, list, update, export, topic).
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/stockcorr/pft/cmd"
)

func main() {
	// A .env file may carry the provider API token; missing is fine.
	godotenv.Load()

	// Shell completion for the verbs and app flags. Complete returns
	// immediately unless the shell is asking for completions.
	completion().Complete("pft")

	// No arguments at all: the interactive menu front-end.
	if len(os.Args) == 1 {
		os.Exit(cmd.RunMenu())
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	flags := map[string]complete.Predictor{
		"config-file": predict.Files("*.json"),
		"data-dir":    predict.Dirs("*"),
		"api-token":   predict.Nothing,
	}
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{Args: predict.Something}
	}
	return &complete.Command{Sub: sub, Flags: flags}
}

// Package cmd implements the CLI application to manage the portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/stockcorr/pft"
	"github.com/stockcorr/pft/stockinfo"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the app-level flags.

var configFile = flag.String("config-file", pft.DefaultConfigPath(), "Path to the portfolio configuration file")
var dataDir = flag.String("data-dir", defaultDataDir(), "Directory holding the stock info cache and exports")
var apiToken = flag.String("api-token", "", "Market data API token (defaults to $"+stockinfo.APITokenEnv+")")

// Commands lists all pft subcommands. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&removeCmd{},
	&listCmd{},
	&updateCmd{},
	&exportCmd{},
	&topicCmd{},
}

// defaultDataDir resolves the info cache directory next to the executable,
// like the configuration file, so the tool finds its data regardless of the
// invocation directory.
func defaultDataDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// OpenManager is the central function to build the portfolio manager from
// the app flags. It loads the configuration, creating the default one on
// first run.
func OpenManager() (*pft.Manager, error) {
	token := *apiToken
	if token == "" {
		token = os.Getenv(stockinfo.APITokenEnv)
	}
	svc := stockinfo.New(*dataDir, token)
	return pft.NewManager(pft.NewStore(*configFile), svc)
}

// printMarkdown renders a markdown string to the terminal. When rendering
// fails the raw markdown is printed instead, it is readable enough.
func printMarkdown(md string) {
	out, err := glamour.RenderWithEnvironmentConfig(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

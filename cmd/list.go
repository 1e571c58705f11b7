package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockcorr/pft/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the portfolio with details" }
func (*listCmd) Usage() string {
	return `pft list

  Displays every tracked ticker in stored order with its company, industry,
  sector, sector ETF, market cap and up to five peers. Uses the local info
  cache; run 'pft update' to force-refresh it.
`
}
func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	mgr, err := OpenManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	entries, err := mgr.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ListingMarkdown(renderer.NewListing(entries)))
	return subcommands.ExitSuccess
}

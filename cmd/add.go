package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockcorr/pft"
	"github.com/stockcorr/pft/renderer"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add one or more tickers to the portfolio" }
func (*addCmd) Usage() string {
	return `pft add <ticker> [<ticker>...]

  Adds each ticker to the portfolio, in argument order. The ticker is
  enriched first (company, industry, sector, peers, sector ETF); a ticker
  the provider cannot resolve is not added. Tickers are independent: one
  failure does not stop the others.

Usage Examples:
$ pft add AAPL MSFT
`
}
func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	mgr, err := OpenManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, raw := range f.Args() {
		res, err := mgr.Add(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding %q: %v\n", pft.NormalizeTicker(raw), err)
			status = subcommands.ExitFailure
			continue
		}
		if res.Already {
			fmt.Printf("%s is already in the portfolio\n", res.Ticker)
			continue
		}
		stock := renderer.NewStock(res.Ticker, res.Info)
		printMarkdown(renderer.StockMarkdown(&stock))
		fmt.Printf("Added %s to the portfolio\n", res.Ticker)
	}
	return status
}

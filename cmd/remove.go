package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove one or more tickers from the portfolio" }
func (*removeCmd) Usage() string {
	return `pft remove <ticker> [<ticker>...]

  Removes each ticker from the portfolio, in argument order. Removal is
  case-insensitive; removing an untracked ticker is reported and harmless.

Usage Examples:
$ pft remove GME
`
}
func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		res, err := mgr.Remove(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error removing %q: %v\n", raw, err)
			status = subcommands.ExitFailure
			continue
		}
		if !res.Found {
			fmt.Printf("%s is not in the portfolio\n", res.Ticker)
			continue
		}
		fmt.Printf("Removed %s from the portfolio\n", res.Ticker)
	}
	return status
}

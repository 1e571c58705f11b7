package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "force-refresh the info of all tracked tickers" }
func (*updateCmd) Usage() string {
	return `pft update

  Refreshes every tracked ticker's record from the provider, bypassing the
  local info cache.
`
}
func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	mgr, err := OpenManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	n, err := mgr.UpdateAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating stock info: %v\n", err)
		return subcommands.ExitFailure
	}
	if n == 0 {
		fmt.Println("Portfolio is empty, nothing to update")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Updated info for %d stocks\n", n)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the stock info in a human-readable file" }
func (*exportCmd) Usage() string {
	return `pft export

  Writes every known stock info record to a readable, indented JSON file in
  the data directory and prints its path.
`
}
func (c *exportCmd) SetFlags(f *flag.FlagSet) {}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	mgr, err := OpenManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	path, err := mgr.Export()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting stock info: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported stock info to %s\n", path)
	return subcommands.ExitSuccess
}

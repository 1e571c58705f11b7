package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stockcorr/pft"
	"github.com/stockcorr/pft/renderer"
)

const menuScreen = `
==================================================
 PORTFOLIO MANAGER
==================================================
 1. List portfolio
 2. Add ticker
 3. Remove ticker
 4. Update all stock info
 5. Export stock info
 6. Exit
`

// RunMenu runs the interactive menu loop on stdin/stdout and returns the
// process exit code. It is the front-end used when the tool is invoked
// without arguments.
func RunMenu() int {
	mgr, err := OpenManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return 1
	}
	return runMenu(mgr, os.Stdin, os.Stdout)
}

// runMenu is the loop itself, separated from RunMenu so tests can drive it
// with their own manager and streams. The loop has a single state: show the
// menu, read one selection, run it synchronously, loop. Only the exit option
// (or end of input) leaves it.
func runMenu(mgr *pft.Manager, in io.Reader, out io.Writer) int {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, menuScreen)
		fmt.Fprint(out, "\nSelect option (1-6): ")
		if !scanner.Scan() {
			return 0
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			menuList(mgr, out)
		case "2":
			if ticker, ok := prompt(scanner, out, "Enter ticker to add: "); ok {
				menuAdd(mgr, out, ticker)
			}
		case "3":
			if ticker, ok := prompt(scanner, out, "Enter ticker to remove: "); ok {
				menuRemove(mgr, out, ticker)
			}
		case "4":
			menuUpdate(mgr, out)
		case "5":
			menuExport(mgr, out)
		case "6":
			fmt.Fprintln(out, "Goodbye!")
			return 0
		default:
			fmt.Fprintln(out, "Invalid option")
		}
	}
}

// prompt reads one line of input. An empty line cancels the action.
func prompt(scanner *bufio.Scanner, out io.Writer, msg string) (string, bool) {
	fmt.Fprint(out, msg)
	if !scanner.Scan() {
		return "", false
	}
	line := strings.TrimSpace(scanner.Text())
	return line, line != ""
}

func menuList(mgr *pft.Manager, out io.Writer) {
	entries, err := mgr.List()
	if err != nil {
		fmt.Fprintf(out, "Error listing portfolio: %v\n", err)
		return
	}
	fmt.Fprint(out, renderer.ListingMarkdown(renderer.NewListing(entries)))
}

func menuAdd(mgr *pft.Manager, out io.Writer, ticker string) {
	res, err := mgr.Add(ticker)
	if err != nil {
		fmt.Fprintf(out, "Error adding %q: %v\n", pft.NormalizeTicker(ticker), err)
		return
	}
	if res.Already {
		fmt.Fprintf(out, "%s is already in the portfolio\n", res.Ticker)
		return
	}
	stock := renderer.NewStock(res.Ticker, res.Info)
	fmt.Fprint(out, renderer.StockMarkdown(&stock))
	fmt.Fprintf(out, "Added %s to the portfolio\n", res.Ticker)
}

func menuRemove(mgr *pft.Manager, out io.Writer, ticker string) {
	res, err := mgr.Remove(ticker)
	if err != nil {
		fmt.Fprintf(out, "Error removing %q: %v\n", ticker, err)
		return
	}
	if !res.Found {
		fmt.Fprintf(out, "%s is not in the portfolio\n", res.Ticker)
		return
	}
	fmt.Fprintf(out, "Removed %s from the portfolio\n", res.Ticker)
}

func menuUpdate(mgr *pft.Manager, out io.Writer) {
	n, err := mgr.UpdateAll()
	if err != nil {
		fmt.Fprintf(out, "Error updating stock info: %v\n", err)
		return
	}
	if n == 0 {
		fmt.Fprintln(out, "Portfolio is empty, nothing to update")
		return
	}
	fmt.Fprintf(out, "Updated info for %d stocks\n", n)
}

func menuExport(mgr *pft.Manager, out io.Writer) {
	path, err := mgr.Export()
	if err != nil {
		fmt.Fprintf(out, "Error exporting stock info: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Exported stock info to %s\n", path)
}

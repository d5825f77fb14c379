// Package cmd implements the CLI application to maintain and analyze the
// transaction ledger.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	mint "github.com/jpjpjp/analyze-mint-transactions"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&promoteCmd{}, "ledger")
	c.Register(&splitAccountsCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")

	c.Register(&extractCmd{}, "analysis")
	c.Register(&categoriesCmd{}, "analysis")
	c.Register(&assistCmd{}, "analysis")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var transactionsFile = flag.String("transactions-file", "transactions.csv", "Path to the transactions ledger (CSV)")
var groupsFile = flag.String("groups-file", "spending_groups.csv", "Path to the spending group definitions (CSV)")
var exclusionsFile = flag.String("exclusions-file", "excluded_groups.csv", "Path to the excluded groups list (CSV)")

// loadLedger reads the current ledger, preferring today's snapshot when one
// exists so a reviewed-but-unpromoted merge is what later commands see.
func loadLedger() (*mint.Ledger, error) {
	return mint.ReadLedgerFile(mint.LatestSnapshot(*transactionsFile, mint.Today()))
}

// loadGroupedLedger reads the ledger and stamps spending groups on it.
func loadGroupedLedger() (*mint.Ledger, []mint.Exclusion, error) {
	l, err := loadLedger()
	if err != nil {
		return nil, nil, err
	}
	gm, err := mint.LoadGroupMap(*groupsFile)
	if err != nil {
		return nil, nil, err
	}
	l.AssignGroups(gm)
	exclusions, err := mint.LoadExclusionList(*exclusionsFile)
	if err != nil {
		return nil, nil, err
	}
	return l, exclusions, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot run (no TTY, unknown style).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// markdownTransactions renders a transaction list as a markdown table.
func markdownTransactions(title string, txs []mint.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("| Date | Description | Category | Account | Amount |\n|---|---|---|---|---:|\n")
	for _, t := range txs {
		amount := t.Amount.String()
		if t.Direction == mint.Credit {
			amount = "+" + amount
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", t.Date, t.Description, t.Category, t.AccountName, amount)
	}
	return b.String()
}

// promptResolver asks the user on the terminal, once per conflict.
type promptResolver struct {
	in  *bufio.Reader
	out *os.File
}

func newPromptResolver() *promptResolver {
	return &promptResolver{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (p *promptResolver) Resolve(ctx context.Context, c mint.Conflict) (mint.Resolution, error) {
	fmt.Fprintf(p.out, "\nPossible duplicate transaction:\n  new:      %s\n", c.Incoming)
	for _, cand := range c.Candidates {
		fmt.Fprintf(p.out, "  existing: %s\n", cand)
	}
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprint(p.out, "(O)verwrite, (A)dd as new, or (I)gnore? ")
		line, err := p.in.ReadString('\n')
		if err != nil {
			return 0, err
		}
		r, err := mint.ParseResolution(strings.ToLower(strings.TrimSpace(line)))
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return r, nil
	}
}

// resolverFromFlag maps the -assume flag to a resolver, empty meaning the
// interactive prompt.
func resolverFromFlag(assume string) (mint.Resolver, error) {
	if assume == "" {
		return newPromptResolver(), nil
	}
	r, err := mint.ParseResolution(assume)
	if err != nil {
		return nil, err
	}
	return mint.Assume(r), nil
}

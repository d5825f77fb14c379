package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	mint "github.com/jpjpjp/analyze-mint-transactions"
)

type splitAccountsCmd struct {
	accounts string
	out      string
}

func (*splitAccountsCmd) Name() string { return "split-accounts" }
func (*splitAccountsCmd) Synopsis() string {
	return "move the transactions of some accounts into their own ledger"
}
func (*splitAccountsCmd) Usage() string {
	return `amt split-accounts -accounts <name,name,...> [-out <file>]

  Splits the ledger in two by account name: the listed accounts are written
  to their own file and removed from the main ledger. Useful when a ledger
  mixes in somebody else's accounts.
`
}

func (p *splitAccountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.accounts, "accounts", "", "Comma-separated account names to split out.")
	f.StringVar(&p.out, "out", "", "Destination file. Defaults to <ledger>-split.csv.")
}

func (p *splitAccountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.accounts == "" {
		fmt.Fprintln(os.Stderr, "-accounts is required")
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var names []string
	for _, n := range strings.Split(p.accounts, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	mine, theirs := ledger.Partition(mint.NewAccountSet(names...))
	if theirs.Len() == 0 {
		fmt.Fprintf(os.Stderr, "no transactions found for accounts %s\n", p.accounts)
		return subcommands.ExitFailure
	}

	out := p.out
	if out == "" {
		out = mint.SnapshotPath(*transactionsFile, mint.Today())
		out = strings.Replace(out, mint.Today().String(), "split", 1)
	}
	of, err := os.Create(out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer of.Close()
	if err := mint.EncodeLedger(of, theirs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	path, err := mint.WriteSnapshot(*transactionsFile, mint.Today(), mine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Moved %d transactions to %s, kept %d in %s\n", theirs.Len(), out, mine.Len(), path)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	mint "github.com/jpjpjp/analyze-mint-transactions"
)

type promoteCmd struct {
	date string
}

func (*promoteCmd) Name() string     { return "promote" }
func (*promoteCmd) Synopsis() string { return "accept a reviewed snapshot as the current ledger" }
func (*promoteCmd) Usage() string {
	return `amt promote [-d <date>]

  Replaces the ledger with the dated snapshot a previous "amt add" wrote,
  today's by default.
`
}

func (p *promoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Snapshot date to promote. Defaults to today.")
}

func (p *promoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := mint.Today()
	if p.date != "" {
		var err error
		on, err = mint.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	if err := mint.Promote(*transactionsFile, on); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Promoted snapshot of %s to %s\n", on, *transactionsFile)
	return subcommands.ExitSuccess
}

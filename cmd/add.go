package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"

	mint "github.com/jpjpjp/analyze-mint-transactions"
	"github.com/jpjpjp/analyze-mint-transactions/lunchmoney"
)

const tokenEnv = "LUNCHMONEY_API_TOKEN"

type addCmd struct {
	source         string
	file           string
	assume         string
	labelOverride  bool
	skipCategories string
	lookback       int
	cacheFile      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "merge a new transaction export into the ledger" }
func (*addCmd) Usage() string {
	return `amt add -source <mint|empower|lunchmoney> [-file <export>] [-assume <overwrite|add|ignore>]

  Normalizes a new export and merges it into the ledger. Ambiguous records
  prompt on the terminal unless -assume picks an answer for all of them.
  The merged ledger is written to a dated snapshot for review; accept it
  with "amt promote".
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.source, "source", "mint", "Export format: mint, empower or lunchmoney.")
	f.StringVar(&p.file, "file", "", "Export file to merge. Unused for lunchmoney.")
	f.StringVar(&p.assume, "assume", "", "Resolve every conflict the same way instead of prompting.")
	f.BoolVar(&p.labelOverride, "label-override", false, "Let a single label replace the exported category (empower).")
	f.StringVar(&p.skipCategories, "skip-categories", "", "Comma-separated categories the label override leaves alone.")
	f.IntVar(&p.lookback, "lookback", 14, "Days before the newest ledger transaction to fetch (lunchmoney).")
	f.StringVar(&p.cacheFile, "cache", "lunchmoney-cache.json", "Fetch cache file; delete it to re-fetch (lunchmoney).")
}

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	source, err := mint.ParseSource(p.source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	resolver, err := resolverFromFlag(p.assume)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no ledger at %s yet, starting a new one", *transactionsFile)
		ledger, err = mint.NewLedger(), nil
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	incoming, status := p.normalize(ctx, ledger, source)
	if status != subcommands.ExitSuccess {
		return status
	}

	report, err := ledger.Merge(ctx, incoming, resolver, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	path, err := mint.WriteSnapshot(*transactionsFile, mint.Today(), ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(report)
	fmt.Printf("Wrote %s\n", path)
	if path != *transactionsFile {
		fmt.Println(`Review it, then run "amt promote" to make it the current ledger.`)
	}
	return subcommands.ExitSuccess
}

// normalize turns the chosen source into canonical transactions.
func (p *addCmd) normalize(ctx context.Context, ledger *mint.Ledger, source mint.Source) ([]mint.Transaction, subcommands.ExitStatus) {
	if source == mint.SourceLunchMoney {
		return p.fetchLunchMoney(ctx, ledger)
	}
	if p.file == "" {
		fmt.Fprintf(os.Stderr, "-file is required for source %s\n", source)
		return nil, subcommands.ExitUsageError
	}
	f, err := os.Open(p.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitFailure
	}
	defer f.Close()
	policy := mint.LabelPolicy{Override: p.labelOverride}
	if p.skipCategories != "" {
		policy.SkipCategories = strings.Split(p.skipCategories, ",")
	}
	incoming, err := mint.Normalize(f, source, policy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitFailure
	}
	return incoming, subcommands.ExitSuccess
}

func (p *addCmd) fetchLunchMoney(ctx context.Context, ledger *mint.Ledger) ([]mint.Transaction, subcommands.ExitStatus) {
	token := os.Getenv(tokenEnv)
	if token == "" {
		fmt.Fprintf(os.Stderr, "set %s to fetch from lunchmoney\n", tokenEnv)
		return nil, subcommands.ExitUsageError
	}
	start := lunchmoney.Lookback(ledger, p.lookback)
	raw, err := lunchmoney.ReadOrFetch(ctx, lunchmoney.NewClient(token), start, mint.Today(), p.cacheFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitFailure
	}
	incoming, err := lunchmoney.Normalize(raw)
	var pending *mint.ReviewPendingError
	if errors.As(err, &pending) {
		fmt.Fprintln(os.Stderr, pending)
		fmt.Fprintf(os.Stderr, "then delete %s and run add again\n", p.cacheFile)
		return nil, subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitFailure
	}
	return incoming, subcommands.ExitSuccess
}

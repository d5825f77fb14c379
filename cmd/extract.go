package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	mint "github.com/jpjpjp/analyze-mint-transactions"
)

type extractCmd struct {
	kind    string
	year    int
	outDir  string
	details string
	future  bool
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "extract yearly spending and income reports" }
func (*extractCmd) Usage() string {
	return `amt extract [-kind <spending|income|both>] [-year <yyyy>] [-out <dir>]

  Groups the ledger, extracts per-year spending and income ledgers and
  writes them with a year-by-year group summary. Refunds count against
  their group's spending and net-income groups move to the income side.
`
}

func (p *extractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "kind", "both", "What to extract: spending, income or both.")
	f.IntVar(&p.year, "year", 0, "Extract a single year. Defaults to every year in the ledger.")
	f.StringVar(&p.outDir, "out", ".", "Directory for the extracted CSV files.")
	f.StringVar(&p.details, "details", "", "Also show the category breakdown of this spending group.")
	f.BoolVar(&p.future, "future", false, "Estimate next year's spending from past complete years.")
}

func (p *extractCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.kind != "spending" && p.kind != "income" && p.kind != "both" {
		fmt.Fprintf(os.Stderr, "unknown kind %q\n", p.kind)
		return subcommands.ExitUsageError
	}
	ledger, exclusions, err := loadGroupedLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.kind == "spending" || p.kind == "both" {
		if err := p.extract(ledger, exclusions, "spending", (*mint.Ledger).ExtractSpending); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if p.kind == "income" || p.kind == "both" {
		if err := p.extract(ledger, exclusions, "income", (*mint.Ledger).ExtractIncome); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

type extractFunc func(*mint.Ledger, []mint.Exclusion, int, io.Writer) (*mint.Ledger, error)

func (p *extractCmd) extract(ledger *mint.Ledger, exclusions []mint.Exclusion, kind string, fn extractFunc) error {
	years := ledger.Years()
	if p.year != 0 {
		years = []int{p.year}
	}
	byYear := make(map[int]*mint.Ledger, len(years))
	for _, year := range years {
		extracted, err := fn(ledger, exclusions, year, os.Stdout)
		if err != nil {
			return err
		}
		byYear[year] = extracted
		path := filepath.Join(p.outDir, fmt.Sprintf("%s-%d.csv", kind, year))
		of, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := mint.EncodeLedger(of, extracted); err != nil {
			of.Close()
			return err
		}
		if err := of.Close(); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	}

	summary := mint.SummarizeByGroup(byYear)
	path := filepath.Join(p.outDir, kind+"-summary.csv")
	of, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := summary.EncodeCSV(of); err != nil {
		of.Close()
		return err
	}
	if err := of.Close(); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)

	printMarkdown(summary.Markdown(fmt.Sprintf("Yearly %s by group", kind)))
	if p.details != "" {
		for _, year := range years {
			printMarkdown(fmt.Sprintf("Year %d\n\n%s", year, mint.CategoryDetails(byYear[year], p.details)))
		}
	}
	if p.future && kind == "spending" {
		all := ledger.Years()
		if len(all) > 1 {
			this := all[len(all)-1]
			estimate := mint.FutureSpending(summary, all[0], this)
			printMarkdown(estimate.Markdown(fmt.Sprintf("Estimated %d spending from past years", this)))
		}
	}
	return nil
}

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

type categoriesCmd struct {
	ungrouped bool
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the ledger's categories and their groups" }
func (*categoriesCmd) Usage() string {
	return `amt categories [-ungrouped]

  Lists every category seen in the ledger with the spending group it maps
  to. With -ungrouped, lists only categories missing from the group
  definitions, which fall back to a group of their own name.
`
}

func (p *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.ungrouped, "ungrouped", false, "Show only categories without a group definition.")
}

func (p *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	gm, err := mint.LoadGroupMap(*groupsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("| Category | Spending Group |\n|---|---|\n")
	var shown int
	for _, category := range ledger.Categories() {
		_, defined := gm[category]
		if p.ungrouped && defined {
			continue
		}
		group := gm.Group(category)
		if !defined {
			group += " (default)"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", category, group)
		shown++
	}
	if p.ungrouped && shown == 0 {
		fmt.Println("Every category has a spending group.")
		return subcommands.ExitSuccess
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

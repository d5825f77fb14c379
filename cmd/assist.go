package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/subcommands"

	mint "github.com/jpjpjp/analyze-mint-transactions"
	"github.com/jpjpjp/analyze-mint-transactions/advisor"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "suggest spending groups for ungrouped categories" }
func (*assistCmd) Usage() string {
	return `amt assist

  Asks Gemini to propose a spending group for every category missing from
  the group definitions, reusing the existing groups where possible. The
  suggestions are printed for review, nothing is written.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (p *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var ungrouped []string
	for _, category := range ledger.Categories() {
		if _, defined := gm[category]; !defined {
			ungrouped = append(ungrouped, category)
		}
	}
	if len(ungrouped) == 0 {
		fmt.Println("Every category has a spending group.")
		return subcommands.ExitSuccess
	}
	groups := make(map[string]bool)
	for _, g := range gm {
		groups[g] = true
	}
	existing := make([]string, 0, len(groups))
	for g := range groups {
		existing = append(existing, g)
	}
	sort.Strings(existing)

	a, err := advisor.New(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	suggestions, err := a.SuggestGroups(ctx, ungrouped, existing)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("# Suggested spending groups\n\n| Category | Suggested Group |\n|---|---|\n")
	for _, category := range ungrouped {
		group, ok := suggestions[category]
		if !ok {
			group = "(no suggestion)"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", category, group)
	}
	printMarkdown(b.String())
	fmt.Printf("Add the ones you agree with to %s.\n", *groupsFile)
	return subcommands.ExitSuccess
}

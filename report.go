package mint

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// GroupSummary accumulates per-group totals across years. Totals are signed
// contributions, so refund and reversed records subtract naturally.
type GroupSummary struct {
	totals map[string]map[int]decimal.Decimal
}

// NewGroupSummary returns an empty summary.
func NewGroupSummary() *GroupSummary {
	return &GroupSummary{totals: make(map[string]map[int]decimal.Decimal)}
}

// Add accumulates one transaction's contribution under its spending group
// for the given year.
func (s *GroupSummary) Add(year int, t Transaction) {
	byYear, ok := s.totals[t.SpendingGroup]
	if !ok {
		byYear = make(map[int]decimal.Decimal)
		s.totals[t.SpendingGroup] = byYear
	}
	byYear[year] = byYear[year].Add(t.Contribution())
}

// Groups returns the group names in sorted order.
func (s *GroupSummary) Groups() []string {
	groups := make([]string, 0, len(s.totals))
	for g := range s.totals {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Years returns every year any group has a total for, ascending.
func (s *GroupSummary) Years() []int {
	seen := make(map[int]bool)
	for _, byYear := range s.totals {
		for y := range byYear {
			seen[y] = true
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Total returns the group's total for one year.
func (s *GroupSummary) Total(group string, year int) Money {
	return Money{value: s.totals[group][year]}
}

// YearTotal returns the sum of all groups for one year.
func (s *GroupSummary) YearTotal(year int) Money {
	var sum decimal.Decimal
	for _, byYear := range s.totals {
		sum = sum.Add(byYear[year])
	}
	return Money{value: sum}
}

// Average returns the mean yearly total for the group over the given years.
func (s *GroupSummary) Average(group string, years []int) Money {
	if len(years) == 0 {
		return Money{}
	}
	var sum decimal.Decimal
	for _, y := range years {
		sum = sum.Add(s.totals[group][y])
	}
	return Money{value: sum.Div(decimal.NewFromInt(int64(len(years))))}
}

// SummarizeByGroup folds per-year ledgers into one group summary.
func SummarizeByGroup(byYear map[int]*Ledger) *GroupSummary {
	s := NewGroupSummary()
	for year, l := range byYear {
		for _, t := range l.Transactions() {
			s.Add(year, t)
		}
	}
	return s
}

// EncodeCSV writes the summary as a year-column CSV: one row per group, one
// "YYYY Amount" column per year, and a trailing Total row.
func (s *GroupSummary) EncodeCSV(w io.Writer) error {
	years := s.Years()
	header := []string{colGroup}
	for _, y := range years {
		header = append(header, fmt.Sprintf("%d Amount", y))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, g := range s.Groups() {
		row := []string{g}
		for _, y := range years {
			row = append(row, s.Total(g, y).Cell())
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	total := []string{"Total"}
	for _, y := range years {
		total = append(total, s.YearTotal(y).Cell())
	}
	if err := cw.Write(total); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// Markdown renders the summary as a markdown table.
func (s *GroupSummary) Markdown(title string) string {
	years := s.Years()
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("| Spending Group |")
	for _, y := range years {
		fmt.Fprintf(&b, " %d |", y)
	}
	b.WriteString("\n|---|")
	for range years {
		b.WriteString("---:|")
	}
	b.WriteString("\n")
	for _, g := range s.Groups() {
		fmt.Fprintf(&b, "| %s |", g)
		for _, y := range years {
			fmt.Fprintf(&b, " %s |", s.Total(g, y))
		}
		b.WriteString("\n")
	}
	b.WriteString("| **Total** |")
	for _, y := range years {
		fmt.Fprintf(&b, " %s |", s.YearTotal(y))
	}
	b.WriteString("\n")
	return b.String()
}

// ExtractAllSpending runs the spending extraction for every year the ledger
// covers and returns the per-year spending ledgers.
func (l *Ledger) ExtractAllSpending(exclusions []Exclusion, report io.Writer) (map[int]*Ledger, error) {
	byYear := make(map[int]*Ledger)
	for _, year := range l.Years() {
		s, err := l.ExtractSpending(exclusions, year, report)
		if err != nil {
			return nil, err
		}
		byYear[year] = s
	}
	return byYear, nil
}

// ExtractAllIncome runs the income extraction for every year the ledger
// covers and returns the per-year income ledgers.
func (l *Ledger) ExtractAllIncome(exclusions []Exclusion, report io.Writer) (map[int]*Ledger, error) {
	byYear := make(map[int]*Ledger)
	for _, year := range l.Years() {
		s, err := l.ExtractIncome(exclusions, year, report)
		if err != nil {
			return nil, err
		}
		byYear[year] = s
	}
	return byYear, nil
}

// FutureSpending estimates a yearly budget per group: the average of each
// group's totals over the complete years from firstYear up to but not
// including thisYear. Groups named in exclude are left out.
func FutureSpending(s *GroupSummary, firstYear, thisYear int, exclude ...string) *GroupSummary {
	var years []int
	for _, y := range s.Years() {
		if y >= firstYear && y < thisYear {
			years = append(years, y)
		}
	}
	out := NewGroupSummary()
	for _, g := range s.Groups() {
		skip := false
		for _, x := range exclude {
			if g == x {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		avg := s.Average(g, years)
		out.totals[g] = map[int]decimal.Decimal{thisYear: avg.Decimal()}
	}
	return out
}

// CategoryDetails renders, as a markdown table, the per-category totals of
// one spending group in one ledger, largest first.
func CategoryDetails(l *Ledger, group string) string {
	totals := make(map[string]decimal.Decimal)
	for _, t := range l.Transactions(ByGroup(group)) {
		totals[t.Category] = totals[t.Category].Add(t.Contribution())
	}
	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if !totals[categories[i]].Equal(totals[categories[j]]) {
			return totals[categories[i]].GreaterThan(totals[categories[j]])
		}
		return categories[i] < categories[j]
	})
	var b strings.Builder
	fmt.Fprintf(&b, "## %s by category\n\n| Category | Amount |\n|---|---:|\n", group)
	for _, c := range categories {
		fmt.Fprintf(&b, "| %s | %s |\n", c, Money{value: totals[c]})
	}
	return b.String()
}

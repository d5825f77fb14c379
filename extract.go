package mint

import (
	"fmt"
	"io"
)

// yearWindow returns the ledger restricted to transactions strictly after
// Dec 31 of the previous year and strictly before Jan 1 of the next one.
func (l *Ledger) yearWindow(year int) *Ledger {
	after := NewDate(year-1, 12, 31)
	before := NewDate(year+1, 1, 1)
	w := &Ledger{}
	for _, t := range l.Transactions() {
		if t.Date.After(after) && t.Date.Before(before) {
			w.transactions = append(w.transactions, t)
		}
	}
	return w
}

// removeExcluded drops the transactions of every excluded group, writing a
// short payments/income breakdown for each group unless its exclusion hides
// it.
func (l *Ledger) removeExcluded(exclusions []Exclusion, report io.Writer) *Ledger {
	excluded := make(map[string]Exclusion, len(exclusions))
	for _, e := range exclusions {
		excluded[e.Group] = e
	}
	out := &Ledger{}
	for _, t := range l.Transactions() {
		if _, ok := excluded[t.SpendingGroup]; !ok {
			out.transactions = append(out.transactions, t)
		}
	}
	for _, e := range exclusions {
		if e.HideAnalysis {
			continue
		}
		payments := l.directionTotal(e.Group, Debit)
		income := l.directionTotal(e.Group, Credit)
		if payments.IsZero() && income.IsZero() {
			continue
		}
		fmt.Fprintf(report, "Excluded group **%s**: payments of %s against income of %s\n", e.Group, payments, income)
	}
	return out
}

// ExtractSpending returns the spending ledger for one calendar year: the
// in-window transactions minus excluded groups, with every credit reversed
// into a refund debit so that each group's total is the sum of its
// contributions. The ledger must be grouped first.
//
// The report writer, when non-nil, receives the per-group exclusion
// breakdowns and a line per reversed refund.
func (l *Ledger) ExtractSpending(exclusions []Exclusion, year int, report io.Writer) (*Ledger, error) {
	if report == nil {
		report = io.Discard
	}
	if !l.grouped() {
		return nil, fmt.Errorf("cannot extract %d spending: ledger has ungrouped transactions", year)
	}
	out := l.yearWindow(year).removeExcluded(exclusions, report)
	var refunds int
	for i := range out.transactions {
		t := &out.transactions[i]
		if t.Direction != Credit {
			continue
		}
		fmt.Fprintf(report, "Treating as a refund in **%s**: %s\n", t.SpendingGroup, t)
		t.Direction = Debit
		t.Reversed = true
		refunds++
	}
	if refunds > 0 {
		fmt.Fprintf(report, "Reversed %d credits into refund debits for %d\n", refunds, year)
	}
	return out, nil
}

// ExtractIncome returns the income ledger for one calendar year. Groups
// whose payments meet or exceed their income are pure spending and dropped
// entirely; in the remaining net-income groups every debit is reversed so
// the group total is the net amount received. The "Income" group itself is
// exempt from both tests and keeps its records as they are. The ledger must
// be grouped first.
func (l *Ledger) ExtractIncome(exclusions []Exclusion, year int, report io.Writer) (*Ledger, error) {
	if report == nil {
		report = io.Discard
	}
	if !l.grouped() {
		return nil, fmt.Errorf("cannot extract %d income: ledger has ungrouped transactions", year)
	}
	window := l.yearWindow(year).removeExcluded(exclusions, report)

	// Decide, per group, whether it nets to income. The "Income" group is
	// income by definition; for any other group, payments >= income means
	// it belongs on the spending side and is left out here.
	drop := make(map[string]bool)
	for _, g := range window.Groups() {
		if g == "Income" {
			continue
		}
		payments := window.directionTotal(g, Debit)
		income := window.directionTotal(g, Credit)
		if payments.GreaterThanOrEqual(income) {
			drop[g] = true
			continue
		}
		fmt.Fprintf(report, "Group **%s** nets to income: %s received against %s paid\n", g, income, payments)
	}

	out := &Ledger{}
	for _, t := range window.Transactions() {
		if drop[t.SpendingGroup] {
			continue
		}
		// Income-group debits keep their direction and still add to the
		// group's total; only offsetting groups get their debits reversed.
		if t.Direction == Debit && t.SpendingGroup != "Income" {
			t.Direction = Credit
			t.Reversed = true
		}
		out.transactions = append(out.transactions, t)
	}
	return out, nil
}

package mint

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger represents the full collection of canonical transactions for one
// party (the primary user or a third party).
//
// For display and persistence a ledger is kept sorted by date descending;
// for merge purposes it is logically a set.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	l.Append(txs...)
	return l
}

// Append appends transactions to this ledger and restores the
// date-descending order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator over the ledger's transactions in date
// descending order. When filters are given, a transaction is yielded if any
// filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// stableSort sorts the ledger by transaction date descending. The sort is
// stable, so transactions on the same day keep their relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.After(l.transactions[j].Date)
	})
}

// candidates returns the indices of transactions sharing the given natural key.
func (l *Ledger) candidates(k Key) []int {
	var idx []int
	for i, tx := range l.transactions {
		if tx.Key() == k {
			idx = append(idx, i)
		}
	}
	return idx
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date // sorted date descending
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// Years returns the distinct calendar years present in the ledger, ascending.
func (l *Ledger) Years() []int {
	visited := make(map[int]struct{})
	for _, tx := range l.transactions {
		visited[tx.Date.Year()] = struct{}{}
	}
	years := slices.Collect(maps.Keys(visited))
	slices.Sort(years)
	return years
}

// Categories returns the distinct categories present in the ledger, sorted.
func (l *Ledger) Categories() []string {
	visited := make(map[string]struct{})
	for _, tx := range l.transactions {
		visited[tx.Category] = struct{}{}
	}
	categories := slices.Collect(maps.Keys(visited))
	slices.Sort(categories)
	return categories
}

// Groups returns the distinct spending groups present in the ledger, sorted.
// It is empty until AssignGroups has run.
func (l *Ledger) Groups() []string {
	visited := make(map[string]struct{})
	for _, tx := range l.transactions {
		if tx.SpendingGroup != "" {
			visited[tx.SpendingGroup] = struct{}{}
		}
	}
	groups := slices.Collect(maps.Keys(visited))
	slices.Sort(groups)
	return groups
}

// grouped reports whether every transaction carries a spending group.
func (l *Ledger) grouped() bool {
	for _, tx := range l.transactions {
		if tx.SpendingGroup == "" {
			return false
		}
	}
	return true
}

// directionTotal sums the amounts of the group's transactions with the given
// direction.
func (l *Ledger) directionTotal(group string, dir Direction) Money {
	var total Money
	for _, tx := range l.transactions {
		if tx.SpendingGroup == group && tx.Direction == dir {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalAmount sums the amounts of all transactions, irrespective of direction.
func (l *Ledger) TotalAmount() Money {
	var total Money
	for _, tx := range l.transactions {
		total = total.Add(tx.Amount)
	}
	return total
}

// ByAccount returns a predicate that filters transactions by account name.
func ByAccount(account string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.AccountName == account }
}

// ByGroup returns a predicate that filters transactions by spending group.
func ByGroup(group string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.SpendingGroup == group }
}

// ByYear returns a predicate that filters transactions by calendar year.
func ByYear(year int) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Date.Year() == year }
}

// ByDirection returns a predicate that filters transactions by direction.
func ByDirection(dir Direction) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Direction == dir }
}

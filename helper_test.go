package mint

import "time"

// day builds a date without error plumbing in test tables.
func day(y int, m time.Month, d int) Date { return NewDate(y, m, d) }

// debit builds a spending transaction with the fields tests care about.
func debit(on Date, desc string, amount float64, category, account string) Transaction {
	return Transaction{
		Date:        on,
		Description: desc,
		Amount:      M(amount),
		Direction:   Debit,
		Category:    category,
		AccountName: account,
	}
}

// credit builds an inflow transaction.
func credit(on Date, desc string, amount float64, category, account string) Transaction {
	t := debit(on, desc, amount, category, account)
	t.Direction = Credit
	return t
}

// grouped stamps a spending group on a transaction.
func grouped(t Transaction, group string) Transaction {
	t.SpendingGroup = group
	return t
}

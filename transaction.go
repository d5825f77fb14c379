package mint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Direction is the debit/credit polarity of a transaction. The sign of a
// transaction is carried here; [Transaction.Amount] is always a magnitude.
type Direction int

const (
	// Debit is an outflow.
	Debit Direction = iota
	// Credit is an inflow.
	Credit
)

func (d Direction) String() string {
	switch d {
	case Debit:
		return "debit"
	case Credit:
		return "credit"
	default:
		return "unknown"
	}
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Debit {
		return Credit
	}
	return Debit
}

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit":
		return Debit, nil
	case "credit":
		return Credit, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is the canonical record of the ledger.
//
// A transaction is immutable once written to a snapshot, with two exceptions:
// the reconciliation engine may overwrite Description and Category when the
// user chooses to, and the extractor may flip Direction (setting Reversed)
// when reclassifying refunds and income-offsetting expenses.
type Transaction struct {
	Date                Date
	Description         string
	OriginalDescription string
	Amount              Money // non-negative magnitude
	Direction           Direction
	Category            string
	SecondaryCategory   string // original category preserved when a label override replaced it
	AccountName         string
	Labels              []string
	Notes               string

	// SpendingGroup is derived; it is empty until AssignGroups has run.
	SpendingGroup string

	// Reversed is set by the extractor when it flips the direction of a
	// refund (spending view) or an income-offsetting expense (income view).
	// A reversed transaction contributes negatively to its group's total;
	// the stored Amount stays a non-negative magnitude.
	Reversed bool
}

// Key is the natural key used for duplicate detection. It is not unique by
// design: legitimate repeated transactions share it, so detection
// disambiguates further on description and category.
type Key struct {
	Date      Date
	Amount    string
	Account   string
	Direction Direction
}

// Key returns the transaction's natural key.
func (t Transaction) Key() Key {
	return Key{
		Date:      t.Date,
		Amount:    t.Amount.Cell(),
		Account:   t.AccountName,
		Direction: t.Direction,
	}
}

// SameMetadata reports whether o carries the same Description and Category as t.
func (t Transaction) SameMetadata(o Transaction) bool {
	return t.Description == o.Description && t.Category == o.Category
}

// Equal reports full record equality.
func (t Transaction) Equal(o Transaction) bool {
	return t.Key() == o.Key() &&
		t.Description == o.Description &&
		t.OriginalDescription == o.OriginalDescription &&
		t.Category == o.Category &&
		t.SecondaryCategory == o.SecondaryCategory &&
		slices.Equal(t.Labels, o.Labels) &&
		t.Notes == o.Notes &&
		t.SpendingGroup == o.SpendingGroup &&
		t.Reversed == o.Reversed
}

// Contribution returns the transaction's signed effect on its group total:
// the amount, negated when the transaction was reversed by the extractor.
func (t Transaction) Contribution() decimal.Decimal {
	if t.Reversed {
		return t.Amount.Decimal().Neg()
	}
	return t.Amount.Decimal()
}

// Validate checks the canonical record invariants.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("transaction %q has no date", t.Description)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction %q on %s has negative amount %s", t.Description, t.Date, t.Amount)
	}
	if t.Direction != Debit && t.Direction != Credit {
		return fmt.Errorf("transaction %q on %s has invalid direction", t.Description, t.Date)
	}
	return nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s: %s : %s %s %s", t.Date, t.Description, t.Category, t.Direction, t.Amount)
}

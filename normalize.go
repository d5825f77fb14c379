package mint

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
)

// Source identifies the export format a batch of transactions came from.
type Source int

const (
	// SourceMint is the canonical CSV format this tool stores.
	SourceMint Source = iota
	// SourceEmpower is the Empower (formerly Personal Capital) export.
	SourceEmpower
	// SourceLunchMoney is the Lunch Money API.
	SourceLunchMoney
)

func (s Source) String() string {
	switch s {
	case SourceMint:
		return "mint"
	case SourceEmpower:
		return "empower"
	case SourceLunchMoney:
		return "lunchmoney"
	default:
		return "unknown"
	}
}

// ParseSource parses a source name.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(s) {
	case "mint":
		return SourceMint, nil
	case "empower", "personalcapital":
		return SourceEmpower, nil
	case "lunchmoney", "lunch-money":
		return SourceLunchMoney, nil
	default:
		return 0, fmt.Errorf("unknown transaction source %q", s)
	}
}

// LabelPolicy controls how user labels rewrite Empower categories during
// normalization. When Override is set, a transaction carrying exactly one
// label has its category replaced by that label and the exported category
// preserved as the secondary one; categories in SkipCategories keep their
// exported value regardless of labels.
type LabelPolicy struct {
	Override       bool
	SkipCategories []string
}

// Empower export column names.
const (
	empDate     = "Date"
	empAccount  = "Account"
	empDesc     = "Description"
	empAmount   = "Amount"
	empCategory = "Category"
	empTags     = "Tags"
)

// DecodeEmpower reads an Empower CSV export into canonical transactions.
// Empower encodes direction in the amount's sign, zero or positive meaning
// money in; the canonical form splits that into a non-negative magnitude and
// an explicit direction. Tags become labels and may rewrite the category per
// the policy.
func DecodeEmpower(r io.Reader, policy LabelPolicy) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, &FormatError{Source: "empower", Err: err}
	}
	if len(rows) == 0 {
		return nil, &FormatError{Source: "empower", Err: fmt.Errorf("empty file")}
	}
	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{empDate, empAccount, empDesc, empAmount, empCategory, empTags} {
		if _, ok := col[name]; !ok {
			return nil, &FormatError{Source: "empower", Err: fmt.Errorf("missing required column %q", name)}
		}
	}
	cell := func(row []string, name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var txs []Transaction
	for n, row := range rows[1:] {
		line := n + 2
		if emptyRow(row) {
			continue
		}
		date, err := ParseDate(cell(row, empDate))
		if err != nil {
			return nil, &FormatError{Source: "empower", Err: fmt.Errorf("line %d: %w", line, err)}
		}
		amount, err := ParseAmount(cell(row, empAmount))
		if err != nil {
			return nil, &FormatError{Source: "empower", Err: fmt.Errorf("line %d: %w", line, err)}
		}
		// Zero or positive is money in.
		dir := Credit
		if amount.IsNegative() {
			dir = Debit
			amount = amount.Abs()
		}
		t := Transaction{
			Date:                date,
			Description:         cell(row, empDesc),
			OriginalDescription: cell(row, empDesc),
			Amount:              amount,
			Direction:           dir,
			Category:            cell(row, empCategory),
			AccountName:         cell(row, empAccount),
		}
		if tags := cell(row, empTags); tags != "" {
			for _, piece := range strings.Split(tags, ",") {
				piece = strings.TrimSpace(piece)
				if piece == "" {
					return nil, &AmbiguousLabelError{Date: t.Date, Description: t.Description}
				}
				t.Labels = append(t.Labels, piece)
			}
		}
		if err := applyLabelPolicy(&t, policy); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func applyLabelPolicy(t *Transaction, policy LabelPolicy) error {
	if !policy.Override || len(t.Labels) == 0 {
		return nil
	}
	if slices.Contains(policy.SkipCategories, t.Category) {
		log.Printf("keeping category %q on %s despite labels %v", t.Category, t.Date, t.Labels)
		return nil
	}
	if len(t.Labels) > 1 {
		return &AmbiguousLabelError{Date: t.Date, Description: t.Description, Labels: t.Labels}
	}
	t.SecondaryCategory = t.Category
	t.Category = t.Labels[0]
	return nil
}

// Normalize reads a file-based export in the given source format and returns
// canonical transactions. Lunch Money transactions come from an API, not a
// file, and are normalized by their own package.
func Normalize(r io.Reader, source Source, policy LabelPolicy) ([]Transaction, error) {
	switch source {
	case SourceMint:
		l, err := DecodeLedger(r)
		if err != nil {
			return nil, err
		}
		txs := make([]Transaction, 0, l.Len())
		for _, t := range l.Transactions() {
			txs = append(txs, t)
		}
		return txs, nil
	case SourceEmpower:
		return DecodeEmpower(r, policy)
	default:
		return nil, fmt.Errorf("source %s has no file format", source)
	}
}

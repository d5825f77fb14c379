package mint

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Canonical CSV column names as the Mint export defined them.
const (
	colDate         = "Date"
	colDescription  = "Description"
	colOriginalDesc = "Original Description"
	colAmount       = "Amount"
	colType         = "Transaction Type"
	colCategory     = "Category"
	colSecondary    = "Secondary Category"
	colAccount      = "Account Name"
	colLabels       = "Labels"
	colNotes        = "Notes"
	colGroup        = "Spending Group"
)

var requiredColumns = []string{colDate, colDescription, colAmount, colType, colCategory, colAccount}

// DecodeLedger reads a canonical transaction CSV. The header row maps
// columns by name, so column order is free; the required columns are Date,
// Description, Amount, Transaction Type, Category and Account Name. Rows
// whose cells are all empty are skipped. A negative amount is a format
// error: direction lives in the Transaction Type column only.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, &FormatError{Source: "transactions", Err: err}
	}
	if len(rows) == 0 {
		return nil, &FormatError{Source: "transactions", Err: fmt.Errorf("empty file")}
	}
	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, &FormatError{Source: "transactions", Err: fmt.Errorf("missing required column %q", name)}
		}
	}
	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	l := &Ledger{}
	for n, row := range rows[1:] {
		line := n + 2
		if emptyRow(row) {
			continue
		}
		date, err := ParseDate(cell(row, colDate))
		if err != nil {
			return nil, &FormatError{Source: "transactions", Err: fmt.Errorf("line %d: %w", line, err)}
		}
		amount, err := ParseAmount(cell(row, colAmount))
		if err != nil {
			return nil, &FormatError{Source: "transactions", Err: fmt.Errorf("line %d: %w", line, err)}
		}
		if amount.IsNegative() {
			return nil, &FormatError{Source: "transactions", Err: fmt.Errorf("line %d: negative amount %s (direction belongs in %q)", line, amount, colType)}
		}
		dir, err := ParseDirection(cell(row, colType))
		if err != nil {
			return nil, &FormatError{Source: "transactions", Err: fmt.Errorf("line %d: %w", line, err)}
		}
		l.transactions = append(l.transactions, Transaction{
			Date:                date,
			Description:         cell(row, colDescription),
			OriginalDescription: cell(row, colOriginalDesc),
			Amount:              amount,
			Direction:           dir,
			Category:            cell(row, colCategory),
			SecondaryCategory:   cell(row, colSecondary),
			AccountName:         cell(row, colAccount),
			Labels:              strings.Fields(cell(row, colLabels)),
			Notes:               cell(row, colNotes),
			SpendingGroup:       cell(row, colGroup),
		})
	}
	l.stableSort()
	return l, nil
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// EncodeLedger writes the ledger as a canonical transaction CSV. The
// Secondary Category and Spending Group columns are written only when at
// least one transaction carries a value, so round-tripping a plain export
// keeps its original shape.
func EncodeLedger(w io.Writer, l *Ledger) error {
	var withSecondary, withGroup bool
	for _, t := range l.Transactions() {
		withSecondary = withSecondary || t.SecondaryCategory != ""
		withGroup = withGroup || t.SpendingGroup != ""
	}
	header := []string{colDate, colDescription, colOriginalDesc, colAmount, colType, colCategory}
	if withSecondary {
		header = append(header, colSecondary)
	}
	header = append(header, colAccount, colLabels, colNotes)
	if withGroup {
		header = append(header, colGroup)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range l.Transactions() {
		row := []string{t.Date.String(), t.Description, t.OriginalDescription, t.Amount.Cell(), t.Direction.String(), t.Category}
		if withSecondary {
			row = append(row, t.SecondaryCategory)
		}
		row = append(row, t.AccountName, strings.Join(t.Labels, " "), t.Notes)
		if withGroup {
			row = append(row, t.SpendingGroup)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

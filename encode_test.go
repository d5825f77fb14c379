package mint

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDecodeLedger(t *testing.T) {
	in := `Date,Description,Original Description,Amount,Transaction Type,Category,Account Name,Labels,Notes
2023-03-02,lunch,SQ *CAFE 42,12.00,debit,Restaurants,visa,work,
3/1/2023,coffee,COFFEE CO,4.50,debit,Coffee Shops,visa,,
,,,,,,,,
2023-03-03,paycheck,ACME PAYROLL,"2,000.00",credit,Paycheck,checking,,
`
	l, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 3 {
		t.Fatalf("decoded %d transactions, want 3 (empty row skipped)", l.Len())
	}
	// Date descending after decode.
	if got := l.NewestTransactionDate(); got != day(2023, time.March, 3) {
		t.Errorf("newest = %s, want 2023-03-03", got)
	}
	for _, got := range l.Transactions() {
		switch got.Description {
		case "coffee":
			if got.Date != day(2023, time.March, 1) {
				t.Errorf("locale date parsed as %s", got.Date)
			}
		case "paycheck":
			if !got.Amount.Equal(M(2000)) || got.Direction != Credit {
				t.Errorf("paycheck decoded as %s", got)
			}
		case "lunch":
			if len(got.Labels) != 1 || got.Labels[0] != "work" {
				t.Errorf("labels = %v, want [work]", got.Labels)
			}
		}
	}
}

func TestDecodeLedgerErrors(t *testing.T) {
	tests := []struct {
		name, in string
	}{
		{"missing column", "Date,Description,Amount,Category,Account Name\n"},
		{"negative amount", "Date,Description,Amount,Transaction Type,Category,Account Name\n2023-03-01,coffee,-4.50,debit,Dining,visa\n"},
		{"bad date", "Date,Description,Amount,Transaction Type,Category,Account Name\nyesterday,coffee,4.50,debit,Dining,visa\n"},
		{"bad direction", "Date,Description,Amount,Transaction Type,Category,Account Name\n2023-03-01,coffee,4.50,transfer,Dining,visa\n"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("decode accepted malformed input")
			}
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Errorf("error %T is not a FormatError", err)
			}
		})
	}
}

func TestEncodeLedgerRoundTrip(t *testing.T) {
	orig := NewLedger(
		debit(day(2023, time.March, 1), "coffee", 4.50, "Coffee Shops", "visa"),
		credit(day(2023, time.March, 3), "paycheck", 2000, "Paycheck", "checking"),
	)
	var buf strings.Builder
	if err := EncodeLedger(&buf, orig); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeLedger(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != orig.Len() {
		t.Fatalf("round trip kept %d transactions, want %d", got.Len(), orig.Len())
	}
	for i, want := range orig.Transactions() {
		if !got.transactions[i].Equal(want) {
			t.Errorf("transaction %d = %s, want %s", i, got.transactions[i], want)
		}
	}
}

func TestEncodeLedgerOptionalColumns(t *testing.T) {
	plain := NewLedger(debit(day(2023, time.March, 1), "coffee", 4.50, "Dining", "visa"))
	var buf strings.Builder
	if err := EncodeLedger(&buf, plain); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Spending Group") || strings.Contains(buf.String(), "Secondary Category") {
		t.Errorf("plain ledger header grew optional columns:\n%s", buf.String())
	}

	rich := NewLedger(grouped(debit(day(2023, time.March, 1), "coffee", 4.50, "Dining", "visa"), "Food"))
	buf.Reset()
	if err := EncodeLedger(&buf, rich); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Spending Group") {
		t.Errorf("grouped ledger header misses the group column:\n%s", buf.String())
	}
}

package mint

import (
	"strings"
	"testing"
	"time"
)

func summaryFixture() *GroupSummary {
	byYear := map[int]*Ledger{
		2022: NewLedger(
			grouped(debit(day(2022, time.May, 1), "groceries", 100, "Groceries", "visa"), "Food"),
			grouped(debit(day(2022, time.June, 1), "gas", 40, "Gas & Fuel", "visa"), "Transport"),
		),
		2023: NewLedger(
			grouped(debit(day(2023, time.May, 1), "groceries", 120, "Groceries", "visa"), "Food"),
			grouped(reversed(debit(day(2023, time.May, 8), "refund", 20, "Groceries", "visa")), "Food"),
		),
	}
	return SummarizeByGroup(byYear)
}

func reversed(t Transaction) Transaction {
	t.Reversed = true
	return t
}

func TestSummarizeByGroup(t *testing.T) {
	s := summaryFixture()
	tests := []struct {
		group string
		year  int
		want  Money
	}{
		{"Food", 2022, M(100)},
		{"Food", 2023, M(100)}, // 120 minus the reversed refund
		{"Transport", 2022, M(40)},
		{"Transport", 2023, M(0)},
	}
	for _, tt := range tests {
		if got := s.Total(tt.group, tt.year); !got.Equal(tt.want) {
			t.Errorf("Total(%s, %d) = %s, want %s", tt.group, tt.year, got, tt.want)
		}
	}
	if got := s.YearTotal(2022); !got.Equal(M(140)) {
		t.Errorf("YearTotal(2022) = %s", got)
	}
}

func TestGroupSummaryCSV(t *testing.T) {
	var buf strings.Builder
	if err := summaryFixture().EncodeCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Spending Group,2022 Amount,2023 Amount" {
		t.Errorf("header = %q", lines[0])
	}
	if last := lines[len(lines)-1]; last != "Total,140.00,100.00" {
		t.Errorf("total row = %q", last)
	}
}

func TestGroupSummaryMarkdown(t *testing.T) {
	md := summaryFixture().Markdown("Yearly spending")
	for _, want := range []string{"# Yearly spending", "| Food |", "$100.00", "**Total**"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestFutureSpending(t *testing.T) {
	s := summaryFixture()
	// Average the two complete years, leave the current one out.
	f := FutureSpending(s, 2022, 2024, "Transport")
	if got := f.Total("Food", 2024); !got.Equal(M(100)) {
		t.Errorf("Food estimate = %s, want $100.00", got)
	}
	if got := f.Total("Transport", 2024); !got.IsZero() {
		t.Errorf("excluded group estimated at %s", got)
	}
}

func TestCategoryDetails(t *testing.T) {
	l := NewLedger(
		grouped(debit(day(2023, time.May, 1), "groceries", 120, "Groceries", "visa"), "Food"),
		grouped(debit(day(2023, time.May, 2), "lunch", 30, "Restaurants", "visa"), "Food"),
		grouped(debit(day(2023, time.May, 3), "gas", 40, "Gas & Fuel", "visa"), "Transport"),
	)
	md := CategoryDetails(l, "Food")
	if !strings.Contains(md, "Groceries") || !strings.Contains(md, "Restaurants") {
		t.Fatalf("details missing categories:\n%s", md)
	}
	if strings.Contains(md, "Gas & Fuel") {
		t.Errorf("details leaked another group:\n%s", md)
	}
	if strings.Index(md, "Groceries") > strings.Index(md, "Restaurants") {
		t.Errorf("categories not ordered largest first:\n%s", md)
	}
}

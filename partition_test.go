package mint

import (
	"testing"
	"time"
)

func TestPartition(t *testing.T) {
	l := NewLedger(
		debit(day(2023, time.March, 1), "coffee", 4.50, "Dining", "visa"),
		debit(day(2023, time.March, 2), "lunch", 12, "Dining", "partner visa"),
		credit(day(2023, time.March, 3), "paycheck", 2000, "Income", "checking"),
	)
	tests := []struct {
		name                 string
		accounts             AccountSet
		wantMine, wantTheirs int
	}{
		{"split", NewAccountSet("partner visa"), 2, 1},
		{"empty set", NewAccountSet(), 3, 0},
		{"all listed", NewAccountSet("visa", "partner visa", "checking"), 0, 3},
		{"unknown account", NewAccountSet("amex"), 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mine, theirs := l.Partition(tt.accounts)
			if mine.Len() != tt.wantMine || theirs.Len() != tt.wantTheirs {
				t.Errorf("partition = %d/%d, want %d/%d", mine.Len(), theirs.Len(), tt.wantMine, tt.wantTheirs)
			}
			if mine.Len()+theirs.Len() != l.Len() {
				t.Errorf("partition lost transactions: %d + %d != %d", mine.Len(), theirs.Len(), l.Len())
			}
			for _, got := range theirs.Transactions() {
				if !tt.accounts.Contains(got.AccountName) {
					t.Errorf("unlisted account %q landed in theirs", got.AccountName)
				}
			}
		})
	}
}

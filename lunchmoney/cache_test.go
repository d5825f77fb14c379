package lunchmoney

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	mint "github.com/jpjpjp/analyze-mint-transactions"
)

type fakeProvider struct {
	calls int
	txs   []Transaction
}

func (f *fakeProvider) Transactions(ctx context.Context, start, end mint.Date) ([]Transaction, error) {
	f.calls++
	return f.txs, nil
}

func TestReadOrFetch(t *testing.T) {
	ctx := context.Background()
	cache := filepath.Join(t.TempDir(), "lm-cache.json")
	p := &fakeProvider{txs: []Transaction{apiTx(1, "coffee", 4.50)}}
	start, end := mint.NewDate(2023, time.March, 1), mint.NewDate(2023, time.March, 31)

	first, err := ReadOrFetch(ctx, p, start, end, cache)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ReadOrFetch(ctx, p, start, end, cache)
	if err != nil {
		t.Fatal(err)
	}
	if p.calls != 1 {
		t.Errorf("provider called %d times, want the cache to serve the second read", p.calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Payee != "coffee" {
		t.Errorf("cached round trip = %v", second)
	}
}

func TestLookback(t *testing.T) {
	l := mint.NewLedger()
	l.Append(mint.Transaction{
		Date:        mint.NewDate(2023, time.March, 15),
		Description: "coffee",
		Amount:      mint.M(4.50),
		Direction:   mint.Debit,
		Category:    "Dining",
		AccountName: "visa",
	})
	if got := Lookback(l, 14); got != mint.NewDate(2023, time.March, 1) {
		t.Errorf("Lookback = %s, want 14 days behind the newest transaction", got)
	}
	if got := Lookback(mint.NewLedger(), 14); !got.Before(mint.Today()) {
		t.Errorf("Lookback on empty ledger = %s, want a date in the past", got)
	}
}

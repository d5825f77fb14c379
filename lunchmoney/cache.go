package lunchmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	mint "github.com/jpjpjp/analyze-mint-transactions"
)

// Provider fetches transactions for a date range. *Client implements it;
// tests substitute canned responses.
type Provider interface {
	Transactions(ctx context.Context, start, end mint.Date) ([]Transaction, error)
}

// ReadOrFetch returns the transactions for the range, reading the cache file
// when it exists and fetching (then caching) otherwise. The cache never
// expires on its own: deleting the file is the refresh.
func ReadOrFetch(ctx context.Context, p Provider, start, end mint.Date, cachePath string) ([]Transaction, error) {
	if content, err := os.ReadFile(cachePath); err == nil {
		var txs []Transaction
		if err := json.Unmarshal(content, &txs); err != nil {
			return nil, fmt.Errorf("corrupt cache %s (delete it to re-fetch): %w", cachePath, err)
		}
		log.Printf("read %d transactions from %s, delete this file to re-fetch", len(txs), cachePath)
		return txs, nil
	}

	txs, err := p.Transactions(ctx, start, end)
	if err != nil {
		return nil, err
	}
	content, err := json.MarshalIndent(txs, "", " ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(cachePath, content, 0o644); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return txs, nil
}

// Lookback picks the fetch start date: far enough behind the ledger's newest
// transaction to catch records that settled late, or the same span behind
// today for an empty ledger.
func Lookback(l *mint.Ledger, days int) mint.Date {
	newest := l.NewestTransactionDate()
	if newest.IsZero() {
		newest = mint.Today()
	}
	return newest.Add(-days)
}

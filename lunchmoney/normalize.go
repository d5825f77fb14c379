package lunchmoney

import (
	"fmt"
	"log"
	"strings"

	mint "github.com/jpjpjp/analyze-mint-transactions"
)

const reviewURL = "https://my.lunchmoney.app/transactions"

// Normalize converts a fetched batch into canonical transactions.
//
// Pending transactions are dropped with a diagnostic, they come back settled
// in a later fetch. Split parents are dropped in favor of their children; a
// parent whose children are missing from the batch is an error since the
// split's pieces would be lost. A batch holding unreviewed or uncategorized
// transactions yields a [mint.ReviewPendingError] so the caller can send the
// user to the web app before merging half-classified data.
func Normalize(txs []Transaction) ([]mint.Transaction, error) {
	children := make(map[int64]int)
	for _, t := range txs {
		if t.ParentID != 0 {
			children[t.ParentID]++
		}
	}

	var (
		pending       int
		unreviewed    int
		uncategorized int
		out           []mint.Transaction
	)
	for _, t := range txs {
		if t.IsPending {
			pending++
			continue
		}
		if t.HasChildren {
			if children[t.ID] == 0 {
				return nil, fmt.Errorf("transaction %d (%s on %s) is split but its pieces are not in this batch", t.ID, t.Payee, t.Date)
			}
			continue
		}
		if t.Status == "uncleared" {
			unreviewed++
		}
		if t.CategoryID == 0 {
			uncategorized++
		}
		out = append(out, normalizeOne(t))
	}
	if pending > 0 {
		log.Printf("dropped %d pending transactions, they will settle in a later fetch", pending)
	}
	if unreviewed > 0 || uncategorized > 0 {
		return nil, &mint.ReviewPendingError{
			Unreviewed:    unreviewed,
			Uncategorized: uncategorized,
			ReviewURL:     reviewURL,
		}
	}
	return out, nil
}

func normalizeOne(t Transaction) mint.Transaction {
	// Positive means money out in this API.
	dir := mint.Credit
	if t.Amount.IsPositive() {
		dir = mint.Debit
	}
	labels := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		labels = append(labels, tag.Name)
	}
	return mint.Transaction{
		Date:                t.Date,
		Description:         t.Payee,
		OriginalDescription: t.Payee,
		Amount:              mint.M(t.Amount.Abs()),
		Direction:           dir,
		Category:            t.CategoryName,
		AccountName:         strings.TrimSpace(t.AccountDisplayName),
		Labels:              labels,
		Notes:               t.Notes,
	}
}

package lunchmoney

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	mint "github.com/jpjpjp/analyze-mint-transactions"
)

func apiTx(id int64, payee string, amount float64) Transaction {
	return Transaction{
		ID:                 id,
		Date:               mint.NewDate(2023, time.March, 1),
		Payee:              payee,
		Amount:             decimal.NewFromFloat(amount),
		CategoryID:         7,
		CategoryName:       "Restaurants",
		AccountDisplayName: "Chase Visa",
		Status:             "cleared",
	}
}

func TestNormalize(t *testing.T) {
	refund := apiTx(2, "shoe return", -10)
	txs, err := Normalize([]Transaction{apiTx(1, "coffee", 4.50), refund})
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 2 {
		t.Fatalf("normalized %d transactions, want 2", len(txs))
	}
	if txs[0].Direction != mint.Debit || !txs[0].Amount.Equal(mint.M(4.50)) {
		t.Errorf("positive amount = %s, want a debit", txs[0])
	}
	if txs[1].Direction != mint.Credit || !txs[1].Amount.Equal(mint.M(10)) {
		t.Errorf("negative amount = %s, want a credit of the magnitude", txs[1])
	}
	if txs[0].AccountName != "Chase Visa" {
		t.Errorf("account = %q, want %q", txs[0].AccountName, "Chase Visa")
	}
}

func TestNormalizeTrimsAccountPadding(t *testing.T) {
	// Only the stray padding goes; interior spaces are part of the name
	// and must keep matching ledger records and account allow-lists.
	padded := apiTx(1, "coffee", 4.50)
	padded.AccountDisplayName = " Chase Visa "
	txs, err := Normalize([]Transaction{padded})
	if err != nil {
		t.Fatal(err)
	}
	if txs[0].AccountName != "Chase Visa" {
		t.Errorf("account = %q, want %q", txs[0].AccountName, "Chase Visa")
	}
}

func TestNormalizeDropsPending(t *testing.T) {
	p := apiTx(1, "coffee", 4.50)
	p.IsPending = true
	txs, err := Normalize([]Transaction{p, apiTx(2, "lunch", 12)})
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 || txs[0].Description != "lunch" {
		t.Errorf("normalized = %v, want the settled one only", txs)
	}
}

func TestNormalizeSplits(t *testing.T) {
	parent := apiTx(1, "costco", 100)
	parent.HasChildren = true
	a := apiTx(2, "costco", 60)
	a.ParentID = 1
	b := apiTx(3, "costco", 40)
	b.ParentID = 1

	txs, err := Normalize([]Transaction{parent, a, b})
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 2 {
		t.Fatalf("normalized %d transactions, want the two children", len(txs))
	}

	// A parent without its pieces would silently lose money.
	if _, err := Normalize([]Transaction{parent}); err == nil {
		t.Fatal("accepted a split parent without its children")
	}
}

func TestNormalizeReviewPending(t *testing.T) {
	u := apiTx(1, "coffee", 4.50)
	u.Status = "uncleared"
	n := apiTx(2, "mystery", 12)
	n.CategoryID = 0
	n.CategoryName = ""

	_, err := Normalize([]Transaction{u, n, apiTx(3, "lunch", 12)})
	var rerr *mint.ReviewPendingError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want a ReviewPendingError", err)
	}
	if rerr.Unreviewed != 1 || rerr.Uncategorized != 1 {
		t.Errorf("counts = %d/%d, want 1/1", rerr.Unreviewed, rerr.Uncategorized)
	}
	if rerr.ReviewURL == "" {
		t.Error("no review URL to send the user to")
	}
}

func TestNormalizeTags(t *testing.T) {
	tagged := apiTx(1, "vet", 80)
	tagged.Tags = []Tag{{Name: "Pets"}, {Name: "OneTime"}}
	txs, err := Normalize([]Transaction{tagged})
	if err != nil {
		t.Fatal(err)
	}
	if len(txs[0].Labels) != 2 || txs[0].Labels[0] != "Pets" {
		t.Errorf("labels = %v", txs[0].Labels)
	}
}

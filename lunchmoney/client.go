// Package lunchmoney fetches transactions from the Lunch Money API and
// normalizes them into canonical ledger records.
package lunchmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	mint "github.com/jpjpjp/analyze-mint-transactions"
)

const defaultBaseURL = "https://dev.lunchmoney.app"

// Client is a minimal Lunch Money API client. The zero value is not usable;
// build one with NewClient.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient returns a client authenticating with the given API token.
func NewClient(token string) *Client {
	return &Client{token: token, baseURL: defaultBaseURL, http: new(http.Client)}
}

// Tag is a user tag attached to a transaction.
type Tag struct {
	Name string `json:"name"`
}

// Transaction is a Lunch Money transaction as the API returns it. The amount
// keeps the API's sign convention: positive means money out.
type Transaction struct {
	ID                 int64           `json:"id"`
	Date               mint.Date       `json:"date"`
	Payee              string          `json:"payee"`
	Amount             decimal.Decimal `json:"amount"`
	CategoryID         int64           `json:"category_id"`
	CategoryName       string          `json:"category_name"`
	AccountDisplayName string          `json:"account_display_name"`
	Status             string          `json:"status"`
	IsPending          bool            `json:"is_pending"`
	HasChildren        bool            `json:"has_children"`
	ParentID           int64           `json:"parent_id"`
	Tags               []Tag           `json:"tags"`
	Notes              string          `json:"notes"`
}

// Transactions fetches all transactions in the inclusive date range.
func (c *Client) Transactions(ctx context.Context, start, end mint.Date) ([]Transaction, error) {
	q := url.Values{}
	q.Set("start_date", start.String())
	q.Set("end_date", end.String())
	addr := fmt.Sprintf("%s/v1/transactions?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error retrieving transactions: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading transactions: %w", err)
	}

	// The API reports failures as an "error" field, sometimes a string and
	// sometimes a list, on any status code.
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("error parsing transactions (%s): %w", resp.Status, err)
	}
	if jval, err := jsonpath.Get("$.error", jobj); err == nil {
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		return nil, fmt.Errorf("lunchmoney: %v", jval)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("lunchmoney: %s", resp.Status)
	}

	var payload struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("error parsing transactions: %w", err)
	}
	return payload.Transactions, nil
}

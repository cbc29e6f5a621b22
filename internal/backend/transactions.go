package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ericwalterlaw/cryptish/internal/model"
	"github.com/ericwalterlaw/cryptish/internal/session"
)

type transactionDoc struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Type   string      `json:"type"`
	Symbol string      `json:"symbol"`
	Amount interface{} `json:"amount"`
	Price  interface{} `json:"price"`
	Fee    interface{} `json:"fee"`
	Total  interface{} `json:"total"`
	Status string      `json:"status"`
}

// FetchTransactions retrieves the authenticated user's ledger history.
// Absent fees default to 0, absent totals to amount*price, and absent
// statuses to pending.
func (c *Client) FetchTransactions(ctx context.Context, sess session.Session) ([]model.TransactionRecord, error) {
	if !sess.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	body, err := c.do(ctx, http.MethodGet, "/api/transactions", sess, nil)
	if err != nil {
		return nil, err
	}

	var docs []transactionDoc
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}

	records := make([]model.TransactionRecord, 0, len(docs))
	for _, d := range docs {
		rec := model.TransactionRecord{
			ID:     d.ID,
			Date:   parseTimestamp(d.Date),
			Type:   model.TransactionType(strings.ToLower(d.Type)),
			Symbol: d.Symbol,
			Amount: toFloat(d.Amount),
			Price:  toFloat(d.Price),
			Fee:    toFloat(d.Fee),
			Total:  toFloat(d.Total),
			Status: model.TransactionStatus(strings.ToLower(d.Status)),
		}
		if d.Total == nil {
			rec.Total = rec.Amount * rec.Price
		}
		if rec.Status != model.StatusCompleted {
			rec.Status = model.StatusPending
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseTimestamp accepts the timestamp formats the backend has been seen to
// emit; anything unparseable becomes the zero time.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

package model

import "time"

// TransactionType distinguishes buys from sells.
type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
)

// TransactionRecord is one historical ledger entry.
type TransactionRecord struct {
	ID     string
	Date   time.Time
	Type   TransactionType
	Symbol string
	Amount float64
	Price  float64
	Fee    float64 // 0 when absent
	Total  float64 // amount * price when not server-supplied
	Status TransactionStatus
}

package core

import (
	"context"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindRecharge TransactionKind = "RECHARGE"
	TransactionKindPayment  TransactionKind = "PAYMENT"
)

const TransactionStatusSuccess = "SUCCESS"

// Transaction is an audit record written after a balance mutation.
// Writes are best-effort; the balance itself is the source of truth.
type Transaction struct {
	CustomerID int64           `json:"customer_id"`
	Kind       TransactionKind `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

type TransactionStore interface {
	Create(ctx context.Context, transaction *Transaction) error
}

package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a transient copy of a wallet owner fetched from the remote
// store. The store owns the record; nothing here is cached between requests.
type Customer struct {
	ID        int64           `json:"id,omitempty"`
	Document  string          `json:"document,omitempty"`
	Name      string          `json:"name,omitempty"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

type AdjustDirection string

const (
	AdjustIncrement AdjustDirection = "increment"
	AdjustDecrement AdjustDirection = "decrement"
)

type CustomerStore interface {
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	Find(ctx context.Context, id int64) (*Customer, error)
	FindByIdentity(ctx context.Context, document, phone string) (*Customer, error)
	AdjustBalance(ctx context.Context, id int64, amount decimal.Decimal, direction AdjustDirection) (*Customer, error)
}

package core

import (
	"context"

	"github.com/shopspring/decimal"
)

type RegisterInput struct {
	Document string
	Name     string
	Email    string
	Phone    string
}

type WalletService interface {
	Register(ctx context.Context, input RegisterInput) (*Customer, error)
	Recharge(ctx context.Context, document, phone string, amount decimal.Decimal) (*Customer, error)
	Balance(ctx context.Context, document, phone string) (decimal.Decimal, error)
}

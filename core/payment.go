package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentReceipt is returned from Initiate. It never carries the token
// itself; the token travels only over the notification channel.
type PaymentReceipt struct {
	SessionID           string `json:"session_id"`
	ConfirmationMessage string `json:"confirmation_message"`
}

type PaymentService interface {
	Initiate(ctx context.Context, document, phone string, amount decimal.Decimal) (*PaymentReceipt, error)
	Confirm(ctx context.Context, sessionID, token string) (*Customer, error)
}

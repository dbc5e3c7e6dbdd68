package core

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type SessionState uint8

const (
	_ SessionState = iota
	SessionStatePending
	SessionStateConfirmed
	SessionStateCanceled
	SessionStateFailed
)

var sessionStateNames = map[SessionState]string{
	SessionStatePending:   "PENDING",
	SessionStateConfirmed: "CONFIRMED",
	SessionStateCanceled:  "CANCELED",
	SessionStateFailed:    "FAILED",
}

func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}

	return "UNKNOWN"
}

// Terminal reports whether no further transitions are permitted.
func (s SessionState) Terminal() bool {
	return s > SessionStatePending
}

func (s SessionState) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, s.String()), nil
}

func (s *SessionState) UnmarshalJSON(b []byte) error {
	name, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("session state must be a string: %w", err)
	}

	for state, n := range sessionStateNames {
		if n == name {
			*s = state
			return nil
		}
	}

	return fmt.Errorf("unknown session state %q", name)
}

// PaymentSession gates one purchase attempt behind a single-use token.
// Amount and Token are fixed at creation; once the state leaves PENDING it
// never returns.
type PaymentSession struct {
	ID         int64           `json:"id,omitempty"`
	SessionID  string          `json:"session_id,omitempty"`
	CustomerID int64           `json:"customer_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Token      string          `json:"token,omitempty"`
	ExpiresAt  time.Time       `json:"expires_at,omitempty"`
	State      SessionState    `json:"state,omitempty"`
	CreatedAt  time.Time       `json:"created_at,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at,omitempty"`
}

type SessionStore interface {
	Create(ctx context.Context, session *PaymentSession) (*PaymentSession, error)
	Find(ctx context.Context, sessionID string) (*PaymentSession, error)
	UpdateState(ctx context.Context, sessionID string, to SessionState) error
}

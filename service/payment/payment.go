// Package payment drives the two-phase purchase workflow: initiate creates
// a token-gated session, confirm settles it against a freshly fetched
// balance and pins the session into a terminal state.
//
// There is no cross-service transaction with the remote store. The workflow
// is ordered so every state-changing step is the last thing that can fail
// before the session reaches a terminal state; compensating transitions
// (CANCELED, FAILED) are best-effort audit markers. First-confirm-wins for
// concurrent confirms on one session id relies on the store serializing the
// state read-then-write per session.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/idelsangithub/business-logic-service/core"
	"github.com/idelsangithub/business-logic-service/store"
)

const (
	tokenLength   = 6
	sessionTTL    = 5 * time.Minute
	detachTimeout = 15 * time.Second
)

func New(
	customers core.CustomerStore,
	sessions core.SessionStore,
	transactions core.TransactionStore,
	tokens core.TokenGenerator,
	notifier core.Notifier,
	logger *slog.Logger,
) core.PaymentService {
	return &service{
		customers:    customers,
		sessions:     sessions,
		transactions: transactions,
		tokens:       tokens,
		notifier:     notifier,
		logger:       logger.With("service", "payment"),
		now:          time.Now,
	}
}

type service struct {
	customers    core.CustomerStore
	sessions     core.SessionStore
	transactions core.TransactionStore
	tokens       core.TokenGenerator
	notifier     core.Notifier
	logger       *slog.Logger

	now func() time.Time
}

func (s *service) Initiate(ctx context.Context, document, phone string, amount decimal.Decimal) (*core.PaymentReceipt, error) {
	if document == "" || phone == "" {
		return nil, core.BadRequest("document and phone are required")
	}

	if !amount.IsPositive() {
		return nil, core.BadRequest("purchase amount must be positive")
	}

	customer, err := s.customers.FindByIdentity(ctx, document, phone)
	if err != nil {
		return nil, store.Translate(err, "customer lookup failed")
	}

	// Advisory only: nothing is reserved here. The authoritative check
	// happens again at confirmation against a fresh balance.
	if customer.Balance.LessThan(amount) {
		return nil, core.Conflict("insufficient balance")
	}

	token, err := s.tokens.Generate(tokenLength)
	if err != nil {
		s.logger.Error("token generation failed", "err", err)
		return nil, core.Internal("could not generate confirmation code")
	}

	session := &core.PaymentSession{
		SessionID:  uuid.NewString(),
		CustomerID: customer.ID,
		Amount:     amount,
		Token:      token,
		ExpiresAt:  s.now().Add(sessionTTL),
		State:      core.SessionStatePending,
	}

	if _, err := s.sessions.Create(ctx, session); err != nil {
		return nil, store.Translate(err, "could not create payment session")
	}

	s.dispatchToken(customer, session)

	return &core.PaymentReceipt{
		SessionID:           session.SessionID,
		ConfirmationMessage: "A confirmation code was sent to your email. Use it together with the session id to confirm the purchase.",
	}, nil
}

func (s *service) Confirm(ctx context.Context, sessionID, token string) (*core.Customer, error) {
	if sessionID == "" || token == "" {
		return nil, core.BadRequest("session id and token are required")
	}

	session, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, store.Translate(err, "payment session not found")
	}

	// A consumed session never returns to PENDING; a second confirm always
	// fails, it never replays the earlier outcome.
	if session.State != core.SessionStatePending {
		return nil, core.Conflict(fmt.Sprintf("session already %s", strings.ToLower(session.State.String())))
	}

	if session.Token != token || s.now().After(session.ExpiresAt) {
		s.abandon(ctx, session.SessionID, core.SessionStateCanceled)
		return nil, core.BadRequest("invalid or expired token")
	}

	customer, err := s.customers.Find(ctx, session.CustomerID)
	if err != nil {
		return nil, store.Translate(err, "customer for session not found")
	}

	if customer.Balance.LessThan(session.Amount) {
		s.abandon(ctx, session.SessionID, core.SessionStateFailed)
		return nil, core.Conflict("insufficient balance")
	}

	updated, err := s.customers.AdjustBalance(ctx, customer.ID, session.Amount, core.AdjustDecrement)
	if err != nil {
		// The debit was guarded by the re-check above; no compensation,
		// a failure here is the store's consistency problem.
		return nil, store.Translate(err, "could not debit balance")
	}

	if err := s.sessions.UpdateState(ctx, session.SessionID, core.SessionStateConfirmed); err != nil {
		return nil, store.Translate(err, "could not confirm payment session")
	}

	s.recordTransaction(customer.ID, core.TransactionKindPayment, session.Amount)

	return updated, nil
}

// abandon pins a terminal state onto the session. The write is best-effort:
// the caller raises its own error regardless of the outcome here.
func (s *service) abandon(ctx context.Context, sessionID string, to core.SessionState) {
	if err := s.sessions.UpdateState(ctx, sessionID, to); err != nil {
		s.logger.Error("mark session failed", "session", sessionID, "state", to, "err", err)
	}
}

// dispatchToken delivers the confirmation code detached from the request.
// A customer who never receives it simply cannot confirm; the session is
// rejected once it expires.
func (s *service) dispatchToken(customer *core.Customer, session *core.PaymentSession) {
	notification := core.Notification{
		To:      customer.Email,
		Subject: "Confirmation code for your wallet purchase",
		Body: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your confirmation code for the purchase of $%s is <strong>%s</strong>.</p><p>The code is valid for 5 minutes. If you did not request this purchase, ignore this message.</p><p>Your session id for confirmation is <strong>%s</strong>.</p>",
			customer.Name, session.Amount.StringFixed(2), session.Token, session.SessionID,
		),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachTimeout)
		defer cancel()

		if err := s.notifier.Send(ctx, notification); err != nil {
			s.logger.Error("send confirmation code", "session", session.SessionID, "err", err)
		}
	}()
}

func (s *service) recordTransaction(customerID int64, kind core.TransactionKind, amount decimal.Decimal) {
	transaction := &core.Transaction{
		CustomerID: customerID,
		Kind:       kind,
		Amount:     amount,
		Status:     core.TransactionStatusSuccess,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachTimeout)
		defer cancel()

		if err := s.transactions.Create(ctx, transaction); err != nil {
			s.logger.Error("record transaction", "customer", customerID, "kind", kind, "err", err)
		}
	}()
}

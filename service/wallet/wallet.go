// Package wallet holds the single round-trip workflows: customer
// registration, balance recharge and balance query.
package wallet

import (
	"context"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/idelsangithub/business-logic-service/core"
	"github.com/idelsangithub/business-logic-service/store"
)

const detachTimeout = 15 * time.Second

func New(
	customers core.CustomerStore,
	transactions core.TransactionStore,
	logger *slog.Logger,
) core.WalletService {
	return &service{
		customers:    customers,
		transactions: transactions,
		logger:       logger.With("service", "wallet"),
	}
}

type service struct {
	customers    core.CustomerStore
	transactions core.TransactionStore
	logger       *slog.Logger
	sf           singleflight.Group
}

func (s *service) Register(ctx context.Context, input core.RegisterInput) (*core.Customer, error) {
	if input.Document == "" || input.Name == "" || input.Email == "" || input.Phone == "" {
		return nil, core.BadRequest("document, name, email and phone are required")
	}

	if !govalidator.IsEmail(input.Email) {
		return nil, core.BadRequest("invalid email address")
	}

	customer, err := s.customers.Create(ctx, &core.Customer{
		Document: input.Document,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
	})

	if err != nil {
		return nil, store.Translate(err, "could not register customer")
	}

	return customer, nil
}

func (s *service) Recharge(ctx context.Context, document, phone string, amount decimal.Decimal) (*core.Customer, error) {
	if document == "" || phone == "" {
		return nil, core.BadRequest("document and phone are required")
	}

	if !amount.IsPositive() {
		return nil, core.BadRequest("recharge amount must be positive")
	}

	customer, err := s.customers.FindByIdentity(ctx, document, phone)
	if err != nil {
		return nil, store.Translate(err, "customer not found")
	}

	updated, err := s.customers.AdjustBalance(ctx, customer.ID, amount, core.AdjustIncrement)
	if err != nil {
		return nil, store.Translate(err, "could not credit balance")
	}

	s.recordTransaction(customer.ID, amount)

	return updated, nil
}

func (s *service) Balance(ctx context.Context, document, phone string) (decimal.Decimal, error) {
	if document == "" || phone == "" {
		return decimal.Zero, core.BadRequest("document and phone are required")
	}

	// Concurrent queries for the same customer collapse into one store
	// round trip; the read carries no state so sharing the result is safe.
	v, err, _ := s.sf.Do(document+":"+phone, func() (any, error) {
		return s.customers.FindByIdentity(ctx, document, phone)
	})

	if err != nil {
		return decimal.Zero, store.Translate(err, "customer not found")
	}

	return v.(*core.Customer).Balance, nil
}

func (s *service) recordTransaction(customerID int64, amount decimal.Decimal) {
	transaction := &core.Transaction{
		CustomerID: customerID,
		Kind:       core.TransactionKindRecharge,
		Amount:     amount,
		Status:     core.TransactionStatusSuccess,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachTimeout)
		defer cancel()

		if err := s.transactions.Create(ctx, transaction); err != nil {
			s.logger.Error("record transaction", "customer", customerID, "kind", transaction.Kind, "err", err)
		}
	}()
}

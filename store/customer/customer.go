package customer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/idelsangithub/business-logic-service/core"
	"github.com/idelsangithub/business-logic-service/store/remote"
	"github.com/shopspring/decimal"
)

func New(client *remote.Client) core.CustomerStore {
	return &customerStore{client: client}
}

type customerStore struct {
	client *remote.Client
}

func (s *customerStore) Create(ctx context.Context, customer *core.Customer) (*core.Customer, error) {
	var out core.Customer
	if err := s.client.Call(ctx, "create_customer", http.MethodPost, "/customers", customer, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *customerStore) Find(ctx context.Context, id int64) (*core.Customer, error) {
	var out core.Customer
	path := fmt.Sprintf("/customers/%d", id)
	if err := s.client.Call(ctx, "find_customer", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *customerStore) FindByIdentity(ctx context.Context, document, phone string) (*core.Customer, error) {
	var out core.Customer
	path := fmt.Sprintf("/customers/%s/%s", url.PathEscape(document), url.PathEscape(phone))
	if err := s.client.Call(ctx, "find_customer_identity", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *customerStore) AdjustBalance(ctx context.Context, id int64, amount decimal.Decimal, direction core.AdjustDirection) (*core.Customer, error) {
	body := map[string]any{
		"amount":    amount,
		"direction": direction,
	}

	var out core.Customer
	path := fmt.Sprintf("/customers/%d/balance", id)
	if err := s.client.Call(ctx, "adjust_balance", http.MethodPatch, path, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

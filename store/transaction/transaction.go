package transaction

import (
	"context"
	"net/http"

	"github.com/idelsangithub/business-logic-service/core"
	"github.com/idelsangithub/business-logic-service/store/remote"
)

func New(client *remote.Client) core.TransactionStore {
	return &transactionStore{client: client}
}

type transactionStore struct {
	client *remote.Client
}

func (s *transactionStore) Create(ctx context.Context, transaction *core.Transaction) error {
	return s.client.Call(ctx, "create_transaction", http.MethodPost, "/transactions", transaction, nil)
}

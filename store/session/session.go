package session

import (
	"context"
	"net/http"
	"net/url"

	"github.com/idelsangithub/business-logic-service/core"
	"github.com/idelsangithub/business-logic-service/store/remote"
)

func New(client *remote.Client) core.SessionStore {
	return &sessionStore{client: client}
}

type sessionStore struct {
	client *remote.Client
}

func (s *sessionStore) Create(ctx context.Context, session *core.PaymentSession) (*core.PaymentSession, error) {
	var out core.PaymentSession
	if err := s.client.Call(ctx, "create_session", http.MethodPost, "/sessions", session, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *sessionStore) Find(ctx context.Context, sessionID string) (*core.PaymentSession, error) {
	var out core.PaymentSession
	path := "/sessions/" + url.PathEscape(sessionID)
	if err := s.client.Call(ctx, "find_session", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *sessionStore) UpdateState(ctx context.Context, sessionID string, to core.SessionState) error {
	body := map[string]any{"state": to}
	path := "/sessions/" + url.PathEscape(sessionID) + "/state"

	return s.client.Call(ctx, "update_session_state", http.MethodPatch, path, body, nil)
}

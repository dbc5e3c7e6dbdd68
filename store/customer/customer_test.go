package customer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/idelsangithub/business-logic-service/core"
	"github.com/idelsangithub/business-logic-service/store/remote"
)

type recordedRequest struct {
	method string
	path   string
	body   map[string]any
}

func newTestStore(t *testing.T, payload string) (core.CustomerStore, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&rec.body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := remote.New(remote.Config{BaseURL: srv.URL, Timeout: time.Second}, logger)

	return New(client), rec
}

const customerPayload = `{"code":200,"message":"ok","data":{"id":7,"document":"CC1045","phone":"3001112233","balance":"40.00"}}`

func TestFindByIdentity(t *testing.T) {
	store, rec := newTestStore(t, customerPayload)

	customer, err := store.FindByIdentity(context.Background(), "CC1045", "3001112233")
	if err != nil {
		t.Fatalf("FindByIdentity() error = %v", err)
	}

	if rec.method != http.MethodGet || rec.path != "/customers/CC1045/3001112233" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}

	if customer.ID != 7 || !customer.Balance.Equal(decimal.RequireFromString("40.00")) {
		t.Errorf("customer = %+v", customer)
	}
}

func TestFind(t *testing.T) {
	store, rec := newTestStore(t, customerPayload)

	if _, err := store.Find(context.Background(), 7); err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if rec.method != http.MethodGet || rec.path != "/customers/7" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}
}

func TestCreate(t *testing.T) {
	store, rec := newTestStore(t, customerPayload)

	_, err := store.Create(context.Background(), &core.Customer{
		Document: "CC1045",
		Name:     "Ana",
		Email:    "ana@example.com",
		Phone:    "3001112233",
	})

	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/customers" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}

	if rec.body["document"] != "CC1045" {
		t.Errorf("body = %v", rec.body)
	}
}

func TestAdjustBalance(t *testing.T) {
	store, rec := newTestStore(t, customerPayload)

	_, err := store.AdjustBalance(context.Background(), 7, decimal.RequireFromString("60.00"), core.AdjustDecrement)
	if err != nil {
		t.Fatalf("AdjustBalance() error = %v", err)
	}

	if rec.method != http.MethodPatch || rec.path != "/customers/7/balance" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}

	if rec.body["direction"] != "decrement" {
		t.Errorf("direction = %v", rec.body["direction"])
	}
}

func TestFindByIdentityNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"customer not found"}`))
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := New(remote.New(remote.Config{BaseURL: srv.URL, Timeout: time.Second}, logger))

	_, err := store.FindByIdentity(context.Background(), "CC404", "300")
	if err == nil {
		t.Fatal("FindByIdentity() error = nil, want 404")
	}
}

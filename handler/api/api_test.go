package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/idelsangithub/business-logic-service/core"
)

type fakeWallets struct {
	registerErr error
	rechargeErr error
	balanceErr  error
	balance     decimal.Decimal
}

func (f *fakeWallets) Register(ctx context.Context, input core.RegisterInput) (*core.Customer, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}

	return &core.Customer{ID: 1, Document: input.Document, Name: input.Name, Email: input.Email, Phone: input.Phone}, nil
}

func (f *fakeWallets) Recharge(ctx context.Context, document, phone string, amount decimal.Decimal) (*core.Customer, error) {
	if f.rechargeErr != nil {
		return nil, f.rechargeErr
	}

	return &core.Customer{ID: 1, Document: document, Phone: phone, Balance: amount}, nil
}

func (f *fakeWallets) Balance(ctx context.Context, document, phone string) (decimal.Decimal, error) {
	if f.balanceErr != nil {
		return decimal.Zero, f.balanceErr
	}

	return f.balance, nil
}

type fakePayments struct {
	initiateErr error
	confirmErr  error
}

func (f *fakePayments) Initiate(ctx context.Context, document, phone string, amount decimal.Decimal) (*core.PaymentReceipt, error) {
	if f.initiateErr != nil {
		return nil, f.initiateErr
	}

	return &core.PaymentReceipt{SessionID: "abc", ConfirmationMessage: "check your email"}, nil
}

func (f *fakePayments) Confirm(ctx context.Context, sessionID, token string) (*core.Customer, error) {
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}

	return &core.Customer{ID: 1, Balance: decimal.RequireFromString("40.00")}, nil
}

func newTestServer(wallets *fakeWallets, payments *fakePayments) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(wallets, payments, logger).Handler()
}

func do(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %s", w.Body.String())
	}

	return w, env
}

func TestRegisterCustomer(t *testing.T) {
	handler := newTestServer(&fakeWallets{}, &fakePayments{})

	w, env := do(t, handler, http.MethodPost, "/customers",
		`{"document":"CC1","name":"Ana","email":"ana@example.com","phone":"300"}`)

	if w.Code != http.StatusOK || env.Code != http.StatusOK {
		t.Errorf("status = %d, envelope code = %d", w.Code, env.Code)
	}

	if env.Data == nil {
		t.Error("envelope has no payload")
	}
}

func TestRegisterCustomerValidation(t *testing.T) {
	handler := newTestServer(&fakeWallets{}, &fakePayments{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing document", `{"name":"Ana","email":"ana@example.com","phone":"300"}`},
		{"bad email", `{"document":"CC1","name":"Ana","email":"nope","phone":"300"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, handler, http.MethodPost, "/customers", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}

			if env.Data != nil {
				t.Error("failure envelope carries a payload")
			}
		})
	}
}

func TestErrorKindMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", core.NotFound("customer not found"), http.StatusNotFound, "customer not found"},
		{"conflict", core.Conflict("insufficient balance"), http.StatusConflict, "insufficient balance"},
		{"bad request", core.BadRequest("invalid or expired token"), http.StatusBadRequest, "invalid or expired token"},
		{"internal", core.Internal("store unavailable, try again later"), http.StatusInternalServerError, "store unavailable, try again later"},
		{"unclassified gets safe default", io.ErrUnexpectedEOF, http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestServer(&fakeWallets{}, &fakePayments{initiateErr: tt.err})

			w, env := do(t, handler, http.MethodPost, "/payments/",
				`{"document":"CC1","phone":"300","amount":10}`)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if env.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", env.Message, tt.wantMsg)
			}
		})
	}
}

func TestInitiatePurchase(t *testing.T) {
	handler := newTestServer(&fakeWallets{}, &fakePayments{})

	w, env := do(t, handler, http.MethodPost, "/payments/",
		`{"document":"CC1","phone":"300","amount":"60.00"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, env.Message)
	}

	data, _ := env.Data.(map[string]any)
	if data["session_id"] != "abc" {
		t.Errorf("payload = %v", env.Data)
	}
}

func TestConfirmPurchase(t *testing.T) {
	handler := newTestServer(&fakeWallets{}, &fakePayments{})

	w, _ := do(t, handler, http.MethodPost, "/payments/confirm",
		`{"session_id":"abc","token":"123456"}`)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestConfirmPurchaseValidation(t *testing.T) {
	handler := newTestServer(&fakeWallets{}, &fakePayments{})

	w, _ := do(t, handler, http.MethodPost, "/payments/confirm", `{"token":"123456"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestQueryBalance(t *testing.T) {
	handler := newTestServer(&fakeWallets{balance: decimal.RequireFromString("42.42")}, &fakePayments{})

	w, env := do(t, handler, http.MethodGet, "/wallet/balance?document=CC1&phone=300", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, env.Message)
	}

	data, _ := env.Data.(map[string]any)
	if data["balance"] != "42.42" {
		t.Errorf("balance payload = %v", env.Data)
	}
}

func TestRechargeBalance(t *testing.T) {
	handler := newTestServer(&fakeWallets{}, &fakePayments{})

	w, _ := do(t, handler, http.MethodPost, "/wallet/recharge",
		`{"document":"CC1","phone":"300","amount":"25.00"}`)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

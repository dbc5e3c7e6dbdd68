// Package api exposes the wallet operations as a JSON API. Every response,
// success or failure, is the same envelope: a code, a human-readable
// message and an optional payload.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/idelsangithub/business-logic-service/core"
)

func New(wallets core.WalletService, payments core.PaymentService, logger *slog.Logger) *Server {
	return &Server{
		wallets:  wallets,
		payments: payments,
		logger:   logger.With("server", "api"),
	}
}

type Server struct {
	wallets  core.WalletService
	payments core.PaymentService
	logger   *slog.Logger
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/customers", s.registerCustomer)
	r.Route("/wallet", func(r chi.Router) {
		r.Post("/recharge", s.rechargeBalance)
		r.Get("/balance", s.queryBalance)
	})
	r.Route("/payments", func(r chi.Router) {
		r.Post("/", s.initiatePurchase)
		r.Post("/confirm", s.confirmPurchase)
	})

	return r
}

type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (s *Server) respond(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Code: code, Message: message, Data: data})
}

func (s *Server) respondErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch core.KindOf(err) {
	case core.KindBadRequest:
		status = http.StatusBadRequest
	case core.KindNotFound:
		status = http.StatusNotFound
	case core.KindConflict:
		status = http.StatusConflict
	}

	var derr *core.Error
	if errors.As(err, &derr) {
		message = derr.Message
	} else {
		s.logger.Error("unclassified error reached handler", "err", err)
	}

	s.respond(w, status, message, nil)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respond(w, http.StatusBadRequest, "malformed request body", nil)
		return false
	}

	if _, err := govalidator.ValidateStruct(dst); err != nil {
		s.respond(w, http.StatusBadRequest, err.Error(), nil)
		return false
	}

	return true
}

type registerRequest struct {
	Document string `json:"document" valid:"required"`
	Name     string `json:"name" valid:"required"`
	Email    string `json:"email" valid:"email,required"`
	Phone    string `json:"phone" valid:"required"`
}

func (s *Server) registerCustomer(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decode(w, r, &req) {
		return
	}

	customer, err := s.wallets.Register(r.Context(), core.RegisterInput{
		Document: req.Document,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	})

	if err != nil {
		s.respondErr(w, err)
		return
	}

	s.respond(w, http.StatusOK, "customer registered", customer)
}

type rechargeRequest struct {
	Document string          `json:"document" valid:"required"`
	Phone    string          `json:"phone" valid:"required"`
	Amount   decimal.Decimal `json:"amount" valid:"-"`
}

func (s *Server) rechargeBalance(w http.ResponseWriter, r *http.Request) {
	var req rechargeRequest
	if !s.decode(w, r, &req) {
		return
	}

	customer, err := s.wallets.Recharge(r.Context(), req.Document, req.Phone, req.Amount)
	if err != nil {
		s.respondErr(w, err)
		return
	}

	s.respond(w, http.StatusOK, "wallet recharged", customer)
}

func (s *Server) queryBalance(w http.ResponseWriter, r *http.Request) {
	document := r.URL.Query().Get("document")
	phone := r.URL.Query().Get("phone")

	balance, err := s.wallets.Balance(r.Context(), document, phone)
	if err != nil {
		s.respondErr(w, err)
		return
	}

	s.respond(w, http.StatusOK, "balance fetched", map[string]any{"balance": balance})
}

type initiateRequest struct {
	Document string          `json:"document" valid:"required"`
	Phone    string          `json:"phone" valid:"required"`
	Amount   decimal.Decimal `json:"amount" valid:"-"`
}

func (s *Server) initiatePurchase(w http.ResponseWriter, r *http.Request) {
	var req initiateRequest
	if !s.decode(w, r, &req) {
		return
	}

	receipt, err := s.payments.Initiate(r.Context(), req.Document, req.Phone, req.Amount)
	if err != nil {
		s.respondErr(w, err)
		return
	}

	s.respond(w, http.StatusOK, "payment session created", receipt)
}

type confirmRequest struct {
	SessionID string `json:"session_id" valid:"required"`
	Token     string `json:"token" valid:"required"`
}

func (s *Server) confirmPurchase(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if !s.decode(w, r, &req) {
		return
	}

	customer, err := s.payments.Confirm(r.Context(), req.SessionID, req.Token)
	if err != nil {
		s.respondErr(w, err)
		return
	}

	s.respond(w, http.StatusOK, "payment confirmed", customer)
}

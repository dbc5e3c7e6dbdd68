// Package remote is the HTTP client for the data-store service, the sole
// system of record for customers, payment sessions and transactions.
// Every call is a single round trip with a bounded timeout; retry policy,
// if any, belongs to the caller.
package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL string `valid:"url,required"`
	Timeout time.Duration
}

func New(cfg Config, logger *slog.Logger) *Client {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		rc:     rc,
		logger: logger.With("store", "remote"),
	}
}

type Client struct {
	rc     *resty.Client
	logger *slog.Logger
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Call performs one round trip against the store and decodes the response
// envelope into out (when out is non-nil). A transport failure wraps
// ErrUnavailable; a non-success envelope comes back as *Error. op names the
// logical endpoint for metrics and logs.
func (c *Client) Call(ctx context.Context, op, method, path string, body, out any) error {
	start := time.Now()

	err := c.call(ctx, method, path, body, out)
	observeCall(op, err, time.Since(start))

	if err != nil {
		c.logger.Debug("store call failed", "op", op, "err", err)
	}

	return err
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &UnavailableError{Cause: err}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		if !resp.IsSuccess() {
			return &Error{Code: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		}

		return &Error{Code: http.StatusInternalServerError, Message: "malformed store response"}
	}

	if env.Code == 0 {
		env.Code = resp.StatusCode()
	}

	if env.Code < http.StatusOK || env.Code > 299 {
		return &Error{Code: env.Code, Message: env.Message}
	}

	if out != nil {
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return &Error{Code: http.StatusInternalServerError, Message: "empty payload from store"}
		}

		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Code: http.StatusInternalServerError, Message: "undecodable payload from store"}
		}
	}

	return nil
}

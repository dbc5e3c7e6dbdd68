// Package notify delivers confirmation codes over SMTP. Delivery is
// best-effort from the workflow's point of view: callers dispatch sends in
// detached goroutines and only log failures.
package notify

import (
	"context"
	"log/slog"

	"github.com/asaskevich/govalidator"
	"github.com/wneessen/go-mail"

	"github.com/idelsangithub/business-logic-service/core"
)

type Config struct {
	Host     string `valid:"required"`
	Port     int
	From     string `valid:"email,required"`
	Username string
	Password string
}

func New(cfg Config, logger *slog.Logger) (core.Notifier, error) {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}

	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}

	return &sender{
		client: client,
		from:   cfg.From,
		logger: logger.With("service", "notify"),
	}, nil
}

type sender struct {
	client *mail.Client
	from   string
	logger *slog.Logger
}

func (s *sender) Send(ctx context.Context, notification core.Notification) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return err
	}

	if err := msg.To(notification.To); err != nil {
		return err
	}

	msg.Subject(notification.Subject)
	msg.SetBodyString(mail.TypeTextHTML, notification.Body)

	return s.client.DialAndSendWithContext(ctx, msg)
}

// NewNop returns a notifier that drops every message after logging it.
// Used when no SMTP endpoint is configured and in tests.
func NewNop(logger *slog.Logger) core.Notifier {
	return nop{logger: logger.With("service", "notify")}
}

type nop struct {
	logger *slog.Logger
}

func (n nop) Send(_ context.Context, notification core.Notification) error {
	n.logger.Debug("notification dropped", "to", notification.To, "subject", notification.Subject)
	return nil
}

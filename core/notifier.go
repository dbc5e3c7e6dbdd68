package core

import "context"

type Notification struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers confirmation codes. Delivery is best-effort: callers
// dispatch sends detached from the request and only log failures.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}

package remote

import "fmt"

// Error is a non-success envelope returned by the store. Code follows the
// store's HTTP-like scheme (400/404/409/500).
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote store: %d %s", e.Code, e.Message)
}

// UnavailableError means the request produced no response at all: the store
// is unreachable or the call timed out.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("remote store unavailable: %v", e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

package core

import "errors"

type ErrorKind uint8

const (
	_ ErrorKind = iota
	KindBadRequest
	KindNotFound
	KindConflict
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is the closed set of failures the service exposes to callers.
// Workflow code branches on Kind, never on transport status codes.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// KindOf reports the domain kind of err, defaulting to KindInternal for
// anything that is not a *Error.
func KindOf(err error) ErrorKind {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind
	}

	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

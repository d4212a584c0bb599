// Package apperr defines the closed set of errors the API renders to clients.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an Error. The set is closed; Status covers every member.
type Kind int

const (
	// KindInternal is anything unexpected. Its message is never sent to clients.
	KindInternal Kind = iota
	// KindValidation is malformed or missing client input.
	KindValidation
	// KindFormat is an identifier that cannot be parsed as the expected type.
	KindFormat
	// KindNotFound is a referenced resource that does not exist.
	KindNotFound
)

// FormatMessage is the fixed client message for format violations.
const FormatMessage = "Bad request, invalid id/not a number"

// InternalMessage is the generic client message for internal errors.
const InternalMessage = "Internal Server Error"

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindFormat:
		return "format"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a classified application error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindFormat:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// ClientMessage is the message safe to show to callers.
func (e *Error) ClientMessage() string {
	switch e.Kind {
	case KindFormat:
		return FormatMessage
	case KindInternal:
		return InternalMessage
	}
	return e.Msg
}

// Validation builds a 400 error for bad client input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// Format builds a 400 error for an unparseable identifier.
func Format(err error) *Error {
	return &Error{Kind: KindFormat, Msg: FormatMessage, Err: err}
}

// NotFound builds a 404 error with a resource specific message.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Internal wraps an unexpected failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal error", Err: err}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of kind k.
func IsKind(err error, k Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == k
}

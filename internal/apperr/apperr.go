// Package apperr defines the error kinds shared by the store, the index and
// the HTTP layer.
package apperr

import (
	"context"
	"errors"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInvalidCredential   = errors.New("invalid credential")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Error carries a caller-facing message next to its kind.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.Error()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an error of the given kind with msg as its text.
func New(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches kind and msg to a lower level error.
func Wrap(kind, err error, msg string) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Status maps an error to its default HTTP status code.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

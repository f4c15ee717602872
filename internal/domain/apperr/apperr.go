// Package apperr defines the error kinds every domain package classifies its
// sentinel errors into. Adapters map a kind to a transport status with
// errors.Is, so a new domain error needs no adapter change.
package apperr

import "errors"

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a domain error of a given Kind. Field names the offending input
// field, when there is one.
type Error struct {
	Kind    error
	Message string
	Field   string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func NewField(kind error, field, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Field: field}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

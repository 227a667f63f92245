// Package apperr defines the closed set of client-facing error kinds and
// the classification of internal failures onto it.
package apperr

import (
	"errors"
	"net/http"
)

// Kind identifies one client-facing failure class.
type Kind int

const (
	KindValidation Kind = iota
	KindAuth
	KindAccessRights
	KindNotFound
	KindConflict
	KindInternal
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindAccessRights:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure with a stable, client-safe message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying cause, if any, for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// New creates a classified error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a classified error that retains its cause. The cause is
// never part of the client-facing message.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Validation reports malformed input.
func Validation(message string) *Error { return New(KindValidation, message) }

// Auth reports a missing, invalid, or expired credential.
func Auth(message string) *Error { return New(KindAuth, message) }

// AccessRights reports an authenticated but unauthorized mutation.
func AccessRights(message string) *Error { return New(KindAccessRights, message) }

// NotFound reports an absent resource or identity.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// Conflict reports a uniqueness violation.
func Conflict(message string) *Error { return New(KindConflict, message) }

// Classify maps err onto the taxonomy. Already-classified errors pass
// through unchanged; anything else becomes an internal error with a
// generic message so no internal detail reaches the client.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(KindInternal, "internal server error", err)
}

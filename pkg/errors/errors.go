// Package errors defines the coded errors returned to planner callers. Each
// predefined value is a kind; request-specific errors derived with Clone,
// Clonef or WrapAs keep matching their kind through errors.Is.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a coded error carrying the HTTP status it maps to.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if e == nil || !errors.As(target, &t) || t == nil {
		return false
	}
	return e.Code == t.Code
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches a code, status and message to err.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// WrapAs wraps cause under the code and status of kind.
func WrapAs(cause error, kind *Error, message string) *Error {
	if message == "" {
		message = kind.Message
	}
	return Wrap(cause, kind.Code, kind.Status, message)
}

// Kinds.
var (
	ErrNotFound   = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal   = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")

	ErrInvalidDayToken      = New("INVALID_DAY_TOKEN", http.StatusBadRequest, "invalid day token")
	ErrMalformedTimeRange   = New("MALFORMED_TIME_RANGE", http.StatusBadRequest, "malformed time range")
	ErrInvalidConfiguration = New("INVALID_CONFIGURATION", http.StatusBadRequest, "invalid schedule parameters")
	ErrCombinationLimit     = New("COMBINATION_LIMIT", http.StatusUnprocessableEntity, "too many section combinations")
	ErrCatalogUnavailable   = New("CATALOG_UNAVAILABLE", http.StatusBadGateway, "course catalog unavailable")

	ErrCacheMiss = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// FromError returns the *Error in err's chain, or an internal error hiding
// err's text.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return WrapAs(err, ErrInternal, "")
}

// StatusOf is the HTTP status err maps to.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return FromError(err).Status
}

// Clone copies kind, replacing the message when one is given.
func Clone(kind *Error, message string) *Error {
	if kind == nil {
		return nil
	}
	clone := *kind
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Clonef is Clone with a formatted message.
func Clonef(kind *Error, format string, args ...interface{}) *Error {
	return Clone(kind, fmt.Sprintf(format, args...))
}

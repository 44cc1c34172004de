package errors

import (
	"fmt"
	"net/http"
)

// Error represents an application error with an HTTP status code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap returns a copy of base carrying err as its cause. The canonical
// instances below are shared, so they must never be mutated in place.
func Wrap(base *Error, err error) *Error {
	return &Error{Code: base.Code, Message: base.Message, Err: err}
}

// Common error types
var (
	ErrBadRequest       = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized     = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrNotFound         = New(http.StatusNotFound, "Not found", nil)
	ErrConflict         = New(http.StatusConflict, "Conflict", nil)
	ErrMethodNotAllowed = New(http.StatusMethodNotAllowed, "Method not allowed", nil)
	ErrInternalServer   = New(http.StatusInternalServerError, "Internal server error", nil)
	ErrUpstream         = New(http.StatusBadGateway, "Payment gateway unavailable", nil)
)

// Booking lifecycle error types
var (
	ErrBookingNotFound    = New(http.StatusNotFound, "Booking not found", nil)
	ErrBookingNotPending  = New(http.StatusConflict, "Booking is not awaiting payment", nil)
	ErrPassIDRequired     = New(http.StatusBadRequest, "passId is required", nil)
	ErrInvalidSignature   = New(http.StatusUnauthorized, "Invalid webhook signature", nil)
	ErrMissingEventID     = New(http.StatusBadRequest, "Missing webhook event id", nil)
	ErrPassIssuanceFailed = New(http.StatusInternalServerError, "Pass issuance failed", nil)
)

// AsError coerces any error into an *Error, defaulting to internal server
// error so raw store/gateway detail never reaches a client.
func AsError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return Wrap(ErrInternalServer, err)
}

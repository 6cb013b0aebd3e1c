package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by the HTTP adapters. mapHTTPError maps
// status codes onto them so callers can use errors.Is regardless of the body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("version conflict")
	ErrUnprocessable       = errors.New("validation failed")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrUnreachable wraps transport failures: DNS, refused connections,
	// timeouts and cancelled contexts.
	ErrUnreachable = errors.New("space api unreachable")

	// ErrInvalidOptions is returned by the client factory when the options
	// cannot produce working clients.
	ErrInvalidOptions = errors.New("invalid client options")

	// ErrInvalidSyncResponse is returned when a sync page has neither a next
	// page nor a next sync url.
	ErrInvalidSyncResponse = errors.New("invalid sync response")
)

// RequestError describes a failed HTTP request. It wraps one of the sentinel
// errors above and keeps the request line so failures can be logged and
// retried by hand.
type RequestError struct {
	Method string
	URL    string
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s %s: %d: %v", e.Method, e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

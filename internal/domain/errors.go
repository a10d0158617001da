package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrUnexpectedStatus covers non-2xx responses without a more specific
	// mapping.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrEmptyBody is returned when a 2xx response other than 204 carries
	// no payload where one was expected.
	ErrEmptyBody = errors.New("empty response body")

	// ErrDecode is returned when a response payload cannot be decoded.
	ErrDecode = errors.New("decoding response")

	// ErrTransport is returned when the request never produced a response
	// (connection refused, timeout, circuit open).
	ErrTransport = errors.New("transport failure")

	// ErrNotConfigured is returned when no server base URL has been set.
	ErrNotConfigured = errors.New("server base URL is not configured")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

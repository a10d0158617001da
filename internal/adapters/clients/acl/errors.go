// Package acl implements the Anti-Corruption Layer between the Lister REST
// API and the domain types. Resource translators live in subpackages
// (acl/list, acl/item, acl/category); request execution and the error
// taxonomy shared by every call live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/lister-client/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// StatusError is a non-2xx response. It unwraps to the domain sentinel
// matching the status code, or to a *domain.ValidationError when the
// server listed field errors.
type StatusError struct {
	Code   int
	Status string
	Detail string
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API Error: %d - %s", e.Code, e.Status)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// EmptyBodyError is a 2xx response other than 204 that carried no payload
// where one was expected.
type EmptyBodyError struct {
	Code int
}

func (e *EmptyBodyError) Error() string {
	return fmt.Sprintf("API Error: Response body is null for %d", e.Code)
}

func (e *EmptyBodyError) Unwrap() error {
	return domain.ErrEmptyBody
}

// DecodeError is a 2xx response whose payload could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() []error {
	return []error{domain.ErrDecode, e.Err}
}

// TransportError is a request that never produced a response: connection
// failures, timeouts, an open circuit breaker or a canceled rate-limit wait.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() []error {
	return []error{domain.ErrTransport, e.Err}
}

// problemDetail represents an RFC 7807 Problem Details response.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error within an RFC 7807 response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a non-2xx response to a *StatusError. The message
// always carries the code and reason phrase; an RFC 7807 body, when present,
// contributes Detail and, for 400/422, the field errors.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	serr := &StatusError{
		Code:   resp.StatusCode,
		Status: statusText(resp),
		Detail: pd.Detail,
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		serr.Err = domain.ErrNotFound

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			serr.Err = toValidationError(pd.Errors)
		} else {
			serr.Err = domain.ErrValidation
		}

	case resp.StatusCode == http.StatusConflict:
		serr.Err = domain.ErrConflict

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		serr.Err = domain.ErrForbidden

	case resp.StatusCode >= http.StatusInternalServerError:
		serr.Err = domain.ErrUnavailable

	default:
		serr.Err = domain.ErrUnexpectedStatus
	}

	return serr
}

// statusText returns the reason phrase the server sent, falling back to the
// canonical text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// parseProblemDetail attempts to read and parse an RFC 7807 body from the
// response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError converts RFC 7807 error details to a domain ValidationError.
// It strips the "body." prefix from locations to produce clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}

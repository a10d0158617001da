package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/lister-client/internal/domain"
	"github.com/jsamuelsen11/lister-client/internal/platform/logging"
)

var (
	// ErrUnauthorized is returned when a request lacks the bearer token the
	// server was configured with.
	ErrUnauthorized = errors.New("missing or invalid bearer token")

	// ErrTimeout is returned when a handler outlives the request deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrInternal hides the cause of a recovered panic.
	ErrInternal = errors.New("internal server error")
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusFor lists the sentinels the fake server maps to a status, most
// specific first. Anything else is a 500.
var statusFor = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusServiceUnavailable},
	{ErrTimeout, http.StatusGatewayTimeout},
}

func errorStatus(err error) int {
	for _, m := range statusFor {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem document for err. The Lister client
// reads Detail as the error message, so unmapped errors are reported as
// ErrInternal rather than exposing their text.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := errorStatus(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = ErrInternal.Error()
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = make([]ErrorDetail, 0, len(verr.Fields))
		for field, msg := range verr.Fields {
			resp.Errors = append(resp.Errors, ErrorDetail{Location: "body." + field, Message: msg})
		}
		slices.SortFunc(resp.Errors, func(a, b ErrorDetail) int { return strings.Compare(a.Location, b.Location) })
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json. A 401 carries a
// Bearer challenge.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	if resp.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="lister"`)
	}
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", encErr),
		)
	}
}

package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/jsamuelsen11/lister-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/lister-client/internal/domain"
)

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"not found", fmt.Errorf("item 42: %w", domain.ErrNotFound), http.StatusNotFound, "item 42: not found"},
		{"validation", &domain.ValidationError{Fields: map[string]string{"name": "is required"}}, http.StatusBadRequest, ""},
		{"conflict", fmt.Errorf("category %q: %w", "Dairy", domain.ErrConflict), http.StatusConflict, `category "Dairy": conflict`},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, domain.ErrForbidden.Error()},
		{"unauthorized", dto.ErrUnauthorized, http.StatusUnauthorized, "missing or invalid bearer token"},
		{"unavailable", domain.ErrUnavailable, http.StatusServiceUnavailable, domain.ErrUnavailable.Error()},
		{"timeout", dto.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
		{"internal", dto.ErrInternal, http.StatusInternalServerError, "internal server error"},
		{"unmapped error text is hidden", errors.New("sqlite: disk I/O"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.NewErrorResponse(httptest.NewRequest(http.MethodGet, "/items/42", http.NoBody), tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
			if tt.wantDetail != "" && got.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", got.Detail, tt.wantDetail)
			}
			if got.Type != "about:blank" || got.Instance != "/items/42" {
				t.Errorf("Type, Instance = %q, %q", got.Type, got.Instance)
			}
		})
	}
}

func TestNewErrorResponse_ValidationDetailsSorted(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"name":       "is required",
		"amount":     "must not be negative, got -1",
		"amountUnit": "too long",
	}}
	got := dto.NewErrorResponse(httptest.NewRequest(http.MethodPost, "/lists/1/items", http.NoBody), verr)

	var locations []string
	for _, d := range got.Errors {
		locations = append(locations, d.Location)
	}
	want := []string{"body.amount", "body.amountUnit", "body.name"}
	if !slices.Equal(locations, want) {
		t.Errorf("locations = %v, want %v", locations, want)
	}

	if plain := dto.NewErrorResponse(httptest.NewRequest(http.MethodGet, "/lists/1", http.NoBody), domain.ErrNotFound); plain.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", plain.Errors)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantChallenge bool
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, false},
		{"unauthorized carries a bearer challenge", dto.ErrUnauthorized, http.StatusUnauthorized, true},
		{"forbidden has no challenge", domain.ErrForbidden, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			dto.WriteErrorResponse(w, httptest.NewRequest(http.MethodGet, "/lists", http.NoBody), tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status code = %d, want %d", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := w.Header().Get("WWW-Authenticate") != ""; got != tt.wantChallenge {
				t.Errorf("WWW-Authenticate present = %v, want %v", got, tt.wantChallenge)
			}

			var resp dto.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("body status = %d, want %d", resp.Status, tt.wantStatus)
			}
		})
	}
}

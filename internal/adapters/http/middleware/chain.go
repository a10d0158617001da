// Package middleware is the request pipeline of the fake Lister server.
//
// Stack applies, outermost first:
//
//	Recovery → RequestID → OpenTelemetry → Logging → BearerAuth → Timeout → handler
//
// Authentication runs after Logging so rejected requests are still logged,
// and before Timeout so they never start a handler goroutine.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/lister-client/internal/platform/telemetry"
)

// Chain composes middleware into one. The first argument is outermost:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// StackConfig parameterizes Stack. Metrics may be nil and an empty
// BearerToken leaves the API open.
type StackConfig struct {
	Logger      *slog.Logger
	Metrics     *telemetry.Metrics
	BearerToken string
	Timeout     time.Duration
}

// Stack returns the full fake server pipeline as a single middleware.
func Stack(cfg StackConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Chain(
		Recovery(logger),
		RequestID(),
		OpenTelemetry(cfg.Metrics),
		Logging(logger),
		BearerAuth(cfg.BearerToken),
		Timeout(cfg.Timeout),
	)
}

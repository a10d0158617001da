// Package logging builds the slog logger shared by the CLI, the HTTP client
// and the fake server, and carries it through contexts.
//
//	logger := logging.New("warn", "text", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).WarnContext(ctx, "retrying Lister API request")
//
// Failures are logged with the operation and the ids involved:
//
//	logger.ErrorContext(ctx, "remote call failed",
//	    slog.String("operation", "GetItems"),
//	    slog.Int("list_id", listID),
//	    slog.Any("error", err),
//	)
//
// Every handler built by New redacts credentials (see redact_handler.go);
// the bearer token is never written in clear text.
package logging

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Levels are the accepted log.level values. "off" discards everything, which
// keeps one-shot CLI output clean.
var Levels = []string{"debug", "info", "warn", "error", "off"}

// Formats are the accepted log.format values.
var Formats = []string{"json", "text"}

type contextKey struct{}

// New returns a logger writing to w. Unknown levels fall back to info and
// unknown formats to JSON. At debug level entries carry their source line.
func New(level, format string, w io.Writer) *slog.Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "off" {
		return slog.New(slog.DiscardHandler)
	}

	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ValidLevel reports whether level is one of Levels, ignoring case.
func ValidLevel(level string) bool {
	return slices.Contains(Levels, strings.ToLower(strings.TrimSpace(level)))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/lister-client/internal/adapters/http/dto"
)

// Recovery turns a handler panic into a 500 problem response and an error
// log carrying the stack. The panic value never reaches the client. When the
// response has already started only the log entry is written.
// http.ErrAbortHandler is re-raised so net/http aborts the connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := recordStatus(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if !sw.wrote {
					dto.WriteErrorResponse(sw, r, dto.ErrInternal)
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}

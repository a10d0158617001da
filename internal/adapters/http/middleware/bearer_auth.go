package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/lister-client/internal/adapters/http/dto"
)

// BearerAuth returns middleware that rejects requests whose Authorization
// header does not carry "Bearer <token>". An empty token disables the check.
// Paths under /health are always let through.
func BearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		want := []byte(token)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/health/") {
				next.ServeHTTP(w, r)
				return
			}

			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				w.Header().Set("WWW-Authenticate", "Bearer")
				dto.WriteErrorResponse(w, r, dto.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

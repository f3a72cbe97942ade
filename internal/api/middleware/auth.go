// Package middleware holds the HTTP middleware shared by the API routes.
package middleware

import (
	"net/http"

	"github.com/salonix/appointment-service/internal/api/handlers"
)

// Auth guards staff-facing routes. The upstream gateway authenticates the
// caller and forwards their identity in X-User-ID; requests without it are
// rejected.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-User-ID") == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing X-User-ID header")
			return
		}
		next.ServeHTTP(w, r)
	})
}

package transport

import (
	"net/http"
	"strings"

	"github.com/celebratehq/birthday-api/application/account"
	"github.com/celebratehq/birthday-api/constant"
	utilsContext "github.com/celebratehq/birthday-api/utils/context"
	"github.com/celebratehq/birthday-api/utils/errors"
	"github.com/gorilla/mux"
)

// AuthMiddleware returns a middleware that validates JWT sessions using AccountApp.
// It allows public endpoints (like /login, /register, /swagger/) without token.
func AuthMiddleware(accountApp account.AccountApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via AccountApp
			accountID, sessionID, err := accountApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed account and session IDs into context
			ctx := utilsContext.WithSession(r.Context(), accountID, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required).
// Internal paths carry their own service-key middleware.
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/register" {
		return true
	}

	return false
}

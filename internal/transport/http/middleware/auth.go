package middleware

import (
	"net/http"
	"strings"

	"fsadmin/internal/domain/auth"
	"fsadmin/internal/transport/http/api"
)

// Authenticate verifies the bearer token and stores the caller's identity
// in the request context.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			header := r.Header.Get("Authorization")
			if header == "" {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "missing authorization header", requestID)
				return
			}
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "malformed authorization header", requestID)
				return
			}

			claims, err := auth.ParseToken(secret, strings.TrimSpace(token))
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token", requestID)
				return
			}

			ctx := WithUser(r.Context(), UserContext{
				UserID: claims.UserID,
				Name:   claims.Name,
				Role:   claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

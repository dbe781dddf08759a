package middleware

import (
	"net/http"

	"fsadmin/internal/transport/http/api"
)

// RequireRole admits only callers whose role matches one of the given
// strings. Role checks are plain string comparison; there is no hierarchy,
// so a super-admin must be listed explicitly where it should pass.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			user, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
				return
			}
			if _, ok := allowed[user.Role]; !ok {
				api.Fail(w, http.StatusForbidden, "forbidden", "insufficient role", requestID)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"fsadmin/internal/requestctx"
)

const requestIDHeader = "X-Request-Id"

// RequestID honours an inbound X-Request-Id and mints one otherwise, so
// callers can correlate retries with server logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), id)))
	})
}

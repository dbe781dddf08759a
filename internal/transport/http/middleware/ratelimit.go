package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"fsadmin/internal/transport/http/api"
)

// RateLimit is a fixed-window per-client limiter keyed by remote IP. It is
// deliberately coarse; the window resets wholesale every minute.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		counts  = make(map[string]int)
		resetAt = time.Now().Add(time.Minute)
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			mu.Lock()
			if time.Now().After(resetAt) {
				counts = make(map[string]int)
				resetAt = time.Now().Add(time.Minute)
			}
			counts[host]++
			exceeded := counts[host] > perMinute
			mu.Unlock()

			if exceeded {
				api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package ratelimiter

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/sealnote/pkg/clientip"
)

// KeyFunc returns the bucket key for a request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys buckets by the address clientip.Middleware stored, falling
// back to the TCP peer.
func ByClientIP(prefix string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientip.FromContext(r.Context())
		if ip == "" {
			ip = clientip.RemoteIP(r)
		}
		return prefix + ip
	}
}

// Middleware takes one token per request and answers 429 too_many_requests
// with Retry-After once the bucket is empty. Store failures answer 503.
func Middleware(limiter RateLimiter, keyFunc KeyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := limiter.Allow(r.Context(), keyFunc(r))
			if err != nil {
				http.Error(w, "service_unavailable", http.StatusServiceUnavailable)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				if secs := int(result.RetryAfter().Seconds()); secs > 0 {
					h.Set("Retry-After", strconv.Itoa(secs))
				} else {
					h.Set("Retry-After", "1")
				}
				http.Error(w, "too_many_requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

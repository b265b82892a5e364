package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"
)

// KeyedLimiter is satisfied by ratelimit.KeyedLimiter.
type KeyedLimiter interface {
	Allow(key string) bool
	RetryAfter() time.Duration
}

// RateLimit returns middleware that limits requests per client IP.
func RateLimit(limiter KeyedLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				secs := int(math.Ceil(limiter.RetryAfter().Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

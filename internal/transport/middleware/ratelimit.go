package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/heartmarshall/karaoke-backend/internal/auth"
	"github.com/heartmarshall/karaoke-backend/internal/transport/problem"
)

// RateLimit limits requests per client IP to perMinute. A non-positive
// budget disables the limiter.
func RateLimit(perMinute int) Middleware {
	return limit(perMinute, httprate.KeyByRealIP)
}

// RateLimitByAPIKey limits legacy sync clients per presented key, falling
// back to the client IP when no key is sent. Keys are hashed before they
// are used as bucket names.
func RateLimitByAPIKey(perMinute int) Middleware {
	return limit(perMinute, func(r *http.Request) (string, error) {
		if k := ExtractAPIKey(r); k != "" {
			return "key:" + auth.HashToken(k), nil
		}
		return httprate.KeyByRealIP(r)
	})
}

func limit(perMinute int, key httprate.KeyFunc) Middleware {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	retryAfter := strconv.Itoa(int(time.Minute.Seconds())/perMinute + 1)

	return httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(key),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", retryAfter)
			problem.Write(w, r, http.StatusTooManyRequests, "rate limit exceeded")
		}),
	)
}

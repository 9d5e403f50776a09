package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bornholm/shopvibe/internal/syncx"
	"github.com/bornholm/shopvibe/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per key, each key owning its own token
// bucket.
type RateLimiter struct {
	rate     rate.Limit
	burst    int
	limiters syncx.Map[string, *rate.Limiter]
}

type KeyFunc func(r *http.Request) (string, error)

func (l *RateLimiter) Allow(key string) bool {
	limiter, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.rate, l.burst))
	return limiter.Allow()
}

// Forget drops the bucket of key.
func (l *RateLimiter) Forget(key string) {
	l.limiters.Delete(key)
}

func (l *RateLimiter) Middleware(getKey KeyFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key, err := getKey(r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve rate limit key", log.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !l.Allow(key) {
				w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter()))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (l *RateLimiter) retryAfter() int {
	if l.rate <= 0 || l.rate == rate.Inf {
		return 1
	}

	seconds := int(time.Duration(float64(time.Second) / float64(l.rate)).Round(time.Second).Seconds())
	if seconds < 1 {
		return 1
	}

	return seconds
}

func New(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  limit,
		burst: burst,
	}
}

// Package ratelimit enforces per-caller token-bucket limits: per client
// IP for user-facing routes, per internal-token subject for
// service-to-service routes. Built on golang.org/x/time/rate, wrapped
// in an echo middleware.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/builder/pkg/apierr"
)

// Limiter holds one token bucket per key, created lazily on first use
// and never evicted — callers are expected to be a bounded set of
// workspaces/internal subjects, not unbounded anonymous traffic.
type Limiter struct {
	rps   rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// New creates a Limiter allowing ratePerSecond sustained requests per
// key with a burst allowance of burst.
func New(ratePerSecond float64, burst int) *Limiter {
	return &Limiter{
		rps:     rate.Limit(ratePerSecond),
		burst:   burst,
		buckets: make(map[string]*rate.Limiter),
	}
}

func (l *Limiter) bucketFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(l.rps, l.burst)
		l.buckets[key] = b
	}
	return b
}

// Allow reports whether a request keyed by key may proceed right now,
// consuming one token if so.
func (l *Limiter) Allow(key string) bool {
	return l.bucketFor(key).Allow()
}

// KeyFunc extracts the rate-limit key (client IP, internal subject,
// workspace id, ...) from a request context.
type KeyFunc func(c *echo.Context) string

// ByClientIP keys the bucket by the request's remote address, suitable
// for user-facing routes without an authenticated internal subject.
func ByClientIP(c *echo.Context) string {
	return c.RealIP()
}

// Middleware returns echo middleware enforcing l, keyed by key(c).
func Middleware(l *Limiter, key KeyFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !l.Allow(key(c)) {
				env, status := apierr.ToEnvelope(apierr.New(apierr.KindRateLimit, "rate limit exceeded"))
				return c.JSON(status, env)
			}
			return next(c)
		}
	}
}

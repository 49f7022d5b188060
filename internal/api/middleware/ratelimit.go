package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/echart-dentnu/echart-api/internal/api/metrics"
)

// Admission policy names. Each endpoint class carries its own fixed-window
// budget; the limiter is keyed by client IP and has no visibility into
// per-user identity.
const (
	PolicyRead  = "read"
	PolicyWrite = "write"
	PolicyLogin = "login"
)

// RateLimit applies one named fixed-window policy to a route group.
// Overflow is rejected with 429; a failing store surfaces as 500 rather
// than admitting traffic unchecked.
func RateLimit(policy string, store echomw.RateLimiterStore) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			// Echo routes a store failure here with err set. That is an
			// outage, not throttling: answer 500 and keep it out of the
			// rejection counter.
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "rate limiter unavailable")
			}
			metrics.RateLimitedTotal.WithLabelValues(policy).Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		},
	})
}

// MemoryFixedWindowStore is an in-process fixed-window counter with the
// same admission semantics as the Redis-backed store. Used in tests and as
// a single-node fallback when Redis is not configured.
type MemoryFixedWindowStore struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	counts map[string]int
	bucket int64

	// now is swappable in tests.
	now func() time.Time
}

func NewMemoryFixedWindowStore(limit int, window time.Duration) *MemoryFixedWindowStore {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryFixedWindowStore{
		limit:  limit,
		window: window,
		counts: make(map[string]int),
		now:    time.Now,
	}
}

// Allow counts the request against the current window and reports whether
// it is within budget. Crossing a window boundary discards all counters.
func (s *MemoryFixedWindowStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.now().Unix() / int64(s.window.Seconds())
	if bucket != s.bucket {
		s.bucket = bucket
		s.counts = make(map[string]int)
	}

	s.counts[identifier]++
	return s.counts[identifier] <= s.limit, nil
}

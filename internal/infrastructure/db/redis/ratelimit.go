package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowStore is a fixed-window request counter usable as an
// echo middleware.RateLimiterStore. Requests are counted per identifier
// (client IP) per window bucket; the first increment in a bucket arms the
// key expiry so counters clean themselves up.
//
// The counter resets at the bucket boundary, so a burst straddling two
// windows can see up to twice the limit.
type FixedWindowStore struct {
	client *redis.Client
	policy string
	limit  int64
	window time.Duration
}

// NewFixedWindowStore creates a store for one named policy (read, write,
// login). Each policy keeps its own counter space.
func NewFixedWindowStore(client *redis.Client, policy string, limit int, window time.Duration) *FixedWindowStore {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowStore{client: client, policy: policy, limit: int64(limit), window: window}
}

// Allow reports whether the identifier may proceed in the current window.
// A Redis failure is returned to the caller rather than silently admitting
// traffic.
func (s *FixedWindowStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	bucket := time.Now().Unix() / int64(s.window.Seconds())
	key := fmt.Sprintf("ratelimit:%s:%s:%d", s.policy, identifier, bucket)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("ratelimit %s: %w", s.policy, err)
	}

	return incr.Val() <= s.limit, nil
}

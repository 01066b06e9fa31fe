package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter shared by every server instance.
// Each (key, window) pair maps to one Redis counter that expires with the window.
type Limiter struct {
	client goredis.Cmdable
	prefix string
	now    func() time.Time
}

// NewLimiter creates a limiter storing its counters under prefix.
func NewLimiter(client goredis.Cmdable, prefix string) *Limiter {
	return &Limiter{client: client, prefix: prefix, now: time.Now}
}

// Allow counts one hit for key and reports whether it fits into limit hits per
// window. When it does not, retryAfter is the time until the window resets.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	now := l.now()
	start := now.Truncate(window)
	counter := fmt.Sprintf("%s:%s:%d", l.prefix, key, start.Unix())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, counter)
	pipe.Expire(ctx, counter, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("redis.Limiter.Allow: %w", err)
	}

	if incr.Val() > int64(limit) {
		return false, start.Add(window).Sub(now), nil
	}
	return true, 0, nil
}

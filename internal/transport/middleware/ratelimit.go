package middleware

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Limiter decides whether one more hit for key fits into limit hits per window.
// retryAfter is meaningful only when allowed is false.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}

// RateLimit returns middleware that limits requests per client IP.
// scope separates the counters of different endpoints. When the limiter
// store fails the request is let through and the failure logged.
func RateLimit(l Limiter, scope string, perMinute int, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := scope + ":" + clientIP(r)

			ok, retryAfter, err := l.Allow(r.Context(), key, perMinute, time.Minute)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limiter unavailable",
					slog.String("scope", scope),
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retrySeconds(retryAfter)))
				writeError(w, http.StatusTooManyRequests, "rate_limited", "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func retrySeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}

// clientIP strips the port from RemoteAddr. RealIP upstream may already have
// replaced it with a bare address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// MemoryLimiter implements Limiter with per-key token buckets held in process.
type MemoryLimiter struct {
	buckets sync.Map // map[string]*bucket
	stop    chan struct{}
	now     func() time.Time
}

type bucket struct {
	tokens     float64
	maxTokens  float64
	interval   time.Duration // time to refill one token
	lastRefill time.Time
	mu         sync.Mutex
}

// NewMemoryLimiter creates a limiter with background cleanup of idle buckets.
// Call Stop() on shutdown.
func NewMemoryLimiter(cleanupInterval time.Duration) *MemoryLimiter {
	rl := &MemoryLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *MemoryLimiter) Stop() {
	close(rl.stop)
}

// Allow takes one token from the bucket for key.
func (rl *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	b := rl.getBucket(key, limit, window)
	ok, retryAfter := b.take(rl.now())
	return ok, retryAfter, nil
}

func (rl *MemoryLimiter) getBucket(key string, limit int, window time.Duration) *bucket {
	maxTokens := float64(limit)

	val, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		interval:   window / time.Duration(limit),
		lastRefill: rl.now(),
	})

	return val.(*bucket)
}

func (b *bucket) take(now time.Time) (bool, time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastRefill)
	if elapsed > 0 {
		b.tokens += float64(elapsed) / float64(b.interval)
		if b.tokens > b.maxTokens {
			b.tokens = b.maxTokens
		}
		b.lastRefill = now
	}

	if b.tokens < 1 {
		return false, time.Duration((1 - b.tokens) * float64(b.interval))
	}
	b.tokens--
	return true, 0
}

func (rl *MemoryLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now(), 10*time.Minute)
		}
	}
}

// sweep drops buckets idle for longer than maxIdle.
func (rl *MemoryLimiter) sweep(now time.Time, maxIdle time.Duration) {
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastRefill)
		b.mu.Unlock()
		if idle > maxIdle {
			rl.buckets.Delete(key)
		}
		return true
	})
}

package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/wb-go/wbf/ginext"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per actor (or client IP when the
// request is anonymous).
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	idle     time.Duration
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		idle:     time.Hour,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	entry, ok := rl.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastAccess = time.Now()
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

// Cleanup drops limiters not used for an hour, every interval, until ctx is done.
func (rl *RateLimiter) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep(time.Now().Add(-rl.idle))
		}
	}
}

func (rl *RateLimiter) sweep(threshold time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimiter) Middleware() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := ActorID(c)
		if key == "" {
			key = c.ClientIP()
		}
		if !rl.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopcore/backend/internal/infrastructure/logger"
	"github.com/shopcore/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// RateLimiter counts requests per key in fixed windows
type RateLimiter interface {
	// Take records one request for key and reports whether it fits the window
	Take(ctx context.Context, key string) (allowed bool, remaining int, err error)
	Limit() int
}

// MemoryRateLimiter keeps windows in process memory. Counters are not shared
// between instances; use RedisRateLimiter behind a load balancer.
type MemoryRateLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	limit     int
	period    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type window struct {
	count int
	start time.Time
}

// NewMemoryRateLimiter allows limit requests per key in each period
func NewMemoryRateLimiter(limit int, period time.Duration) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

func (rl *MemoryRateLimiter) Limit() int {
	return rl.limit
}

func (rl *MemoryRateLimiter) Take(_ context.Context, key string) (bool, int, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.period {
		w = &window{start: now}
		rl.windows[key] = w
	}
	if w.count >= rl.limit {
		return false, 0, nil
	}
	w.count++
	return true, rl.limit - w.count, nil
}

// sweep drops expired windows at most once per two periods
func (rl *MemoryRateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < 2*rl.period {
		return
	}
	for key, w := range rl.windows {
		if now.Sub(w.start) >= rl.period {
			delete(rl.windows, key)
		}
	}
	rl.lastSweep = now
}

// RedisRateLimiter shares windows between instances. Each window is a counter
// that expires with the window.
type RedisRateLimiter struct {
	client redis.Cmdable
	prefix string
	limit  int
	period time.Duration
	now    func() time.Time
}

// NewRedisRateLimiter allows limit requests per key in each period; prefix namespaces the keys
func NewRedisRateLimiter(client redis.Cmdable, prefix string, limit int, period time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, prefix: prefix, limit: limit, period: period, now: time.Now}
}

func (rl *RedisRateLimiter) Limit() int {
	return rl.limit
}

func (rl *RedisRateLimiter) Take(ctx context.Context, key string) (bool, int, error) {
	slot := rl.now().UnixNano() / int64(rl.period)
	redisKey := rl.prefix + key + ":" + strconv.FormatInt(slot, 10)

	var incr *redis.IntCmd
	_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, rl.period)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("failed to count request: %w", err)
	}

	count := int(incr.Val())
	if count > rl.limit {
		return false, 0, nil
	}
	return true, rl.limit - count, nil
}

// RateLimit rejects callers over the limiter's budget with 429. Requests are
// keyed by client IP and route. A limiter failure lets the request through.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	limit := strconv.Itoa(limiter.Limit())
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()

		allowed, remaining, err := limiter.Take(c.Request.Context(), key)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn("Rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeRateLimited,
				"Too many requests. Please try again later.",
				GetRequestID(c),
			))
			return
		}
		c.Next()
	}
}

var (
	_ RateLimiter = (*MemoryRateLimiter)(nil)
	_ RateLimiter = (*RedisRateLimiter)(nil)
)

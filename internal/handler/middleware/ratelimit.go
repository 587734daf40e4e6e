package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"vet-scheduler/internal/handler/httperr"
	"vet-scheduler/internal/pkg/config"
	"vet-scheduler/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter counts requests per user in fixed Redis windows, so every
// instance of the service shares one budget.
type RateLimiter struct {
	rdb      *redis.Client
	limit    int
	window   time.Duration
	failOpen bool
	prefix   string
	logger   *slog.Logger
	metrics  *metrics.SchedulingMetrics
}

// NewRateLimiter returns a limiter that lets every request through when rdb is nil.
func NewRateLimiter(rdb *redis.Client, cfg config.RateLimitConfig, logger *slog.Logger, m *metrics.SchedulingMetrics) *RateLimiter {
	if cfg.BookingLimit <= 0 {
		cfg.BookingLimit = 10
	}
	if cfg.BookingWindow <= 0 {
		cfg.BookingWindow = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RateLimiter{
		rdb:      rdb,
		limit:    cfg.BookingLimit,
		window:   cfg.BookingWindow,
		failOpen: cfg.FailOpen,
		prefix:   "rl:citas",
		logger:   logger,
		metrics:  m,
	}
}

// Limit must run after RequireAuth. Anonymous requests fall back to the client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rdb == nil {
			c.Next()
			return
		}

		subject := c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			subject = userID.String()
		}

		count, err := rl.incr(c.Request.Context(), rl.prefix+":"+subject)
		if err != nil {
			rl.logger.Warn("redis rate limiter error", "error", err.Error())
			if rl.failOpen {
				c.Next()
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Rate limiter unavailable", nil)
			return
		}
		if count > int64(rl.limit) {
			rl.metrics.ObserveRateLimited()
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many booking requests, try again later", nil)
			return
		}
		c.Next()
	}
}

// Ping reports whether Redis answers. A limiter without Redis is always ready.
func (rl *RateLimiter) Ping(ctx context.Context) error {
	if rl.rdb == nil {
		return nil
	}
	return rl.rdb.Ping(ctx).Err()
}

func (rl *RateLimiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, rl.rdb, []string{key}, rl.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quinntest007-creator/QueueBlaze/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// CounterStore is the expiring counter store backing the request limiter
type CounterStore interface {
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RateLimitConfig configures a fixed-window request limiter
type RateLimitConfig struct {
	Store     CounterStore
	KeyPrefix string // Separates limiters sharing one store, e.g. "rate_limit_http_"
	Limit     int
	Window    time.Duration
	// KeyFunc identifies the client; defaults to gin's ClientIP
	KeyFunc func(*gin.Context) string
	Logger  *zap.Logger
}

// RateLimit returns a middleware allowing Limit requests per client per window.
// Requests pass when the store fails.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	limit := int64(cfg.Limit)
	limitHeader := strconv.Itoa(cfg.Limit)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + keyFunc(c)

		count, err := cfg.Store.Increment(c.Request.Context(), key, cfg.Window)
		if err != nil {
			log.Warn("Rate limit store unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", limitHeader)
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > limit {
			c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.ErrCodeRateLimited, "Too many requests. Please try again later.",
			))
			return
		}
		c.Next()
	}
}

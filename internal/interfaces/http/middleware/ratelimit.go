package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"film-forge-api/internal/config"
	"film-forge-api/internal/infrastructure/persistence/redis"
	"film-forge-api/internal/interfaces/http/dto"
	"film-forge-api/pkg/errors"
	"film-forge-api/pkg/logger"
)

// RateLimiter is a sliding-window limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit caps requests per client IP within scope. Without a limiter every request passes,
// and a limiter failure lets the request through.
func RateLimit(cfg config.RateLimitConfig, limiter RateLimiter, scope string) gin.HandlerFunc {
	if !cfg.Enabled || limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}

	limit := cfg.Requests
	if limit <= 0 {
		limit = 30
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		key := redis.BuildRateLimitKey(scope, c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn(c.Request.Context(), "rate limiter unavailable", "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			dto.AbortError(c, http.StatusTooManyRequests, errors.CodeTooManyRequests, "too many requests, please slow down")
			return
		}
		c.Next()
	}
}

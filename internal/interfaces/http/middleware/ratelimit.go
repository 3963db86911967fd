package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/utils"
)

const rateLimitKeyPrefix = "avesta:ratelimit"

// NewLimiter builds a per-IP limiter from a formatted rate such as "10-M".
// A nil redisClient keeps counters in process memory.
func NewLimiter(formatted, name string, redisClient *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid %s rate limit %q: %w", name, formatted, err)
	}

	prefix := rateLimitKeyPrefix + ":" + name
	var store limiter.Store
	if redisClient != nil {
		store, err = sredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{Prefix: prefix})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: prefix})
	}

	return limiter.New(store, rate), nil
}

// RateLimit rejects clients that exceed the limiter's rate. Store failures
// let the request through.
func RateLimit(l *limiter.Limiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		result, err := l.Get(c.Request.Context(), ip)
		if err != nil {
			log.Errorw("rate limit check failed", "client_ip", ip, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprint(result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprint(result.Remaining))

		if result.Reached {
			log.Warnw("rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path, "limit", result.Limit)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

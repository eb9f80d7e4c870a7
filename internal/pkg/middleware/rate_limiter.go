package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// incrWindow increments the counter and starts its window on the first hit.
// Returns the count and the remaining window in milliseconds.
var incrWindow = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('PTTL', KEYS[1])}
`)

// RateLimiterMiddleware counts requests per route and client in a fixed Redis window
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID, ok := UserID(c); ok {
				identifier = userID
			}

			key := fmt.Sprintf(constants.KeyRateLimit, c.Path(), identifier)
			ctx := c.Request().Context()

			res, err := incrWindow.Run(ctx, config.RedisClient, []string{key}, config.Period.Milliseconds()).Slice()
			if err != nil || len(res) != 2 {
				logger.Error("Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return utils.ServiceUnavailableResponse(c, "Rate limiter unavailable")
			}
			countVal, _ := res[0].(int64)
			ttlMillis, _ := res[1].(int64)

			count := int(countVal)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				wait := time.Duration(ttlMillis) * time.Millisecond
				if wait <= 0 {
					wait = config.Period
				}
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(wait).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(wait.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a per-client rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Limit:       limit,
		Period:      period,
	})
}

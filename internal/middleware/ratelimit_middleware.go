package middleware

import (
	"net/http"
	"strconv"

	"chatapp/internal/redis"

	"github.com/gin-gonic/gin"
)

// SignupRateLimitMiddleware limits user creations per client IP. A nil
// limiter disables limiting entirely (tests, redis-less deployments).
func SignupRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		result, err := limiter.AllowSignup(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.String(http.StatusInternalServerError, "rate limit error")
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.String(http.StatusTooManyRequests, "Too Many Requests")
			c.Abort()
			return
		}

		c.Next()
	}
}

// MessageRateLimitMiddleware limits message posts per author. Applied to
// the message route, which carries the author in the userId path
// parameter; the auth gate has already enforced self-match by the time
// this runs.
func MessageRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		userID := c.Param("userId")
		if userID == "" {
			c.Next()
			return
		}

		result, err := limiter.AllowMessage(c.Request.Context(), userID)
		if err != nil {
			c.String(http.StatusInternalServerError, "rate limit error")
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.String(http.StatusTooManyRequests, "Too Many Requests")
			c.Abort()
			return
		}

		c.Next()
	}
}

func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}

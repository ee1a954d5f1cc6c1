package middleware

import (
	"github.com/gin-gonic/gin"

	mem "pawtrip/pkg/memcache"
	"pawtrip/pkg/utils"
)

// RateLimitMiddleware throttles requests per authenticated user, falling back
// to the client IP when no user is set.
func RateLimitMiddleware(limiters mem.LimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		if !limiters.Get(key).Allow() {
			utils.HandleServiceError(c, utils.ErrRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}

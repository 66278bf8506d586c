package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles webhook deliveries. The limiter keys on client IP so
// one noisy sender cannot starve the rest.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.rateLimiter == nil {
			c.Next()
			return
		}

		if err := mw.rateLimiter.Allow(c.ClientIP()); err != nil {
			mw.l.Warnf(c.Request.Context(), "Rate limit exceeded: %v", err)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

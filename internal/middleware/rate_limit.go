package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"rima-workspace/pkg/response"
)

// RateLimit applies a per-client token bucket keyed by client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := m.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}
		c.Next()
	}
}

func (m Middleware) limiterFor(clientIP string) *rate.Limiter {
	if limiter, ok := m.limiters.Get(clientIP); ok {
		return limiter
	}
	limiter := rate.NewLimiter(m.rps, m.burst)
	m.limiters.Add(clientIP, limiter)
	return limiter
}

package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles requests per client IP. Limiters live in a TTL cache
// so idle clients do not pile up. Zero requests disables the limiter.
func (m *Middlewares) RateLimit(requests int, per time.Duration, burst int) gin.HandlerFunc {
	if requests == 0 || per == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	every := rate.Every(per / time.Duration(requests))
	return func(c *gin.Context) {
		ip := c.ClientIP()

		lim, ok := m.limiters.GetIfPresent(ip)
		if !ok {
			lim = rate.NewLimiter(every, burst)
			m.limiters.Set(ip, lim)
		}

		if !lim.Allow() {
			m.log.Trace("Rate limited", "ip", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

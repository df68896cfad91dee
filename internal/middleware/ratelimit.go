package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"schedule-partner/pkg/response"
)

const maxTrackedClients = 4096

// RateLimit applies a per-client token bucket. Clients are keyed by user
// scope (falling back to their IP) and tracked in an expirable LRU so idle
// limiters are reclaimed.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	perSecond := rate.Limit(float64(mw.cfg.PerMinute) / 60.0)
	burst := mw.cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, 10*time.Minute)

	return func(c *gin.Context) {
		key := ScopeFrom(c).UserID
		if key == "anonymous" {
			key = c.ClientIP()
		}

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"schedule-partner/internal/model"
)

const (
	userIDHeader = "X-User-ID"
	scopeKey     = "scope"
)

// UserScope resolves the calling user from the request and stores the scope
// in the gin context. Anonymous callers share one scope.
func (mw Middleware) UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			userID = "anonymous"
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFrom reads the scope set by UserScope. Missing scope degrades to
// the anonymous one rather than failing the request.
func ScopeFrom(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: "anonymous"}
}

package http

import (
	"github.com/gin-gonic/gin"

	"schedule-partner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. AI routes are
// rate limited per client since each request costs a provider call.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.UserScope(), mw.RateLimit(), h.Parse)
	rg.POST("/chat", mw.UserScope(), mw.RateLimit(), h.Chat)
	rg.POST("/generate-plan", mw.UserScope(), mw.RateLimit(), h.GeneratePlan)
}

package http

import (
	"github.com/gin-gonic/gin"

	"schedule-partner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/state", mw.UserScope(), h.GetState)
	rg.POST("/state", mw.UserScope(), h.UpdateState)
	rg.DELETE("/state", mw.UserScope(), h.ClearState)
	rg.GET("/history", mw.UserScope(), h.History)
}

package http

import (
	"github.com/gin-gonic/gin"

	"schedule-partner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Analytics is
// registered before the date parameter route so "analytics" never matches
// as a date.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("", mw.UserScope(), h.CreateOrUpdate)
	rg.GET("", mw.UserScope(), h.List)
	rg.GET("/analytics", mw.UserScope(), h.Analytics)
	rg.GET("/:review_date", mw.UserScope(), h.GetByDate)
}

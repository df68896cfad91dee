package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	aiHTTP "schedule-partner/internal/ai/delivery/http"
	characterHTTP "schedule-partner/internal/character/delivery/http"
	reviewHTTP "schedule-partner/internal/review/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	aiHTTP.RegisterRoutes(api.Group("/ai"), srv.aiHandler, srv.middleware)
	srv.l.Infof(ctx, "AI routes registered under /api/v1/ai")

	if srv.characterHandler != nil {
		characterHTTP.RegisterRoutes(api.Group("/character"), srv.characterHandler, srv.middleware)
		srv.l.Infof(ctx, "Character routes registered under /api/v1/character")
	}

	if srv.reviewHandler != nil {
		reviewHTTP.RegisterRoutes(api.Group("/reviews"), srv.reviewHandler, srv.middleware)
		srv.l.Infof(ctx, "Review routes registered under /api/v1/reviews")
	}
}

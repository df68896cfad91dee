package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	aiHTTP "schedule-partner/internal/ai/delivery/http"
	characterHTTP "schedule-partner/internal/character/delivery/http"
	"schedule-partner/internal/middleware"
	reviewHTTP "schedule-partner/internal/review/delivery/http"
	pkgLog "schedule-partner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Cross-cutting
	middleware middleware.Middleware

	// Domains
	aiHandler        aiHTTP.Handler
	characterHandler characterHTTP.Handler
	reviewHandler    reviewHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	AIHandler        aiHTTP.Handler
	CharacterHandler characterHTTP.Handler
	ReviewHandler    reviewHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		middleware:       cfg.Middleware,
		aiHandler:        cfg.AIHandler,
		characterHandler: cfg.CharacterHandler,
		reviewHandler:    cfg.ReviewHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.aiHandler == nil {
		return errors.New("AI handler is required")
	}
	return nil
}

package http

import (
	"github.com/gin-gonic/gin"

	"schedule-partner/internal/character"
	pkgLog "schedule-partner/pkg/log"
)

// Handler is the public interface for the character HTTP delivery layer.
type Handler interface {
	GetState(c *gin.Context)
	UpdateState(c *gin.Context)
	ClearState(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc character.UseCase
}

// New creates a new HTTP handler for the character domain.
func New(l pkgLog.Logger, uc character.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

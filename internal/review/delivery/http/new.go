package http

import (
	"github.com/gin-gonic/gin"

	"schedule-partner/internal/review"
	pkgLog "schedule-partner/pkg/log"
)

// Handler is the public interface for the review HTTP delivery layer.
type Handler interface {
	CreateOrUpdate(c *gin.Context)
	List(c *gin.Context)
	Analytics(c *gin.Context)
	GetByDate(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc review.UseCase
}

// New creates a new HTTP handler for the review domain.
func New(l pkgLog.Logger, uc review.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

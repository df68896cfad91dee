package http

import (
	"github.com/gin-gonic/gin"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/conversation"
	"schedule-partner/pkg/gcalendar"
	pkgLog "schedule-partner/pkg/log"
)

// Handler is the public interface for the AI HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Chat(c *gin.Context)
	GeneratePlan(c *gin.Context)
}

// CalendarConfig targets the optional Google Calendar mirror.
type CalendarConfig struct {
	CalendarID string
	Timezone   string
}

type handler struct {
	l           pkgLog.Logger
	uc          ai.UseCase
	convs       conversation.UseCase
	calendar    gcalendar.EventCreator
	calendarCfg CalendarConfig
}

// New creates a new HTTP handler for the AI domain. The conversation
// recorder and calendar mirror may be nil; both are best effort.
func New(l pkgLog.Logger, uc ai.UseCase, convs conversation.UseCase, calendar gcalendar.EventCreator, calendarCfg CalendarConfig) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		convs:       convs,
		calendar:    calendar,
		calendarCfg: calendarCfg,
	}
}

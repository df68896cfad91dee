package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/character"
	"schedule-partner/internal/middleware"
	"schedule-partner/internal/model"
	"schedule-partner/pkg/gcalendar"
	"schedule-partner/pkg/response"
)

// Parse godoc
// @Summary     Parse natural language into a schedule
// @Description Turns free-form text like "내일 오후 7시에 영어 단어 외우기" into structured schedule data.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200 {object} parseResp
// @Failure     422 {object} response.Resp "Low confidence or invalid data"
// @Failure     503 {object} response.Resp "AI service unavailable or timed out"
// @Router      /api/v1/ai/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	started := time.Now()
	out, err := h.uc.ParseScheduleText(ctx, sc, ai.ParseScheduleInput{
		Text:          req.Text,
		ReferenceTime: time.Now(),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseScheduleText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.record(ctx, sc, model.Conversation{
		UserMessage: req.Text,
		AIResponse:  out.Schedule.Title,
		Intent:      model.IntentSchedule,
		Model:       out.Model,
		LatencyMS:   time.Since(started).Milliseconds(),
	})

	h.tryMirrorEvent(ctx, out.Schedule)

	response.OK(c, newParseResp(out))
}

// Chat godoc
// @Summary     Chat with the character companion
// @Description Generates an in-persona reply plus a display reaction for the character.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     503 {object} response.Resp "AI service unavailable or timed out"
// @Router      /api/v1/ai/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	input := ai.ChatInput{
		Message:   req.Message,
		TimeOfDay: timeOfDayBucket(time.Now()),
	}
	if req.Context != nil {
		input.CompletedCount = req.Context.CompletedCount
		input.TotalCount = req.Context.TotalCount
	}

	started := time.Now()
	out, err := h.uc.GenerateCharacterResponse(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateCharacterResponse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	conv := model.Conversation{
		UserMessage: req.Message,
		AIResponse:  out.Message,
		Intent:      model.IntentChat,
		Model:       out.Model,
		LatencyMS:   time.Since(started).Milliseconds(),
	}
	if id, parseErr := uuid.Parse(sessionID); parseErr == nil {
		conv.SessionID = id
	}
	h.record(ctx, sc, conv)

	response.OK(c, chatResp{
		Response:       out.Message,
		CharacterState: character.ReactToMessage(req.Message),
		SessionID:      sessionID,
		Model:          out.Model,
	})
}

// GeneratePlan godoc
// @Summary     Generate an optimized daily plan
// @Description Orders the given tasks into a timed plan for the target date.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body generatePlanReq true "Tasks and preferences"
// @Success     200 {object} generatePlanResp
// @Failure     422 {object} response.Resp "Invalid task data"
// @Failure     503 {object} response.Resp "AI service unavailable or timed out"
// @Router      /api/v1/ai/generate-plan [POST]
func (h *handler) GeneratePlan(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	var req generatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	started := time.Now()
	out, err := h.uc.GenerateDailyPlan(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateDailyPlan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.record(ctx, sc, model.Conversation{
		UserMessage: fmt.Sprintf("Generate plan for %s", req.Date),
		AIResponse:  fmt.Sprintf("%d entries", len(out.Entries)),
		Intent:      model.IntentPlan,
		Model:       out.Model,
		LatencyMS:   time.Since(started).Milliseconds(),
	})

	response.OK(c, newGeneratePlanResp(out))
}

// record stores the exchange when a recorder is wired. History is not
// critical, so failures are logged and swallowed.
func (h *handler) record(ctx context.Context, sc model.Scope, conv model.Conversation) {
	if h.convs == nil {
		return
	}
	if err := h.convs.Record(ctx, sc, conv); err != nil {
		h.l.Warnf(ctx, "conversation record failed (non-critical): %v", err)
	}
}

// tryMirrorEvent mirrors a parsed schedule to Google Calendar when a client
// is configured. Mirror failures never fail the request.
func (h *handler) tryMirrorEvent(ctx context.Context, s ai.ParsedSchedule) {
	if h.calendar == nil {
		return
	}

	end := s.StartTime.Add(time.Hour)
	if s.EndTime != nil {
		end = *s.EndTime
	}

	event, err := h.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  h.calendarCfg.CalendarID,
		Summary:     s.Title,
		Description: s.Description,
		StartTime:   s.StartTime,
		EndTime:     end,
		Timezone:    h.calendarCfg.Timezone,
	})
	if err != nil {
		h.l.Warnf(ctx, "calendar mirror failed for %q (non-fatal): %v", s.Title, err)
		return
	}
	h.l.Infof(ctx, "calendar event created: %s", event.HtmlLink)
}

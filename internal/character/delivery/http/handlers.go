package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"schedule-partner/internal/middleware"
	"schedule-partner/pkg/response"
)

// GetState godoc
// @Summary     Get current character state
// @Description Returns the most recent non-expired state, or the default idle state.
// @Tags        Character
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/character/state [GET]
func (h *handler) GetState(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	out, err := h.uc.GetState(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetState: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStateResp(out))
}

// UpdateState godoc
// @Summary     Update character state
// @Description Records a new state; LED color and pattern are derived from the activity.
// @Tags        Character
// @Accept      json
// @Produce     json
// @Param       body body updateStateReq true "New state"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Invalid activity or emotion"
// @Router      /api/v1/character/state [POST]
func (h *handler) UpdateState(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	var req updateStateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.UpdateState(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateState: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStateResp(out))
}

// ClearState godoc
// @Summary     Clear character state
// @Description Expires all active states, resetting the character to idle.
// @Tags        Character
// @Produce     json
// @Success     200 {object} clearStateResp
// @Router      /api/v1/character/state [DELETE]
func (h *handler) ClearState(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	out, err := h.uc.ClearState(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearState: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, clearStateResp{ExpiredStates: out.ExpiredStates})
}

// History godoc
// @Summary     Character state history
// @Description Returns recent state changes, newest first.
// @Tags        Character
// @Produce     json
// @Param       limit query int false "Max entries (default: 20)"
// @Success     200 {object} []historyItemResp
// @Router      /api/v1/character/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	states, err := h.uc.History(ctx, sc, limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newHistoryResp(states))
}

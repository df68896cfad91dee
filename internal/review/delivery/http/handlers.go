package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-partner/internal/middleware"
	"schedule-partner/internal/review"
	"schedule-partner/pkg/response"
)

// CreateOrUpdate godoc
// @Summary     Create or update a daily review
// @Description Upserts the review for a date and attaches AI character feedback.
// @Tags        Reviews
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Review data with day statistics"
// @Success     200 {object} reviewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/reviews [POST]
func (h *handler) CreateOrUpdate(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CreateOrUpdate(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateOrUpdate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newReviewResp(out.Review))
}

// List godoc
// @Summary     List daily reviews
// @Description Returns reviews in an optional date range, newest first.
// @Tags        Reviews
// @Produce     json
// @Param       start_date query string false "Start date (YYYY-MM-DD)"
// @Param       end_date   query string false "End date (YYYY-MM-DD)"
// @Param       limit      query int    false "Page size (default: 30, max: 100)"
// @Param       offset     query int    false "Page offset"
// @Success     200 {object} []reviewResp
// @Router      /api/v1/reviews [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	var input review.ListInput
	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			response.Error(c, err)
			return
		}
		input.StartDate = t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			response.Error(c, err)
			return
		}
		input.EndDate = t
	}
	input.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "30"))
	input.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(reviews))
}

// Analytics godoc
// @Summary     Review analytics
// @Description Aggregates reviews over a weekly or monthly window.
// @Tags        Reviews
// @Produce     json
// @Param       period query string false "weekly or monthly (default: weekly)"
// @Success     200 {object} review.AnalyticsOutput
// @Failure     400 {object} response.Resp "Invalid period"
// @Router      /api/v1/reviews/analytics [GET]
func (h *handler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	out, err := h.uc.Analytics(ctx, sc, c.DefaultQuery("period", "weekly"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Analytics: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, out)
}

// GetByDate godoc
// @Summary     Get a review by date
// @Tags        Reviews
// @Produce     json
// @Param       review_date path string true "Review date (YYYY-MM-DD)"
// @Success     200 {object} reviewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/reviews/{review_date} [GET]
func (h *handler) GetByDate(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	date, err := time.Parse(dateLayout, c.Param("review_date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	rec, err := h.uc.GetByDate(ctx, sc, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByDate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newReviewResp(rec))
}

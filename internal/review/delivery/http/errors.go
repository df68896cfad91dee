package http

import (
	"errors"

	"schedule-partner/internal/review"
	pkgErrors "schedule-partner/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, review.ErrReviewNotFound):
		return pkgErrors.NewHTTPError(404, "review not found for this date")
	case errors.Is(err, review.ErrInvalidPeriod):
		return pkgErrors.NewHTTPError(400, "period must be weekly or monthly")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

package http

import (
	"errors"

	"schedule-partner/internal/ai"
	pkgErrors "schedule-partner/pkg/errors"
)

// mapError translates tagged AI errors into HTTP errors with stable codes.
// Provider failures are 503, validation failures are 422.
func (h *handler) mapError(err error) error {
	var aiErr *ai.Error
	if !errors.As(err, &aiErr) {
		return pkgErrors.NewHTTPError(500, "internal server error")
	}

	switch aiErr.Kind {
	case ai.KindTimeout:
		return pkgErrors.NewHTTPErrorWithCode(503, aiErr.Kind.Code(),
			"AI service request timed out. Please try again.")
	case ai.KindRateLimited:
		return pkgErrors.NewHTTPErrorWithCode(503, aiErr.Kind.Code(),
			"AI service rate limit exceeded. Please try again later.")
	case ai.KindMalformedOutput:
		return pkgErrors.NewHTTPErrorWithCode(503, aiErr.Kind.Code(), aiErr.Message)
	case ai.KindEmptyResponse:
		return pkgErrors.NewHTTPErrorWithCode(503, aiErr.Kind.Code(),
			"AI service returned invalid response")
	case ai.KindInvalidDatetime, ai.KindInvalidPriority, ai.KindLowConfidence:
		return pkgErrors.NewHTTPErrorWithCode(422, aiErr.Kind.Code(), aiErr.Message)
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

package http

import (
	"errors"

	"schedule-partner/internal/character"
	pkgErrors "schedule-partner/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, character.ErrInvalidActivity),
		errors.Is(err, character.ErrInvalidEmotion):
		return pkgErrors.NewHTTPError(400, "invalid activity or emotion value")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

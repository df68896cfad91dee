package repository

import (
	"context"
	"time"

	"schedule-partner/internal/model"
)

// StateRepository stores per-user character state history.
type StateRepository interface {
	// Push records a new state as the most recent one.
	Push(ctx context.Context, userID string, state model.CharacterState) error

	// Active returns the most recent state that has not expired at now.
	Active(ctx context.Context, userID string, now time.Time) (model.CharacterState, bool)

	// Recent returns up to limit states, newest first.
	Recent(ctx context.Context, userID string, limit int) ([]model.CharacterState, error)

	// ExpireAll force-expires every active state and reports how many.
	ExpireAll(ctx context.Context, userID string, now time.Time) (int, error)
}

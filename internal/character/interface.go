package character

import (
	"context"

	"schedule-partner/internal/model"
)

// UseCase defines the business logic interface for the character domain.
type UseCase interface {
	// GetState returns the most recent non-expired state, or the default
	// idle state when none is active.
	GetState(ctx context.Context, sc model.Scope) (StateOutput, error)

	// UpdateState records a new state with LED mapping applied.
	UpdateState(ctx context.Context, sc model.Scope, input UpdateStateInput) (StateOutput, error)

	// ClearState expires all active states, resetting the character to idle.
	ClearState(ctx context.Context, sc model.Scope) (ClearStateOutput, error)

	// History returns recent state changes, newest first.
	History(ctx context.Context, sc model.Scope, limit int) ([]model.CharacterState, error)
}

package conversation

import (
	"context"

	"schedule-partner/internal/model"
)

// UseCase records AI exchanges for later inspection. Recording is best
// effort: callers treat failures as non-critical and never fail a request
// over them.
type UseCase interface {
	// Record stores one exchange. A zero ID or timestamp is filled in.
	Record(ctx context.Context, sc model.Scope, conv model.Conversation) error

	// Recent returns up to limit exchanges for the user, newest first.
	Recent(ctx context.Context, sc model.Scope, limit int) ([]model.Conversation, error)
}

package repository

import (
	"context"

	"schedule-partner/internal/model"
)

// ConversationRepository stores per-user conversation history.
type ConversationRepository interface {
	Append(ctx context.Context, userID string, conv model.Conversation) error
	Recent(ctx context.Context, userID string, limit int) ([]model.Conversation, error)
}

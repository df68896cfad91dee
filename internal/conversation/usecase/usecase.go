package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"schedule-partner/internal/conversation/repository"
	"schedule-partner/internal/model"
	pkgLog "schedule-partner/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.ConversationRepository
}

// New creates a new conversation UseCase instance.
func New(l pkgLog.Logger, repo repository.ConversationRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}

// Record stores one exchange, filling in missing identifiers.
func (uc *implUseCase) Record(ctx context.Context, sc model.Scope, conv model.Conversation) error {
	if conv.ID == uuid.Nil {
		conv.ID = uuid.New()
	}
	if conv.SessionID == uuid.Nil {
		conv.SessionID = uuid.New()
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now()
	}
	conv.UserID = sc.UserID

	if err := uc.repo.Append(ctx, sc.UserID, conv); err != nil {
		uc.l.Warnf(ctx, "Record: failed to store conversation (non-critical): %v", err)
		return err
	}
	return nil
}

// Recent returns up to limit exchanges for the user, newest first.
func (uc *implUseCase) Recent(ctx context.Context, sc model.Scope, limit int) ([]model.Conversation, error) {
	return uc.repo.Recent(ctx, sc.UserID, limit)
}

package usecase

import (
	"schedule-partner/internal/ai"
	"schedule-partner/internal/review/repository"
	pkgLog "schedule-partner/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	aiUC ai.UseCase
	repo repository.ReviewRepository
}

// New creates a new review UseCase instance.
func New(l pkgLog.Logger, aiUC ai.UseCase, repo repository.ReviewRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		aiUC: aiUC,
		repo: repo,
	}
}

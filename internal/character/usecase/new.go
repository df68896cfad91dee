package usecase

import (
	"schedule-partner/internal/character/repository"
	pkgLog "schedule-partner/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.StateRepository
}

// New creates a new character UseCase instance.
func New(l pkgLog.Logger, repo repository.StateRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}

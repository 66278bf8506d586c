package usecase

import (
	"github-event-tracker/internal/event/repository"
	"github-event-tracker/pkg/log"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new event UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

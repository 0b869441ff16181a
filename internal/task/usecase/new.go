package usecase

import (
	"agentic-task-manager/internal/task/repository"
	"agentic-task-manager/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

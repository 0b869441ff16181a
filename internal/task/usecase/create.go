package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"agentic-task-manager/internal/task"
	repo "agentic-task-manager/internal/task/repository"
)

const maxTitleLength = 500

// Create validates the title and persists a new Task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{Title: title})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: t}, nil
}

// normalizeTitle trims surrounding whitespace and enforces the 1-500 length
// rule. Length is counted in runes, not bytes.
func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", task.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", task.ErrTitleTooLong
	}
	return title, nil
}

package usecase

import (
	"context"

	"agentic-task-manager/internal/task"
	repo "agentic-task-manager/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if t.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update applies a partial update. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	title := existing.Title
	if input.Title != nil {
		title, err = normalizeTitle(*input.Title)
		if err != nil {
			return task.UpdateTaskOutput{}, err
		}
	}
	completed := existing.Completed
	if input.Completed != nil {
		completed = *input.Completed
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:        input.ID,
		Title:     title,
		Completed: completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: t}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

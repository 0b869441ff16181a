package usecase

import (
	"context"
	"math"

	"agentic-task-manager/internal/task"
	repo "agentic-task-manager/internal/task/repository"
)

// List returns a paginated list of Tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Completed: input.Completed,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Stats summarizes the task collection. CompletionRate is a percentage with
// one decimal place, 0 when the collection is empty.
func (uc *implUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	total, completed, err := uc.repo.CountTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats CountTasks: %v", err)
		return task.StatsOutput{}, err
	}

	var rate float64
	if total > 0 {
		rate = math.Round(float64(completed)/float64(total)*1000) / 10
	}

	return task.StatsOutput{
		Total:          total,
		Completed:      completed,
		Pending:        total - completed,
		CompletionRate: rate,
	}, nil
}

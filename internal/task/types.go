package task

import "agentic-task-manager/internal/model"

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title string
}

type ListTasksInput struct {
	Completed *bool
	Limit     int
	Offset    int
}

// UpdateTaskInput carries a partial update. Nil fields are left unchanged.
type UpdateTaskInput struct {
	ID        string
	Title     *string
	Completed *bool
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

// StatsOutput summarizes the task collection.
type StatsOutput struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate float64
}

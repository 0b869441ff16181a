package repository

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	Completed *bool
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateTaskOptions holds parameters for updating an existing Task. The full
// resolved values are passed in; partial-update resolution happens in the
// use case.
type UpdateTaskOptions struct {
	ID        string
	Title     string
	Completed bool
}

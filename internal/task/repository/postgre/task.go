package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"agentic-task-manager/internal/model"
	repo "agentic-task-manager/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, title, completed, created_at)
		VALUES ($1, $2, FALSE, NOW())
		RETURNING id, title, completed, created_at, updated_at`

	var t model.Task
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.Title).Scan(
		&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by ID.
// Returns zero-value Task (ID == "") when not found — not-found is not an error.
func (r *implRepository) GetOneTask(ctx context.Context, id string) (model.Task, error) {
	const query = `SELECT id, title, completed, created_at, updated_at FROM tasks WHERE id = $1`

	var t model.Task
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a paginated list of Tasks and the total count matching the
// filter.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT id, title, completed, created_at, updated_at FROM tasks %s`, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, nil
}

// UpdateTask updates a Task by ID and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = $1, completed = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, title, completed, created_at, updated_at`

	var t model.Task
	err := r.db.QueryRowContext(ctx, query, opt.Title, opt.Completed, opt.ID).Scan(
		&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountTasks returns the total and completed counts in one round trip.
func (r *implRepository) CountTasks(ctx context.Context) (int, int, error) {
	const query = `SELECT COUNT(*), COUNT(*) FILTER (WHERE completed) FROM tasks`

	var total, completed int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total, &completed); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return 0, 0, repo.ErrFailedToCount
	}
	return total, completed, nil
}

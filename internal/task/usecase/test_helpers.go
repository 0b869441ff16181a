package usecase

import (
	"context"

	"agentic-task-manager/internal/model"
	repo "agentic-task-manager/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

// Mock repository backed by a map
type mockRepo struct {
	tasks      map[string]model.Task
	nextID     int
	err        error
	lastUpdate repo.UpdateTaskOptions
}

var _ repo.Repository = (*mockRepo)(nil)

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: map[string]model.Task{}}
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	m.nextID++
	t := model.Task{ID: string(rune('a' + m.nextID - 1)), Title: opt.Title}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, id string) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	return m.tasks[id], nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	m.lastUpdate = opt
	t := m.tasks[opt.ID]
	t.Title = opt.Title
	t.Completed = opt.Completed
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockRepo) CountTasks(ctx context.Context) (int, int, error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	total, completed := 0, 0
	for _, t := range m.tasks {
		total++
		if t.Completed {
			completed++
		}
	}
	return total, completed, nil
}

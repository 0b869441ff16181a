package webhook

import (
	"context"

	"agentic-task-manager/internal/model"
	"agentic-task-manager/internal/notification"
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

// Mock notification use case recording enqueued events
type mockNotificationUC struct {
	enqueued  []model.PullRequestEvent
	queueFull bool
}

var _ notification.UseCase = (*mockNotificationUC)(nil)

func (m *mockNotificationUC) Generate(ctx context.Context, event model.PullRequestEvent) model.NotificationContent {
	return model.NotificationContent{}
}

func (m *mockNotificationUC) Send(ctx context.Context, subject, body, recipient string) bool {
	return true
}

func (m *mockNotificationUC) ProcessPullRequest(ctx context.Context, event model.PullRequestEvent) bool {
	return true
}

func (m *mockNotificationUC) Enqueue(event model.PullRequestEvent) bool {
	if m.queueFull {
		return false
	}
	m.enqueued = append(m.enqueued, event)
	return true
}

func (m *mockNotificationUC) StartWorker() {}
func (m *mockNotificationUC) StopWorker()  {}

func (m *mockNotificationUC) TestService(ctx context.Context) notification.TestServiceOutput {
	return notification.TestServiceOutput{}
}

func (m *mockNotificationUC) Status() notification.StatusOutput {
	return notification.StatusOutput{}
}

package usecase

import (
	"context"

	"agentic-task-manager/pkg/azureopenai"
	"agentic-task-manager/pkg/mailer"
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

// Mock Azure OpenAI client for testing
type mockOpenAI struct {
	response *azureopenai.Response
	err      error
	requests []*azureopenai.Request
}

func (m *mockOpenAI) ChatCompletion(ctx context.Context, req *azureopenai.Request) (*azureopenai.Response, error) {
	m.requests = append(m.requests, req)
	return m.response, m.err
}

func (m *mockOpenAI) Deployment() string { return "gpt-test" }

func completionOf(content string) *azureopenai.Response {
	return &azureopenai.Response{
		Choices: []azureopenai.Choice{
			{Message: azureopenai.Message{Role: azureopenai.RoleAssistant, Content: content}},
		},
	}
}

// Mock mailer recording sent messages
type mockMailer struct {
	sent []mailer.Message
	err  error
}

func (m *mockMailer) Send(ctx context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

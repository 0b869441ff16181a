package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"agentic-task-manager/internal/model"
)

var testEvent = model.PullRequestEvent{
	Title:        "Add logging",
	Number:       42,
	Author:       "octocat",
	URL:          "https://github.com/acme/widgets/pull/42",
	Description:  "Adds structured logging.",
	SourceBranch: "feature/logging",
	TargetBranch: "main",
	Action:       model.ActionOpened,
}

func newTestUseCase(openai *mockOpenAI, mail *mockMailer) *implUseCase {
	return New(&mockLogger{}, openai, mail, Config{
		ProjectName:  "Widgets",
		ProjectOwner: "Alice",
		OwnerEmail:   "alice@example.com",
		Now:          func() time.Time { return time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC) },
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("AI content used when valid", func(t *testing.T) {
		openai := &mockOpenAI{response: completionOf(`{"subject":"Review: Add logging","body":"<p>Please review.</p>"}`)}
		uc := newTestUseCase(openai, &mockMailer{})

		content := uc.Generate(ctx, testEvent)
		if content.Subject != "Review: Add logging" {
			t.Errorf("subject = %q", content.Subject)
		}
		if content.Body != "<p>Please review.</p>" {
			t.Errorf("body = %q", content.Body)
		}
		if len(openai.requests) != 1 {
			t.Fatalf("expected one completion request, got %d", len(openai.requests))
		}
		req := openai.requests[0]
		if req.Temperature != 0.7 || req.MaxTokens != 1500 {
			t.Errorf("decoding params = (%v, %d)", req.Temperature, req.MaxTokens)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("expected system+user messages, got %d", len(req.Messages))
		}
		if !strings.Contains(req.Messages[1].Content, "#42") {
			t.Error("user prompt must carry the PR number")
		}
	})

	t.Run("markdown-fenced JSON accepted", func(t *testing.T) {
		openai := &mockOpenAI{response: completionOf("```json\n{\"subject\":\"S\",\"body\":\"B\"}\n```")}
		uc := newTestUseCase(openai, &mockMailer{})

		content := uc.Generate(ctx, testEvent)
		if content.Subject != "S" || content.Body != "B" {
			t.Errorf("fenced JSON not parsed: %+v", content)
		}
	})

	t.Run("backend error falls back", func(t *testing.T) {
		openai := &mockOpenAI{err: errors.New("backend down")}
		uc := newTestUseCase(openai, &mockMailer{})

		content := uc.Generate(ctx, testEvent)
		if content.Subject != "New PR #42: Add logging" {
			t.Errorf("fallback subject = %q", content.Subject)
		}
	})

	t.Run("non-JSON completion falls back", func(t *testing.T) {
		openai := &mockOpenAI{response: completionOf("Sure! Here is your email: ...")}
		uc := newTestUseCase(openai, &mockMailer{})

		content := uc.Generate(ctx, testEvent)
		if content.Subject != "New PR #42: Add logging" {
			t.Errorf("fallback subject = %q", content.Subject)
		}
	})

	t.Run("missing keys fall back", func(t *testing.T) {
		openai := &mockOpenAI{response: completionOf(`{"subject":"only half"}`)}
		uc := newTestUseCase(openai, &mockMailer{})

		content := uc.Generate(ctx, testEvent)
		if !strings.HasPrefix(content.Subject, "New PR #42") {
			t.Errorf("expected fallback, got %q", content.Subject)
		}
	})

	t.Run("empty choices fall back", func(t *testing.T) {
		openai := &mockOpenAI{response: completionOf("")}
		openai.response.Choices = nil
		uc := newTestUseCase(openai, &mockMailer{})

		content := uc.Generate(ctx, testEvent)
		if !strings.HasPrefix(content.Subject, "New PR #42") {
			t.Errorf("expected fallback, got %q", content.Subject)
		}
	})

	t.Run("overlong AI subject kept", func(t *testing.T) {
		long := strings.Repeat("x", 120)
		openai := &mockOpenAI{response: completionOf(`{"subject":"` + long + `","body":"B"}`)}
		uc := newTestUseCase(openai, &mockMailer{})

		content := uc.Generate(ctx, testEvent)
		if content.Subject != long {
			t.Error("long subject must be kept, only logged")
		}
	})
}

func TestGenerateFallback(t *testing.T) {
	ctx := context.Background()
	openai := &mockOpenAI{err: errors.New("down")}

	t.Run("byte identical across calls with pinned clock", func(t *testing.T) {
		uc := newTestUseCase(openai, &mockMailer{})
		first := uc.Generate(ctx, testEvent)
		second := uc.Generate(ctx, testEvent)
		if first.Subject != second.Subject || first.Body != second.Body {
			t.Error("fallback output must be deterministic")
		}
	})

	t.Run("body carries event fields", func(t *testing.T) {
		uc := newTestUseCase(openai, &mockMailer{})
		content := uc.Generate(ctx, testEvent)
		for _, want := range []string{
			"Alice", "Widgets", "Add logging", "#42", "octocat",
			"feature/logging", "main",
			"https://github.com/acme/widgets/pull/42",
			"2026-08-23 12:00:00",
		} {
			if !strings.Contains(content.Body, want) {
				t.Errorf("fallback body missing %q", want)
			}
		}
	})

	t.Run("unknown number and missing URL", func(t *testing.T) {
		uc := newTestUseCase(openai, &mockMailer{})
		event := testEvent
		event.Number = 0
		event.URL = ""

		content := uc.Generate(ctx, event)
		if content.Subject != "New PR #unknown: Add logging" {
			t.Errorf("subject = %q", content.Subject)
		}
		if !strings.Contains(content.Body, `href="#"`) {
			t.Error("missing URL must render as #")
		}
	})
}

func TestStripMarkdownFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := stripMarkdownFences(c.in); got != c.want {
			t.Errorf("stripMarkdownFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

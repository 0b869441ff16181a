package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSend(t *testing.T) {
	ctx := context.Background()
	openai := &mockOpenAI{err: errors.New("unused")}

	t.Run("explicit recipient wins", func(t *testing.T) {
		mail := &mockMailer{}
		uc := newTestUseCase(openai, mail)
		if !uc.Send(ctx, "S", "B", "bob@example.com") {
			t.Fatal("expected delivery to succeed")
		}
		if len(mail.sent) != 1 || mail.sent[0].To != "bob@example.com" {
			t.Errorf("sent = %+v", mail.sent)
		}
	})

	t.Run("empty recipient uses owner", func(t *testing.T) {
		mail := &mockMailer{}
		uc := newTestUseCase(openai, mail)
		if !uc.Send(ctx, "S", "B", "") {
			t.Fatal("expected delivery to succeed")
		}
		if mail.sent[0].To != "alice@example.com" {
			t.Errorf("to = %q, want owner", mail.sent[0].To)
		}
	})

	t.Run("no recipient at all fails without sending", func(t *testing.T) {
		mail := &mockMailer{}
		uc := New(&mockLogger{}, openai, mail, Config{})
		if uc.Send(ctx, "S", "B", "") {
			t.Fatal("expected failure with no recipient")
		}
		if len(mail.sent) != 0 {
			t.Error("mailer must not be invoked without a recipient")
		}
	})

	t.Run("transport error returns false", func(t *testing.T) {
		mail := &mockMailer{err: errors.New("connection refused")}
		uc := newTestUseCase(openai, mail)
		if uc.Send(ctx, "S", "B", "") {
			t.Error("expected transport error to surface as false")
		}
	})
}

func TestProcessPullRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("fallback content still delivered when AI is down", func(t *testing.T) {
		mail := &mockMailer{}
		uc := newTestUseCase(&mockOpenAI{err: errors.New("down")}, mail)

		if !uc.ProcessPullRequest(ctx, testEvent) {
			t.Fatal("expected pipeline to succeed via fallback")
		}
		if len(mail.sent) != 1 {
			t.Fatalf("sent %d messages, want 1", len(mail.sent))
		}
		if mail.sent[0].Subject != "New PR #42: Add logging" {
			t.Errorf("subject = %q", mail.sent[0].Subject)
		}
	})

	t.Run("delivery failure reported", func(t *testing.T) {
		mail := &mockMailer{err: errors.New("550 rejected")}
		uc := newTestUseCase(&mockOpenAI{err: errors.New("down")}, mail)
		if uc.ProcessPullRequest(ctx, testEvent) {
			t.Error("expected false on delivery failure")
		}
	})
}

func TestQueueWorker(t *testing.T) {
	t.Run("queued events processed by worker", func(t *testing.T) {
		mail := &mockMailer{}
		uc := newTestUseCase(&mockOpenAI{err: errors.New("down")}, mail)
		uc.StartWorker()

		if !uc.Enqueue(testEvent) {
			t.Fatal("expected enqueue to succeed")
		}
		uc.StopWorker() // drains the queue

		if len(mail.sent) != 1 {
			t.Fatalf("sent %d messages, want 1", len(mail.sent))
		}
	})

	t.Run("full queue drops without blocking", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockOpenAI{err: errors.New("down")}, &mockMailer{}, Config{
			OwnerEmail: "alice@example.com",
			QueueSize:  1,
		})
		// No worker running: the second enqueue must fail immediately.
		if !uc.Enqueue(testEvent) {
			t.Fatal("first enqueue should fit")
		}
		done := make(chan bool, 1)
		go func() { done <- uc.Enqueue(testEvent) }()
		select {
		case ok := <-done:
			if ok {
				t.Error("expected enqueue on full queue to report false")
			}
		case <-time.After(time.Second):
			t.Fatal("enqueue blocked on full queue")
		}
	})
}

func TestServiceAndStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("test service prefixes subject and reports success", func(t *testing.T) {
		mail := &mockMailer{}
		uc := newTestUseCase(&mockOpenAI{err: errors.New("down")}, mail)

		out := uc.TestService(ctx)
		if !out.Success {
			t.Fatalf("expected success, got %q", out.Message)
		}
		if len(mail.sent) != 1 {
			t.Fatalf("sent %d messages, want 1", len(mail.sent))
		}
		if !strings.HasPrefix(mail.sent[0].Subject, "[TEST] ") {
			t.Errorf("subject = %q, want [TEST] prefix", mail.sent[0].Subject)
		}
		if out.Content.Subject == "" || out.Content.Body == "" {
			t.Error("test output must include the generated content")
		}
	})

	t.Run("status reflects config booleans", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockOpenAI{}, &mockMailer{}, Config{
			AIConfigured:   true,
			MailConfigured: true,
			OwnerEmail:     "alice@example.com",
		})
		s := uc.Status()
		if !s.Operational() {
			t.Error("expected operational with AI, mail, and recipient present")
		}

		uc2 := New(&mockLogger{}, &mockOpenAI{}, &mockMailer{}, Config{
			AIConfigured:   true,
			MailConfigured: true,
		})
		if uc2.Status().Operational() {
			t.Error("expected configuration_incomplete without recipient")
		}
	})
}

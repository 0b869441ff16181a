package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agentic-task-manager/internal/model"
)

// ProcessPullRequest runs the pipeline inline: generate, then send.
// This is the synchronous path used by the manual trigger and by tests.
func (uc *implUseCase) ProcessPullRequest(ctx context.Context, event model.PullRequestEvent) bool {
	uc.l.Infof(ctx, "notification: processing PR #%d: %s", event.Number, event.Title)

	content := uc.Generate(ctx, event)
	ok := uc.Send(ctx, content.Subject, content.Body, "")
	if ok {
		uc.l.Infof(ctx, "notification: PR #%d notification delivered", event.Number)
	} else {
		uc.l.Errorf(ctx, "notification: PR #%d notification delivery failed", event.Number)
	}
	return ok
}

// Enqueue schedules deferred processing on the bounded queue. A full queue
// drops the event rather than blocking the webhook request.
func (uc *implUseCase) Enqueue(event model.PullRequestEvent) bool {
	select {
	case uc.queue <- event:
		return true
	default:
		return false
	}
}

// StartWorker launches the single background consumer. Jobs already queued
// keep running to completion; there is no per-job cancellation.
func (uc *implUseCase) StartWorker() {
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		for event := range uc.queue {
			uc.processJob(event)
		}
	}()
}

// StopWorker closes the queue and waits for the worker to drain it. Called
// during graceful shutdown after the HTTP server stops accepting requests.
func (uc *implUseCase) StopWorker() {
	close(uc.queue)
	uc.wg.Wait()
}

// processJob runs one deferred notification with its own deadline. The
// outcome is observable only here — the webhook response was already sent.
func (uc *implUseCase) processJob(event model.PullRequestEvent) {
	jobID := uuid.NewString()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	uc.l.Infof(ctx, "notification: job %s started for PR #%d", jobID, event.Number)
	if uc.ProcessPullRequest(ctx, event) {
		uc.l.Infof(ctx, "notification: job %s delivered", jobID)
	} else {
		uc.l.Errorf(ctx, "notification: job %s failed", jobID)
	}
}

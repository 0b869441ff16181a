package notification

import (
	"context"

	"agentic-task-manager/internal/model"
)

// UseCase is the PR notification pipeline.
//
// Generate and Send mirror the two pipeline stages; ProcessPullRequest runs
// them inline and is the synchronous entry point for manual triggers and
// tests. Enqueue is the deferred entry point used by the webhook handler.
type UseCase interface {
	// Generate never fails outward: it returns AI-drafted content or the
	// deterministic fallback, and the caller cannot tell which.
	Generate(ctx context.Context, event model.PullRequestEvent) model.NotificationContent

	// Send delivers one email. Empty recipient falls back to the configured
	// owner address; with neither it returns false without connecting.
	Send(ctx context.Context, subject, body, recipient string) bool

	// ProcessPullRequest runs Generate then Send and reports delivery.
	ProcessPullRequest(ctx context.Context, event model.PullRequestEvent) bool

	// Enqueue schedules deferred processing. Returns false when the queue is
	// full; the event is then dropped (logged, never retried).
	Enqueue(event model.PullRequestEvent) bool

	// StartWorker launches the background queue consumer; StopWorker closes
	// the queue and blocks until queued jobs have drained.
	StartWorker()
	StopWorker()

	// TestService exercises the full pipeline with a sample PR.
	TestService(ctx context.Context) TestServiceOutput

	// Status reports which configuration groups are present, never the values.
	Status() StatusOutput
}

package model

import "time"

// PullRequestAction is the webhook action on a pull request.
type PullRequestAction string

const (
	ActionOpened   PullRequestAction = "opened"
	ActionReopened PullRequestAction = "reopened"
)

// Relevant reports whether the action triggers a notification.
// Everything except opened/reopened is acknowledged and dropped.
func (a PullRequestAction) Relevant() bool {
	return a == ActionOpened || a == ActionReopened
}

// PullRequestEvent is the normalized PR record extracted from a webhook
// payload. Immutable once created; consumed exactly once by the content
// generator.
type PullRequestEvent struct {
	Title          string
	Number         int // 0 when the payload carries no number
	Author         string
	URL            string
	Description    string
	SourceBranch   string
	TargetBranch   string
	RepositoryName string
	RepositoryURL  string
	CreatedAt      string // RFC3339 string as sent by the webhook
	UpdatedAt      string
	Action         PullRequestAction
	FilesChanged   []string // always empty at extraction; needs a separate API fetch

	// Pipeline metadata
	EventKind  string
	ReceivedAt time.Time
}

// NotificationContent is a ready-to-send (subject, body) pair. Callers cannot
// tell whether it came from the AI backend or the fallback template.
type NotificationContent struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

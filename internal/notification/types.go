package notification

import (
	"time"

	"agentic-task-manager/internal/model"
)

// TestServiceOutput is the result of an end-to-end service test.
type TestServiceOutput struct {
	Success   bool
	Message   string
	Content   model.NotificationContent
	Timestamp time.Time
}

// StatusOutput reports configuration presence per group. Secret values are
// never included.
type StatusOutput struct {
	AIConfigured            bool
	MailConfigured          bool
	RecipientConfigured     bool
	WebhookSecretConfigured bool

	ProjectName string
	SMTPHost    string
	SMTPPort    int
	AIEndpoint  string
	Deployment  string
}

// Operational reports whether every group required for delivery is present.
// The webhook secret is intentionally not part of this.
func (s StatusOutput) Operational() bool {
	return s.AIConfigured && s.MailConfigured && s.RecipientConfigured
}

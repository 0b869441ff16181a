package usecase

import (
	"context"

	"agentic-task-manager/pkg/mailer"
)

// Send delivers one HTML email over a fresh SMTP session. Empty recipient
// falls back to the configured owner address; with neither it returns false
// before any connection is made. Transport errors become a false result —
// delivery failure is never fatal to the caller.
func (uc *implUseCase) Send(ctx context.Context, subject, body, recipient string) bool {
	to := recipient
	if to == "" {
		to = uc.cfg.OwnerEmail
	}
	if to == "" {
		uc.l.Error(ctx, "notification: no recipient email configured")
		return false
	}

	if err := uc.mail.Send(ctx, mailer.Message{
		Subject: subject,
		HTML:    body,
		To:      to,
	}); err != nil {
		uc.l.Errorf(ctx, "notification: failed to send email to %s: %v", to, err)
		return false
	}

	uc.l.Infof(ctx, "notification: email sent to %s", to)
	return true
}

package usecase

import (
	"context"

	"agentic-task-manager/internal/model"
	"agentic-task-manager/internal/notification"
)

// TestService runs the full pipeline against a fixed sample PR. Used by the
// test endpoint to verify configuration end to end.
func (uc *implUseCase) TestService(ctx context.Context) notification.TestServiceOutput {
	samplePR := model.PullRequestEvent{
		Title:        "Add new feature for task analytics",
		Number:       42,
		Author:       "TestDeveloper",
		URL:          "https://github.com/example/repo/pull/42",
		Description:  "This PR adds comprehensive analytics features for task management including completion rates, time tracking, and performance metrics.",
		SourceBranch: "feature/task-analytics",
		TargetBranch: "main",
		FilesChanged: []string{"tasks.go", "analytics.go", "go.mod"},
		Action:       model.ActionOpened,
		EventKind:    "pull_request",
	}

	content := uc.Generate(ctx, samplePR)

	sent := uc.Send(ctx,
		"[TEST] "+content.Subject,
		"<p><strong>This is a test email</strong></p>"+content.Body,
		"",
	)

	message := "Test email sent successfully"
	if !sent {
		message = "Failed to send test email"
	}

	return notification.TestServiceOutput{
		Success:   sent,
		Message:   message,
		Content:   content,
		Timestamp: uc.now().UTC(),
	}
}

// Status reports configuration presence per group without exposing values.
func (uc *implUseCase) Status() notification.StatusOutput {
	return notification.StatusOutput{
		AIConfigured:            uc.cfg.AIConfigured,
		MailConfigured:          uc.cfg.MailConfigured,
		RecipientConfigured:     uc.cfg.OwnerEmail != "",
		WebhookSecretConfigured: uc.cfg.WebhookSecretConfigured,
		ProjectName:             uc.cfg.ProjectName,
		SMTPHost:                uc.cfg.SMTPHost,
		SMTPPort:                uc.cfg.SMTPPort,
		AIEndpoint:              uc.cfg.AIEndpoint,
		Deployment:              uc.cfg.Deployment,
	}
}

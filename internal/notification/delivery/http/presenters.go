package http

import (
	"time"

	"agentic-task-manager/internal/model"
	"agentic-task-manager/internal/notification"
)

// --- Request DTOs ---

// prReq is an arbitrary PR-data object; every field is optional and absent
// fields take the same permissive defaults the generator documents.
type prReq struct {
	Title        string   `json:"title"`
	Number       int      `json:"number"`
	Author       string   `json:"author"`
	URL          string   `json:"url"`
	Description  string   `json:"description"`
	SourceBranch string   `json:"branch_from"`
	TargetBranch string   `json:"branch_to"`
	FilesChanged []string `json:"files_changed"`
}

func (r prReq) toEvent() model.PullRequestEvent {
	return model.PullRequestEvent{
		Title:        withDefault(r.Title, "New Pull Request"),
		Number:       r.Number,
		Author:       withDefault(r.Author, "Unknown Author"),
		URL:          r.URL,
		Description:  withDefault(r.Description, "No description provided"),
		SourceBranch: withDefault(r.SourceBranch, "feature-branch"),
		TargetBranch: withDefault(r.TargetBranch, "main"),
		FilesChanged: r.FilesChanged,
		Action:       model.ActionOpened,
		EventKind:    "manual",
		ReceivedAt:   time.Now().UTC(),
	}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// --- Response DTOs ---

type testResp struct {
	Success   bool                      `json:"success"`
	Message   string                    `json:"message"`
	Content   model.NotificationContent `json:"email_content"`
	Timestamp string                    `json:"timestamp"`
}

func newTestResp(out notification.TestServiceOutput) testResp {
	return testResp{
		Success:   out.Success,
		Message:   out.Message,
		Content:   out.Content,
		Timestamp: out.Timestamp.Format(time.RFC3339),
	}
}

type statusResp struct {
	Status        string       `json:"status"`
	Configuration statusConfig `json:"configuration"`
	Timestamp     string       `json:"timestamp"`
}

type statusConfig struct {
	AIConfigured            bool   `json:"ai_configured"`
	EmailConfigured         bool   `json:"email_configured"`
	OwnerEmailConfigured    bool   `json:"owner_email_configured"`
	WebhookSecretConfigured bool   `json:"webhook_secret_configured"`
	ProjectName             string `json:"project_name"`
	SMTPServer              string `json:"smtp_server"`
	SMTPPort                int    `json:"smtp_port"`
	AIEndpoint              string `json:"ai_endpoint"`
	DeploymentName          string `json:"deployment_name"`
}

func newStatusResp(out notification.StatusOutput) statusResp {
	status := "configuration_incomplete"
	if out.Operational() {
		status = "operational"
	}
	return statusResp{
		Status: status,
		Configuration: statusConfig{
			AIConfigured:            out.AIConfigured,
			EmailConfigured:         out.MailConfigured,
			OwnerEmailConfigured:    out.RecipientConfigured,
			WebhookSecretConfigured: out.WebhookSecretConfigured,
			ProjectName:             out.ProjectName,
			SMTPServer:              out.SMTPHost,
			SMTPPort:                out.SMTPPort,
			AIEndpoint:              out.AIEndpoint,
			DeploymentName:          out.Deployment,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

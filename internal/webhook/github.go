package webhook

import (
	"context"
	"encoding/json"
	"time"

	"agentic-task-manager/internal/model"
	"agentic-task-manager/pkg/log"
)

// Defaults applied when a payload is structurally incomplete. The extractor
// never rejects a syntactically valid payload over missing fields.
const (
	DefaultTitle        = "Untitled PR"
	DefaultAuthor       = "Unknown"
	DefaultDescription  = "No description provided"
	DefaultSourceBranch = "unknown-branch"
	DefaultTargetBranch = "main"
	DefaultRepository   = "Unknown Repository"
)

// GitHubExtractor maps raw pull_request payloads to normalized PR records.
type GitHubExtractor struct {
	l log.Logger
}

func NewGitHubExtractor(l log.Logger) *GitHubExtractor {
	return &GitHubExtractor{l: l}
}

// ExtractPullRequest returns a normalized record for opened/reopened actions,
// or nil for everything else. nil means "acknowledged, no downstream effect" —
// it is not an error, and callers must not treat it as one.
func (e *GitHubExtractor) ExtractPullRequest(ctx context.Context, payload []byte) *model.PullRequestEvent {
	var event struct {
		Action      string `json:"action"`
		PullRequest struct {
			Title  string `json:"title"`
			Number int    `json:"number"`
			User   struct {
				Login string `json:"login"`
			} `json:"user"`
			HTMLURL string `json:"html_url"`
			Body    string `json:"body"`
			Head    struct {
				Ref string `json:"ref"`
			} `json:"head"`
			Base struct {
				Ref string `json:"ref"`
			} `json:"base"`
			CreatedAt string `json:"created_at"`
			UpdatedAt string `json:"updated_at"`
		} `json:"pull_request"`
		Repository struct {
			Name    string `json:"name"`
			HTMLURL string `json:"html_url"`
		} `json:"repository"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		e.l.Errorf(ctx, "webhook: failed to decode pull_request payload: %v", err)
		return nil
	}

	action := model.PullRequestAction(event.Action)
	if !action.Relevant() {
		e.l.Infof(ctx, "webhook: ignoring PR action %q", event.Action)
		return nil
	}

	pr := &model.PullRequestEvent{
		Title:          withDefault(event.PullRequest.Title, DefaultTitle),
		Number:         event.PullRequest.Number,
		Author:         withDefault(event.PullRequest.User.Login, DefaultAuthor),
		URL:            event.PullRequest.HTMLURL,
		Description:    withDefault(event.PullRequest.Body, DefaultDescription),
		SourceBranch:   withDefault(event.PullRequest.Head.Ref, DefaultSourceBranch),
		TargetBranch:   withDefault(event.PullRequest.Base.Ref, DefaultTargetBranch),
		RepositoryName: withDefault(event.Repository.Name, DefaultRepository),
		RepositoryURL:  event.Repository.HTMLURL,
		CreatedAt:      event.PullRequest.CreatedAt,
		UpdatedAt:      event.PullRequest.UpdatedAt,
		Action:         action,
		FilesChanged:   []string{},
		EventKind:      "pull_request",
		ReceivedAt:     time.Now().UTC(),
	}

	e.l.Infof(ctx, "webhook: extracted PR #%d: %s", pr.Number, pr.Title)
	return pr
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

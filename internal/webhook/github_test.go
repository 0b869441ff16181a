package webhook

import (
	"context"
	"testing"
)

func TestExtractPullRequest(t *testing.T) {
	ctx := context.Background()
	e := NewGitHubExtractor(&mockLogger{})

	t.Run("full payload maps fields", func(t *testing.T) {
		payload := []byte(`{
			"action": "opened",
			"pull_request": {
				"title": "Add logging",
				"number": 42,
				"user": {"login": "octocat"},
				"html_url": "https://github.com/acme/widgets/pull/42",
				"body": "Adds structured logging.",
				"head": {"ref": "feature/logging"},
				"base": {"ref": "main"},
				"created_at": "2026-08-01T10:00:00Z",
				"updated_at": "2026-08-01T11:00:00Z"
			},
			"repository": {"name": "widgets", "html_url": "https://github.com/acme/widgets"}
		}`)

		pr := e.ExtractPullRequest(ctx, payload)
		if pr == nil {
			t.Fatal("expected extraction to succeed")
		}
		if pr.Title != "Add logging" || pr.Number != 42 || pr.Author != "octocat" {
			t.Errorf("unexpected core fields: %+v", pr)
		}
		if pr.SourceBranch != "feature/logging" || pr.TargetBranch != "main" {
			t.Errorf("unexpected branches: %q -> %q", pr.SourceBranch, pr.TargetBranch)
		}
		if pr.RepositoryName != "widgets" {
			t.Errorf("unexpected repository: %q", pr.RepositoryName)
		}
		if pr.EventKind != "pull_request" {
			t.Errorf("unexpected event kind: %q", pr.EventKind)
		}
		if pr.FilesChanged == nil || len(pr.FilesChanged) != 0 {
			t.Errorf("expected empty files list, got %v", pr.FilesChanged)
		}
	})

	t.Run("reopened is relevant", func(t *testing.T) {
		if e.ExtractPullRequest(ctx, []byte(`{"action":"reopened","pull_request":{"number":7}}`)) == nil {
			t.Error("expected reopened action to extract")
		}
	})

	t.Run("irrelevant actions return nil", func(t *testing.T) {
		for _, action := range []string{"closed", "synchronize", "edited", "labeled", ""} {
			payload := []byte(`{"action":"` + action + `","pull_request":{"number":1}}`)
			if e.ExtractPullRequest(ctx, payload) != nil {
				t.Errorf("expected action %q to be ignored", action)
			}
		}
	})

	t.Run("missing fields get defaults", func(t *testing.T) {
		pr := e.ExtractPullRequest(ctx, []byte(`{"action":"opened"}`))
		if pr == nil {
			t.Fatal("expected structurally incomplete payload to extract")
		}
		if pr.Title != DefaultTitle {
			t.Errorf("title = %q, want %q", pr.Title, DefaultTitle)
		}
		if pr.Author != DefaultAuthor {
			t.Errorf("author = %q, want %q", pr.Author, DefaultAuthor)
		}
		if pr.SourceBranch != DefaultSourceBranch {
			t.Errorf("source branch = %q, want %q", pr.SourceBranch, DefaultSourceBranch)
		}
		if pr.TargetBranch != DefaultTargetBranch {
			t.Errorf("target branch = %q, want %q", pr.TargetBranch, DefaultTargetBranch)
		}
		if pr.Description != DefaultDescription {
			t.Errorf("description = %q, want %q", pr.Description, DefaultDescription)
		}
		if pr.RepositoryName != DefaultRepository {
			t.Errorf("repository = %q, want %q", pr.RepositoryName, DefaultRepository)
		}
		if pr.Number != 0 {
			t.Errorf("number = %d, want 0 (unknown)", pr.Number)
		}
	})

	t.Run("wrong shape returns nil", func(t *testing.T) {
		if e.ExtractPullRequest(ctx, []byte(`["not","an","object"]`)) != nil {
			t.Error("expected array payload to be rejected")
		}
	})
}

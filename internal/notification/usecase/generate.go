package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"agentic-task-manager/internal/model"
	"agentic-task-manager/pkg/azureopenai"
)

// Generate turns a PR record into notification content. It never fails
// outward: every backend or parse failure degrades to the deterministic
// fallback, and no retry is attempted.
func (uc *implUseCase) Generate(ctx context.Context, event model.PullRequestEvent) model.NotificationContent {
	content, err := uc.generateAI(ctx, event)
	if err != nil {
		uc.l.Warnf(ctx, "notification: AI generation failed, using fallback: %v", err)
		return uc.generateFallback(event)
	}

	if utf8.RuneCountInString(content.Subject) > subjectDisplayLimit {
		// Intended limit, not enforced: the prompt asks for <= 80 but a long
		// subject still delivers fine.
		uc.l.Warnf(ctx, "notification: AI subject exceeds %d characters (%d)",
			subjectDisplayLimit, utf8.RuneCountInString(content.Subject))
	}

	uc.l.Infof(ctx, "notification: generated AI content for PR #%d", event.Number)
	return content
}

// generateAI asks the chat completions backend for a {subject, body} JSON
// object. Any transport error, non-JSON reply, or missing key is an error.
func (uc *implUseCase) generateAI(ctx context.Context, event model.PullRequestEvent) (model.NotificationContent, error) {
	filesChanged := "Not specified"
	if len(event.FilesChanged) > 0 {
		filesChanged = strings.Join(event.FilesChanged, ", ")
	}

	prompt := fmt.Sprintf(userPromptTemplate,
		uc.cfg.ProjectName,
		event.Title,
		formatNumber(event.Number),
		event.Author,
		event.SourceBranch,
		event.TargetBranch,
		event.Description,
		filesChanged,
		event.URL,
	)

	resp, err := uc.openai.ChatCompletion(ctx, &azureopenai.Request{
		Messages: []azureopenai.Message{
			{Role: azureopenai.RoleSystem, Content: systemPrompt},
			{Role: azureopenai.RoleUser, Content: prompt},
		},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return model.NotificationContent{}, err
	}

	if len(resp.Choices) == 0 {
		return model.NotificationContent{}, fmt.Errorf("empty completion response")
	}

	raw := stripMarkdownFences(resp.Choices[0].Message.Content)

	var content model.NotificationContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return model.NotificationContent{}, fmt.Errorf("completion is not valid JSON: %w", err)
	}
	if content.Subject == "" || content.Body == "" {
		return model.NotificationContent{}, fmt.Errorf("completion missing subject or body")
	}

	return content, nil
}

// generateFallback renders the deterministic template. Given the same event
// and a pinned clock the output is byte-identical across calls — this is the
// pipeline's availability guarantee when the AI backend is down.
func (uc *implUseCase) generateFallback(event model.PullRequestEvent) model.NotificationContent {
	number := formatNumber(event.Number)
	url := event.URL
	if url == "" {
		url = "#"
	}

	subject := fmt.Sprintf(fallbackSubjectFormat, number, event.Title)
	body := fmt.Sprintf(fallbackBodyTemplate,
		uc.cfg.ProjectOwner,
		uc.cfg.ProjectName,
		event.Title,
		number,
		event.Author,
		event.SourceBranch,
		event.TargetBranch,
		event.Description,
		url,
		uc.cfg.ProjectName,
		uc.now().UTC().Format("2006-01-02 15:04:05"),
	)

	return model.NotificationContent{Subject: subject, Body: body}
}

func formatNumber(n int) string {
	if n == 0 {
		return "unknown"
	}
	return strconv.Itoa(n)
}

// stripMarkdownFences removes a ```json ... ``` wrapper some models add
// around structured output.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

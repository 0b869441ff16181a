package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HandleGitHubWebhook processes GitHub webhook events.
//
// Flow: verify signature (403) → rate limit (429) → JSON validity (400) →
// event-type dispatch. A relevant pull_request event is acknowledged with 200
// immediately and the notification work is queued; the webhook sender is never
// blocked on generation or delivery.
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	signature := c.GetHeader("X-Hub-Signature-256")
	if !h.security.VerifySignature(ctx, body, signature) {
		h.l.Errorf(ctx, "webhook: invalid signature")
		c.JSON(http.StatusForbidden, gin.H{"detail": "Invalid signature"})
		return
	}

	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"detail": "rate limit exceeded"})
		return
	}

	eventType := c.GetHeader("X-GitHub-Event")
	h.l.Infof(ctx, "webhook: received GitHub event %q", eventType)

	// ping acknowledges before any payload inspection beyond JSON validity
	if !json.Valid(body) {
		h.l.Errorf(ctx, "webhook: invalid JSON payload")
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON payload"})
		return
	}

	switch eventType {
	case "ping":
		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"message":   "Webhook endpoint is working",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})

	case "pull_request":
		event := h.extractor.ExtractPullRequest(ctx, body)
		if event == nil {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ignored",
				"message":   "PR event not relevant for notification",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}

		if !h.notificationUC.Enqueue(*event) {
			// The endpoint stays available even when the queue is saturated;
			// the dropped notification is visible in logs only.
			h.l.Errorf(ctx, "webhook: notification queue full, dropping PR #%d", event.Number)
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"message":   "PR notification queued for processing",
			"pr_number": event.Number,
			"pr_title":  event.Title,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})

	default:
		h.l.Infof(ctx, "webhook: ignoring event type %q", eventType)
		c.JSON(http.StatusOK, gin.H{
			"status":    "ignored",
			"message":   "Event type " + eventType + " not handled",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

package webhook

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(uc *mockNotificationUC, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(uc, SecurityConfig{Secret: secret, RateLimitPerMin: 6000}, &mockLogger{})
	r := gin.New()
	r.POST("/webhooks/github", h.HandleGitHubWebhook)
	return r
}

func postWebhook(r *gin.Engine, event string, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/github", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	if signature != "" {
		req.Header.Set("X-Hub-Signature-256", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return out
}

func TestHandleGitHubWebhook(t *testing.T) {
	prPayload := []byte(`{
		"action": "opened",
		"pull_request": {"title": "Add logging", "number": 42, "user": {"login": "octocat"}},
		"repository": {"name": "widgets"}
	}`)

	t.Run("invalid signature returns 403", func(t *testing.T) {
		uc := &mockNotificationUC{}
		r := newTestRouter(uc, "secret")
		w := postWebhook(r, "pull_request", prPayload, "sha256=deadbeef")
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
		if len(uc.enqueued) != 0 {
			t.Error("nothing must be enqueued on signature failure")
		}
	})

	t.Run("missing signature with secret returns 403", func(t *testing.T) {
		r := newTestRouter(&mockNotificationUC{}, "secret")
		w := postWebhook(r, "pull_request", prPayload, "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		r := newTestRouter(&mockNotificationUC{}, "")
		w := postWebhook(r, "pull_request", []byte(`{not json`), "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("ping acknowledged without extraction", func(t *testing.T) {
		uc := &mockNotificationUC{}
		r := newTestRouter(uc, "")
		w := postWebhook(r, "ping", []byte(`{"zen":"Design for failure."}`), "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "success" {
			t.Errorf("status field = %v, want success", body["status"])
		}
		if len(uc.enqueued) != 0 {
			t.Error("ping must not enqueue anything")
		}
	})

	t.Run("relevant pull_request is queued", func(t *testing.T) {
		uc := &mockNotificationUC{}
		r := newTestRouter(uc, "")
		w := postWebhook(r, "pull_request", prPayload, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "success" {
			t.Errorf("status field = %v, want success", body["status"])
		}
		if body["pr_number"] != float64(42) || body["pr_title"] != "Add logging" {
			t.Errorf("unexpected PR echo: %v", body)
		}
		if len(uc.enqueued) != 1 {
			t.Fatalf("enqueued %d events, want 1", len(uc.enqueued))
		}
		if uc.enqueued[0].Number != 42 {
			t.Errorf("enqueued PR #%d, want #42", uc.enqueued[0].Number)
		}
	})

	t.Run("irrelevant action returns 200 ignored", func(t *testing.T) {
		uc := &mockNotificationUC{}
		r := newTestRouter(uc, "")
		w := postWebhook(r, "pull_request", []byte(`{"action":"closed","pull_request":{"number":9}}`), "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if decodeBody(t, w)["status"] != "ignored" {
			t.Error("expected ignored status")
		}
		if len(uc.enqueued) != 0 {
			t.Error("irrelevant action must not enqueue")
		}
	})

	t.Run("unhandled event type returns 200 ignored", func(t *testing.T) {
		r := newTestRouter(&mockNotificationUC{}, "")
		w := postWebhook(r, "issues", []byte(`{"action":"opened"}`), "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if decodeBody(t, w)["status"] != "ignored" {
			t.Error("expected ignored status")
		}
	})

	t.Run("full queue still returns 200", func(t *testing.T) {
		uc := &mockNotificationUC{queueFull: true}
		r := newTestRouter(uc, "")
		w := postWebhook(r, "pull_request", prPayload, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})
}

package azureopenai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		if _, err := New(Config{Endpoint: "https://example.openai.azure.com"}); err == nil {
			t.Error("expected error without API key")
		}
	})

	t.Run("requires endpoint", func(t *testing.T) {
		if _, err := New(Config{APIKey: "k"}); err == nil {
			t.Error("expected error without endpoint")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		c, err := New(Config{Endpoint: "https://example.openai.azure.com/", APIKey: "k"})
		if err != nil {
			t.Fatal(err)
		}
		if c.Deployment() != DefaultDeployment {
			t.Errorf("deployment = %q, want %q", c.Deployment(), DefaultDeployment)
		}
	})
}

func TestChatCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var gotPath, gotKey string
		var gotReq Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path + "?" + r.URL.RawQuery
			gotKey = r.Header.Get("api-key")
			_ = json.NewDecoder(r.Body).Decode(&gotReq)
			_ = json.NewEncoder(w).Encode(Response{
				ID: "cmpl-1",
				Choices: []Choice{
					{Message: Message{Role: RoleAssistant, Content: `{"subject":"S","body":"B"}`}},
				},
			})
		}))
		defer server.Close()

		c, err := New(Config{Endpoint: "https://unused", APIKey: "test-key", Deployment: "gpt-4o"})
		if err != nil {
			t.Fatal(err)
		}
		c.SetEndpoint(server.URL)

		resp, err := c.ChatCompletion(ctx, &Request{
			Messages:    []Message{{Role: RoleUser, Content: "hi"}},
			Temperature: 0.7,
			MaxTokens:   1500,
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content == "" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if !strings.Contains(gotPath, "/openai/deployments/gpt-4o/chat/completions") {
			t.Errorf("path = %q", gotPath)
		}
		if !strings.Contains(gotPath, "api-version="+DefaultAPIVersion) {
			t.Errorf("missing api-version in %q", gotPath)
		}
		if gotKey != "test-key" {
			t.Errorf("api-key header = %q", gotKey)
		}
		if gotReq.MaxTokens != 1500 {
			t.Errorf("max_tokens forwarded as %d", gotReq.MaxTokens)
		}
	})

	t.Run("error envelope surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"401","message":"bad key"}}`))
		}))
		defer server.Close()

		c, _ := New(Config{Endpoint: "https://unused", APIKey: "k"})
		c.SetEndpoint(server.URL)

		_, err := c.ChatCompletion(ctx, &Request{})
		if err == nil || !strings.Contains(err.Error(), "bad key") {
			t.Errorf("err = %v, want API error with message", err)
		}
	})

	t.Run("non-JSON error body surfaced raw", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream timeout"))
		}))
		defer server.Close()

		c, _ := New(Config{Endpoint: "https://unused", APIKey: "k"})
		c.SetEndpoint(server.URL)

		_, err := c.ChatCompletion(ctx, &Request{})
		if err == nil || !strings.Contains(err.Error(), "upstream timeout") {
			t.Errorf("err = %v", err)
		}
	})
}

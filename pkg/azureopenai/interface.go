package azureopenai

import "context"

// IAzureOpenAI is the chat completions client interface.
// Consumers depend on this so tests can substitute fakes.
type IAzureOpenAI interface {
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
	Deployment() string
}

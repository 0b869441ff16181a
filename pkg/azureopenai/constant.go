package azureopenai

import "time"

const (
	DefaultAPIVersion = "2024-05-01-preview"
	DefaultDeployment = "gpt-4o"

	defaultTimeout = 60 * time.Second
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

package usecase

import (
	"sync"
	"time"

	"agentic-task-manager/internal/model"
	"agentic-task-manager/pkg/azureopenai"
	"agentic-task-manager/pkg/log"
	"agentic-task-manager/pkg/mailer"
)

// Config carries the settings the pipeline needs at runtime plus the
// presence booleans surfaced by the status endpoint.
type Config struct {
	ProjectName  string
	ProjectOwner string
	OwnerEmail   string

	QueueSize int // bounded; 0 uses DefaultQueueSize

	// Status reporting only — never the values themselves.
	AIConfigured            bool
	MailConfigured          bool
	WebhookSecretConfigured bool
	SMTPHost                string
	SMTPPort                int
	AIEndpoint              string
	Deployment              string

	// Now overrides the clock; nil uses time.Now. Tests pin it to make the
	// fallback rendering reproducible.
	Now func() time.Time
}

// implUseCase is the private implementation of notification.UseCase.
type implUseCase struct {
	openai azureopenai.IAzureOpenAI
	mail   mailer.Mailer
	cfg    Config
	l      log.Logger
	now    func() time.Time

	queue chan model.PullRequestEvent
	wg    sync.WaitGroup
}

// New creates the notification UseCase implementation.
func New(l log.Logger, openai azureopenai.IAzureOpenAI, mail mailer.Mailer, cfg Config) *implUseCase {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		openai: openai,
		mail:   mail,
		cfg:    cfg,
		l:      l,
		now:    now,
		queue:  make(chan model.PullRequestEvent, cfg.QueueSize),
	}
}

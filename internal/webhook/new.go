package webhook

import (
	"agentic-task-manager/internal/notification"
	pkgLog "agentic-task-manager/pkg/log"
)

type Handler struct {
	notificationUC notification.UseCase
	security       *SecurityValidator
	extractor      *GitHubExtractor
	l              pkgLog.Logger
}

func NewHandler(
	notificationUC notification.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		notificationUC: notificationUC,
		security:       NewSecurityValidator(securityConfig, l),
		extractor:      NewGitHubExtractor(l),
		l:              l,
	}
}

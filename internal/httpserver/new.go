package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	notificationHTTP "agentic-task-manager/internal/notification/delivery/http"
	"agentic-task-manager/internal/webhook"
	"agentic-task-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Notification pipeline
	webhookHandler      *webhook.Handler
	notificationHandler notificationHTTP.Handler

	// Task domain (optional: requires Postgres)
	postgresDB *sql.DB
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	WebhookHandler      *webhook.Handler
	NotificationHandler notificationHTTP.Handler

	// PostgresDB may be nil; the task domain is then not registered.
	PostgresDB *sql.DB
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.Default(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		webhookHandler:      cfg.WebhookHandler,
		notificationHandler: cfg.NotificationHandler,
		postgresDB:          cfg.PostgresDB,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.webhookHandler == nil {
		return errors.New("webhook handler is required")
	}
	if srv.notificationHandler == nil {
		return errors.New("notification handler is required")
	}
	return nil
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agentic-task-manager/config"
	"agentic-task-manager/config/postgre"
	_ "agentic-task-manager/docs" // Swagger docs
	"agentic-task-manager/internal/httpserver"
	notificationHTTP "agentic-task-manager/internal/notification/delivery/http"
	notificationUC "agentic-task-manager/internal/notification/usecase"
	"agentic-task-manager/internal/webhook"
	"agentic-task-manager/pkg/azureopenai"
	"agentic-task-manager/pkg/log"
	"agentic-task-manager/pkg/mailer"
)

// @title       Agentic Task Manager API
// @description AI-assisted PR notification pipeline with GitHub webhook intake and a task CRUD API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agentic Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Mandatory pipeline settings: abort with every missing name at once.
	if err := cfg.Validate(); err != nil {
		logger.Errorf(ctx, "Configuration invalid: %v", err)
		return
	}
	if cfg.Webhook.Secret == "" {
		logger.Warn(ctx, "GITHUB_WEBHOOK_SECRET not set, webhook signatures will NOT be verified")
	}

	// 4. Postgres (optional; the task API is skipped without it)
	var db *sql.DB
	if cfg.Postgres.DSN != "" {
		db, err = postgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			logger.Warnf(ctx, "Postgres not available (optional): %v", err)
			db = nil
		} else {
			defer postgre.Disconnect(ctx, db)
		}
	} else {
		logger.Warn(ctx, "DATABASE_URL not set, task API disabled")
	}

	// 5. Notification pipeline
	openaiClient, err := azureopenai.New(azureopenai.Config{
		Endpoint:   cfg.OpenAI.Endpoint,
		APIKey:     cfg.OpenAI.APIKey,
		APIVersion: cfg.OpenAI.APIVersion,
		Deployment: cfg.OpenAI.Deployment,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Azure OpenAI client: %v", err)
		return
	}

	smtpMailer, err := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize mailer: %v", err)
		return
	}

	notifUC := notificationUC.New(logger, openaiClient, smtpMailer, notificationUC.Config{
		ProjectName:             cfg.Project.Name,
		ProjectOwner:            cfg.Project.Owner,
		OwnerEmail:              cfg.Project.OwnerEmail,
		AIConfigured:            cfg.OpenAI.APIKey != "",
		MailConfigured:          cfg.SMTP.Username != "" && cfg.SMTP.Password != "",
		WebhookSecretConfigured: cfg.Webhook.Secret != "",
		SMTPHost:                cfg.SMTP.Host,
		SMTPPort:                cfg.SMTP.Port,
		AIEndpoint:              cfg.OpenAI.Endpoint,
		Deployment:              cfg.OpenAI.Deployment,
	})
	notifUC.StartWorker()
	defer notifUC.StopWorker()

	webhookHandler := webhook.NewHandler(notifUC, webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, logger)

	notificationHandler := notificationHTTP.New(logger, notifUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		WebhookHandler:      webhookHandler,
		NotificationHandler: notificationHandler,
		PostgresDB:          db,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

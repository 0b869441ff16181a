package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration. Populated once at startup and never
// mutated afterwards.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PR notification pipeline
	OpenAI  OpenAIConfig
	SMTP    SMTPConfig
	Project ProjectConfig
	Webhook WebhookConfig

	// Task domain storage (optional)
	Postgres PostgresConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OpenAIConfig points at an Azure OpenAI resource.
type OpenAIConfig struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Deployment string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// ProjectConfig is display metadata embedded in generated notifications.
type ProjectConfig struct {
	Name       string
	Owner      string
	OwnerEmail string
}

type WebhookConfig struct {
	Secret          string
	RateLimitPerMin int
}

type PostgresConfig struct {
	DSN string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Azure OpenAI
	cfg.OpenAI.Endpoint = viper.GetString("openai.endpoint")
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.APIVersion = viper.GetString("openai.api_version")
	cfg.OpenAI.Deployment = viper.GetString("openai.deployment")
	// Flat env aliases matching the original deployment scripts
	if v := viper.GetString("endpoint_url"); v != "" {
		cfg.OpenAI.Endpoint = v
	}
	if v := viper.GetString("azure_openai_api_key"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := viper.GetString("azure_openai_api_version"); v != "" {
		cfg.OpenAI.APIVersion = v
	}
	if v := viper.GetString("deployment_name"); v != "" {
		cfg.OpenAI.Deployment = v
	}

	// Mail transport
	cfg.SMTP.Host = viper.GetString("smtp.host")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.Username = viper.GetString("smtp.username")
	cfg.SMTP.Password = viper.GetString("smtp.password")
	cfg.SMTP.From = viper.GetString("smtp.from")
	if v := viper.GetString("smtp_server"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := viper.GetString("email_username"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := viper.GetString("email_password"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := viper.GetString("from_email"); v != "" {
		cfg.SMTP.From = v
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}

	// Project metadata
	cfg.Project.Name = viper.GetString("project.name")
	cfg.Project.Owner = viper.GetString("project.owner")
	cfg.Project.OwnerEmail = viper.GetString("project.owner_email")
	if v := viper.GetString("project_name"); v != "" {
		cfg.Project.Name = v
	}
	if v := viper.GetString("project_owner"); v != "" {
		cfg.Project.Owner = v
	}
	if v := viper.GetString("owner_email"); v != "" {
		cfg.Project.OwnerEmail = v
	}

	// Webhooks
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if v := viper.GetString("github_webhook_secret"); v != "" {
		cfg.Webhook.Secret = v
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Postgres (optional; task domain is skipped without it)
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if v := viper.GetString("database_url"); v != "" {
		cfg.Postgres.DSN = v
	}

	return cfg, nil
}

// Validate checks the notification pipeline's mandatory settings.
// Returns one error enumerating every missing name so operators fix them in
// a single pass. The webhook secret is deliberately not required.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"AZURE_OPENAI_API_KEY", c.OpenAI.APIKey},
		{"EMAIL_USERNAME", c.SMTP.Username},
		{"EMAIL_PASSWORD", c.SMTP.Password},
		{"OWNER_EMAIL", c.Project.OwnerEmail},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("openai.api_version", "2024-05-01-preview")
	viper.SetDefault("openai.deployment", "gpt-4o")

	viper.SetDefault("smtp.host", "smtp.gmail.com")
	viper.SetDefault("smtp.port", 587)

	viper.SetDefault("project.name", "Agentic CI/CD Task Manager")
	viper.SetDefault("project.owner", "Project Owner")

	viper.SetDefault("webhook.rate_limit_per_min", 60)
}

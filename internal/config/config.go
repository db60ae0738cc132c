// Package config loads the environment driven configuration for the
// service.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"vidu-ui"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	ServerPort      int           `env:"SERVER_PORT" envDefault:"7860"`
	SharePublic     bool          `env:"SHARE_PUBLIC" envDefault:"false"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Remote API (required key, no default)
	ViduAPIKey     string        `env:"VIDU_API_KEY,notEmpty"`
	ViduBaseURL    string        `env:"VIDU_BASE_URL" envDefault:"https://api.vidu.cn"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`

	// Task polling
	DefaultTimeout time.Duration `env:"DEFAULT_TIMEOUT" envDefault:"300s"`
	MaxTimeout     time.Duration `env:"MAX_TIMEOUT" envDefault:"1800s"`
	CheckInterval  time.Duration `env:"CHECK_INTERVAL" envDefault:"3s"`

	// Artifact downloads
	DownloadDir     string        `env:"DOWNLOAD_DIR" envDefault:"downloads"`
	DownloadTimeout time.Duration `env:"DOWNLOAD_TIMEOUT" envDefault:"300s"`

	// Browser uploads
	Domain        string `env:"DOMAIN"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxFileSize   int64  `env:"MAX_FILE_SIZE" envDefault:"52428800"`
	UploadsBudget int64  `env:"UPLOADS_BUDGET" envDefault:"524288000"`

	// UI
	UITitle string `env:"UI_TITLE" envDefault:"Vidu Studio"`
	UITheme string `env:"UI_THEME" envDefault:"soft"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.ViduAPIKey = strings.TrimSpace(cfg.ViduAPIKey)
	cfg.ViduBaseURL = strings.TrimSpace(strings.TrimRight(cfg.ViduBaseURL, "/"))
	cfg.Domain = strings.TrimSpace(cfg.Domain)
	if cfg.ViduAPIKey == "" {
		return nil, fmt.Errorf("VIDU_API_KEY is required")
	}
	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("SERVER_PORT %d is out of range", cfg.ServerPort)
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 50 * 1024 * 1024
	}
	if cfg.UploadsBudget <= 0 {
		cfg.UploadsBudget = 500 * 1024 * 1024
	}
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = 300 * time.Second
	}
	if cfg.MaxTimeout < cfg.DefaultTimeout {
		cfg.MaxTimeout = cfg.DefaultTimeout
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = 3 * time.Second
	}
	if cfg.Domain == "" {
		cfg.Domain = fmt.Sprintf("127.0.0.1:%d", cfg.ServerPort)
	}
	return cfg, nil
}

// Addr returns the listen address. A public share binds all
// interfaces; otherwise only loopback is exposed.
func (c *Config) Addr() string {
	host := "127.0.0.1"
	if c.SharePublic {
		host = "0.0.0.0"
	}
	return fmt.Sprintf("%s:%d", host, c.ServerPort)
}

// PublicBaseURL returns the externally reachable base URL used when
// handing upload URLs to the remote service.
func (c *Config) PublicBaseURL() string {
	if strings.HasPrefix(c.Domain, "http://") || strings.HasPrefix(c.Domain, "https://") {
		return strings.TrimRight(c.Domain, "/")
	}
	return "http://" + c.Domain
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// ClampTimeout bounds a caller supplied wait deadline, substituting
// the default when unset.
func (c *Config) ClampTimeout(seconds int) time.Duration {
	if seconds <= 0 {
		return c.DefaultTimeout
	}
	timeout := time.Duration(seconds) * time.Second
	if timeout > c.MaxTimeout {
		return c.MaxTimeout
	}
	return timeout
}

// Package logger configures the service wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/config"
)

// New creates the root logger. Development gets the human readable
// console writer; production logs plain JSON for collectors.
func New(cfg *config.Config) zerolog.Logger {
	var base zerolog.Logger
	if cfg.IsProduction() {
		base = zerolog.New(os.Stdout)
	} else {
		base = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	return base.With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger().
		Level(parseLevel(cfg.LogLevel))
}

func parseLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil || raw == "" {
		return zerolog.InfoLevel
	}
	return level
}

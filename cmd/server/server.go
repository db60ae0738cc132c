package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/config"
	"github.com/minne100/ViduUI/internal/infrastructure/download"
	"github.com/minne100/ViduUI/internal/infrastructure/logger"
	"github.com/minne100/ViduUI/internal/infrastructure/observability"
	"github.com/minne100/ViduUI/internal/infrastructure/uploads"
	"github.com/minne100/ViduUI/internal/infrastructure/vidu"
	"github.com/minne100/ViduUI/internal/interfaces/httpserver"
)

// @title Vidu UI
// @version 1.0
// @description Web UI and JSON API for Vidu video and audio generation
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	janitor    *uploads.Janitor
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, janitor *uploads.Janitor, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		janitor:    janitor,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	go func() {
		if err := a.janitor.Run(ctx); err != nil {
			a.log.Error().Err(err).Msg("upload janitor stopped")
		}
	}()
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	if err := os.MkdirAll(cfg.DownloadDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("create download directory")
	}

	store, err := uploads.NewStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize upload store")
	}
	janitor := uploads.NewJanitor(store)

	client := vidu.NewClient(cfg.ViduAPIKey, cfg.ViduBaseURL, cfg.RequestTimeout, log)
	downloader := download.New(cfg.DownloadTimeout, log)

	httpServer := httpserver.New(cfg, log, client, downloader, store)
	app := NewApplication(httpServer, janitor, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}

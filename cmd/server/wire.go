//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/config"
	"github.com/minne100/ViduUI/internal/infrastructure/download"
	"github.com/minne100/ViduUI/internal/infrastructure/logger"
	"github.com/minne100/ViduUI/internal/infrastructure/uploads"
	"github.com/minne100/ViduUI/internal/infrastructure/vidu"
	"github.com/minne100/ViduUI/internal/interfaces/httpserver"
	"github.com/minne100/ViduUI/internal/interfaces/httpserver/handlers"
)

var generationSet = wire.NewSet(
	newViduClient,
	wire.Bind(new(handlers.Client), new(*vidu.Client)),
	newDownloader,
	wire.Bind(new(handlers.Fetcher), new(*download.Downloader)),
	uploads.NewStore,
	wire.Bind(new(handlers.Store), new(*uploads.Store)),
	uploads.NewJanitor,
)

// BuildApplication assembles the service with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		generationSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newViduClient(cfg *config.Config, log zerolog.Logger) *vidu.Client {
	return vidu.NewClient(cfg.ViduAPIKey, cfg.ViduBaseURL, cfg.RequestTimeout, log)
}

func newDownloader(cfg *config.Config, log zerolog.Logger) *download.Downloader {
	return download.New(cfg.DownloadTimeout, log)
}

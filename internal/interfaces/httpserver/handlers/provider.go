package handlers

import (
	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/config"
)

// Provider wires HTTP handlers.
type Provider struct {
	Generation *GenerationHandler
	Upload     *UploadHandler
}

func NewProvider(cfg *config.Config, client Client, fetcher Fetcher, store Store, log zerolog.Logger) *Provider {
	return &Provider{
		Generation: NewGenerationHandler(cfg, client, fetcher, log),
		Upload:     NewUploadHandler(cfg, store, log),
	}
}

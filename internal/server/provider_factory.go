package server

import (
	"log/slog"
	"strings"

	"draft-board-service/internal/config"
	"draft-board-service/internal/providers"
	"draft-board-service/internal/providers/file"
	"draft-board-service/internal/providers/fixture"
	"draft-board-service/internal/providers/remote"
)

// selectProvider maps the configured provider name to a concrete dataset
// provider. Unknown names fall back to the fixture provider so the service
// still comes up with data.
func selectProvider(cfg config.Config, logger *slog.Logger) providers.DatasetProvider {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderFile:
		return file.New(cfg.Dataset.Path)
	case config.ProviderRemote:
		return remote.NewClient(remote.Config{URL: cfg.Dataset.URL, Timeout: cfg.Dataset.Timeout})
	default:
		if logger != nil && cfg.Provider != "" && strings.ToLower(cfg.Provider) != config.ProviderFixture {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// normalizeProviderName returns the lower-cased provider name for metric and
// log labels.
func normalizeProviderName(raw string) string {
	if raw == "" {
		return config.ProviderFixture
	}
	return strings.ToLower(raw)
}

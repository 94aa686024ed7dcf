package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envDataPath     = "DATA_PATH"
	envDataURL      = "DATA_URL"
	envDataTimeout  = "DATA_TIMEOUT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultProvider    = ProviderFixture
	defaultDataPath    = "data/draft_class.json"
	defaultMetricsPort = "9090"
	defaultServiceName = "draft-board-service"
	// Generous ceiling for the one-shot dataset fetch; the document is a few
	// hundred KB at draft-class scale.
	defaultDataTimeout = 15 * time.Second
)

// Known dataset provider names.
const (
	ProviderFixture = "fixture"
	ProviderFile    = "file"
	ProviderRemote  = "remote"
)

package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envMaxConcurrent = "UPSTREAM_MAX_CONCURRENT"
	envMaxRetries    = "UPSTREAM_MAX_RETRIES"
	envRequestDelay  = "UPSTREAM_REQUEST_DELAY"

	defaultPort        = "8080"
	defaultProvider    = "thesportsdb"
	defaultMetricsPort = "9090"
	// Conservative defaults to respect the upstream free/premium quota.
	defaultMaxConcurrent = 2
	defaultMaxRetries    = 2
	// Fixed pause before every upstream request to reduce burst pressure.
	defaultRequestDelay = 1 * time.Second
)

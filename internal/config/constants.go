package config

import "time"

const (
	envPort             = "PORT"
	envSports           = "SPORTS"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envWarmupOn         = "WARMUP_ENABLED"
	envWarmupMaxElapsed = "WARMUP_MAX_ELAPSED"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultWarmupOn    = false
	// Bounded so a dead upstream cannot stall startup indefinitely.
	defaultWarmupMaxElapsed = 2 * Duration(time.Minute)
)

var defaultSports = []string{"nba"}

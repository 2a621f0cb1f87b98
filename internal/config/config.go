package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Sports      []string
	Balldontlie BalldontlieConfig
	Cache       CacheConfig
	Metrics     MetricsConfig
	Warmup      WarmupConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Sports:      listEnvOrDefault(envSports, defaultSports),
		Balldontlie: loadBalldontlie(),
		Cache:       loadCache(),
		Metrics:     loadMetrics(),
		Warmup:      loadWarmup(),
	}
}

// WarmupConfig controls the optional team-cache warmup at startup.
type WarmupConfig struct {
	Enabled    bool
	MaxElapsed Duration
}

func loadWarmup() WarmupConfig {
	return WarmupConfig{
		Enabled:    boolEnvOrDefault(envWarmupOn, defaultWarmupOn),
		MaxElapsed: durationEnvOrDefault(envWarmupMaxElapsed, defaultWarmupMaxElapsed),
	}
}

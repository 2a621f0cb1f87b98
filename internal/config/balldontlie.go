package config

import "time"

const (
	envBdlAPIKey      = "BALLDONTLIE_API_KEY"
	envBdlRatePerMin  = "BALLDONTLIE_REQUESTS_PER_MINUTE"
	envBdlMaxPages    = "BALLDONTLIE_MAX_PAGES"
	envBdlHTTPTimeout = "BALLDONTLIE_HTTP_TIMEOUT"

	// Free-tier quota for the balldontlie API.
	defaultBdlRatePerMin  = 5
	defaultBdlMaxPages    = 10
	defaultBdlHTTPTimeout = 30 * Duration(time.Second)
)

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	APIKey            string
	RequestsPerMinute int
	MaxPages          int
	HTTPTimeout       Duration
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		APIKey:            envOrDefault(envBdlAPIKey, ""),
		RequestsPerMinute: intEnvOrDefault(envBdlRatePerMin, defaultBdlRatePerMin),
		MaxPages:          intEnvOrDefault(envBdlMaxPages, defaultBdlMaxPages),
		HTTPTimeout:       durationEnvOrDefault(envBdlHTTPTimeout, defaultBdlHTTPTimeout),
	}
}

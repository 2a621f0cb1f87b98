package balldontlie

import "time"

const (
	providerName = "balldontlie"

	defaultPerPage     = 100
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxPages    = 10

	headerRateLimitRemaining = "x-ratelimit-remaining"
	headerRateLimitLimit     = "x-ratelimit-limit"
)

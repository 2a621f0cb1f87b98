package providers

import (
	"errors"
	"fmt"
)

// RateLimitError captures a 429 from an upstream provider. Unlike other
// upstream failures it always propagates to callers so UIs can tell users
// to wait instead of showing "no data".
type RateLimitError struct {
	Provider   string
	StatusCode int
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited, try again shortly"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// UpstreamError captures any non-rate-limit provider failure: unexpected
// status codes, transport errors, malformed payloads. Callers treat these
// as "no data available" after logging.
type UpstreamError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s returned status %d", e.Provider, e.Endpoint, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: %s failed", e.Provider, e.Endpoint)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

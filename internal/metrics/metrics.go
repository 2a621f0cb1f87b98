package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// cache lookups. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*providerStats
	caches map[string]*cacheStats
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:  make(map[string]*providerStats),
		caches: make(map[string]*cacheStats),
		otel:   otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit the upstream quota.
func (r *Recorder) RecordRateLimit(provider string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStats(provider).rateLimitHits++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider)
	}
}

// RecordCacheLookup tracks a hit or miss against a named cache class
// (e.g. "teams", "team_season_stats").
func (r *Recorder) RecordCacheLookup(kind string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.caches[kind]
	if !ok {
		stats = &cacheStats{}
		r.caches[kind] = stats
	}
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(kind, hit)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// CacheHits returns the hit count for a cache class.
func (r *Recorder) CacheHits(kind string) int {
	hits, _ := r.cacheSnapshot(kind)
	return hits
}

// CacheMisses returns the miss count for a cache class.
func (r *Recorder) CacheMisses(kind string) int {
	_, misses := r.cacheSnapshot(kind)
	return misses
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) cacheSnapshot(kind string) (hits, misses int) {
	if r == nil {
		return 0, 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.caches[kind]; ok {
		return stats.hits, stats.misses
	}
	return 0, 0
}

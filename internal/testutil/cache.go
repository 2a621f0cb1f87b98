package testutil

import (
	"context"
	"sync"
	"time"
)

// SpyCache is an always-fresh in-memory cache that records the TTL each key
// was stored with, so tests can assert cache-policy decisions without
// waiting for real time to pass. Clear simulates TTL expiry.
type SpyCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
}

func NewSpyCache() *SpyCache {
	return &SpyCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (s *SpyCache) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *SpyCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	s.ttls[key] = ttl
}

// TTLFor returns the TTL the key was last stored with.
func (s *SpyCache) TTLFor(key string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ttl, ok := s.ttls[key]
	return ttl, ok
}

// Len reports the number of stored entries.
func (s *SpyCache) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear drops all entries, simulating expiry.
func (s *SpyCache) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string][]byte)
	s.ttls = make(map[string]time.Duration)
}

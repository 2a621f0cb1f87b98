package cache

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryGetSetRoundTrip(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}

	c.Set(ctx, "k", []byte("v"), time.Minute)
	got, ok := c.Get(ctx, "k")
	if !ok || string(got) != "v" {
		t.Fatalf("expected hit with value v, got %q ok=%v", got, ok)
	}
}

func TestMemoryExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemory()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	c.Set(ctx, "teams:nba", []byte("payload"), 24*time.Hour)

	now = now.Add(23 * time.Hour)
	if _, ok := c.Get(ctx, "teams:nba"); !ok {
		t.Fatalf("expected hit inside TTL window")
	}

	now = now.Add(2 * time.Hour)
	if _, ok := c.Get(ctx, "teams:nba"); ok {
		t.Fatalf("expected miss after TTL elapsed")
	}
	if c.Len() != 0 {
		t.Fatalf("expected lazy eviction to remove expired entry")
	}
}

func TestMemoryIgnoresNonPositiveTTL(t *testing.T) {
	c := NewMemory()
	c.Set(context.Background(), "k", []byte("v"), 0)
	if c.Len() != 0 {
		t.Fatalf("expected zero TTL to be ignored")
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set(ctx, "shared", []byte("v"), time.Minute)
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	if _, ok := c.Get(ctx, "shared"); !ok {
		t.Fatalf("expected value after concurrent writes")
	}
}

func TestKeys(t *testing.T) {
	if got := TeamsKey("nba"); got != "teams:nba" {
		t.Fatalf("unexpected teams key %q", got)
	}
	if got := TeamSeasonStatsKey("nfl", 14, 2023); got != "stats:nfl:14:2023" {
		t.Fatalf("unexpected stats key %q", got)
	}
}

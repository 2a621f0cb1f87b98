package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLs per cached data class. Team reference data barely changes; derived
// season aggregates go stale as new games finish.
const (
	TeamsTTL           = 24 * time.Hour
	TeamSeasonStatsTTL = 30 * time.Minute
)

// Cache is a byte-value store with per-entry expiry. Implementations must
// tolerate concurrent readers and writers; racing writes on one key are
// benign (duplicate upstream work, not corruption).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// TeamsKey returns the cache key for a sport's team list.
func TeamsKey(sportKey string) string {
	return fmt.Sprintf("teams:%s", sportKey)
}

// TeamSeasonStatsKey returns the cache key for one team-season aggregate.
func TeamSeasonStatsKey(sportKey string, teamID, season int) string {
	return fmt.Sprintf("stats:%s:%d:%d", sportKey, teamID, season)
}

// Package client exposes the aggregation API the rest of the system
// consumes: team lookups, derived season stats, head-to-head history, and
// per-game player lines, with read-through caching in front of the
// per-sport providers.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"sports-stats-service/internal/app/stats"
	"sports-stats-service/internal/cache"
	"sports-stats-service/internal/domain"
	"sports-stats-service/internal/logging"
	"sports-stats-service/internal/metrics"
	"sports-stats-service/internal/providers"
	"sports-stats-service/internal/quota"
	"sports-stats-service/internal/sports"
)

// maxHeadToHead caps how many shared games a head-to-head lookup returns.
const maxHeadToHead = 5

// Cache class names for metrics.
const (
	cacheTeams = "teams"
	cacheStats = "team_season_stats"
)

// Config wires a Client. Providers is keyed by sport key (see the sports
// package); all fields besides Providers and Cache are optional.
type Config struct {
	Providers map[string]providers.DataProvider
	Cache     cache.Cache
	Quota     *quota.Tracker
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
}

// Client is the aggregation façade. Safe for concurrent use; concurrent
// cache misses for one key are collapsed into a single upstream fetch.
type Client struct {
	providers map[string]providers.DataProvider
	cache     cache.Cache
	quota     *quota.Tracker
	logger    *slog.Logger
	metrics   *metrics.Recorder
	group     singleflight.Group
}

// New constructs a Client from the given wiring.
func New(cfg Config) *Client {
	c := cfg.Cache
	if c == nil {
		c = cache.NewMemory()
	}
	return &Client{
		providers: cfg.Providers,
		cache:     c,
		quota:     cfg.Quota,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
	}
}

// ListTeams returns the sport's team list, cached for 24 hours.
func (c *Client) ListTeams(ctx context.Context, sport string) ([]domain.Team, error) {
	sp, provider, err := c.route(sport)
	if err != nil {
		return nil, err
	}

	key := cache.TeamsKey(sp.Key)
	if cached, ok := c.lookup(ctx, cacheTeams, key, new([]domain.Team)); ok {
		return *cached.(*[]domain.Team), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		teams, err := provider.FetchTeams(ctx)
		if err != nil {
			return nil, err
		}
		c.store(ctx, key, teams, cache.TeamsTTL)
		return teams, nil
	})
	if err != nil {
		return nil, c.degrade(ctx, err, sp, "/teams")
	}
	return v.([]domain.Team), nil
}

// ResolveTeamID finds a team id by display name, short name, or
// abbreviation. ok is false when no team matches.
func (c *Client) ResolveTeamID(ctx context.Context, name, sport string) (int, bool, error) {
	teams, err := c.ListTeams(ctx, sport)
	if err != nil {
		return 0, false, err
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return 0, false, nil
	}

	for _, t := range teams {
		if strings.ToLower(t.FullName) == needle ||
			strings.ToLower(t.Name) == needle ||
			strings.ToLower(t.Abbreviation) == needle {
			return t.ID, true, nil
		}
	}
	for _, t := range teams {
		if strings.Contains(strings.ToLower(t.FullName), needle) {
			return t.ID, true, nil
		}
	}
	return 0, false, nil
}

// TeamSeasonStats returns the derived aggregate for one team and season,
// cached for 30 minutes. A nil result with nil error means no final games
// exist (or the upstream was unavailable; see the logs for the difference).
func (c *Client) TeamSeasonStats(ctx context.Context, teamID int, sport string, season int) (*domain.TeamSeasonStats, error) {
	sp, provider, err := c.route(sport)
	if err != nil {
		return nil, err
	}

	key := cache.TeamSeasonStatsKey(sp.Key, teamID, season)
	if cached, ok := c.lookup(ctx, cacheStats, key, new(domain.TeamSeasonStats)); ok {
		return cached.(*domain.TeamSeasonStats), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		games, err := provider.FetchSeasonGames(ctx, season, teamID)
		if err != nil {
			return nil, err
		}

		agg := stats.Aggregate(teamID, season, games, logging.FromContext(ctx, c.logger))
		if agg != nil {
			// Absent aggregates are not cached: a team's first final
			// game of the season should show up without waiting out
			// the TTL.
			c.store(ctx, key, agg, cache.TeamSeasonStatsTTL)
		}
		return agg, nil
	})
	if err != nil {
		return nil, c.degrade(ctx, err, sp, "/games")
	}
	return v.(*domain.TeamSeasonStats), nil
}

// HeadToHead returns up to 5 most recent final games between the two teams,
// newest first. Only team A's game list is fetched; the opponent filter is
// applied client-side so the lookup never depends on the upstream's
// multi-team query semantics.
func (c *Client) HeadToHead(ctx context.Context, teamA, teamB int, sport string) ([]domain.Game, error) {
	sp, provider, err := c.route(sport)
	if err != nil {
		return nil, err
	}

	games, err := provider.FetchTeamGames(ctx, teamA)
	if err != nil {
		return nil, c.degrade(ctx, err, sp, "/games")
	}

	shared := make([]domain.Game, 0, maxHeadToHead)
	for _, g := range games {
		if !g.IsFinal() {
			continue
		}
		opp, ok := g.Opponent(teamA)
		if !ok || opp.ID != teamB {
			continue
		}
		shared = append(shared, g)
	}

	sort.SliceStable(shared, func(i, j int) bool {
		return shared[i].Date.After(shared[j].Date)
	})
	if len(shared) > maxHeadToHead {
		shared = shared[:maxHeadToHead]
	}
	return shared, nil
}

// GameStats returns the per-player lines for one game. Not cached; the
// payload is only useful for the request that asked for it.
func (c *Client) GameStats(ctx context.Context, gameID int, sport string) ([]domain.PlayerGameStat, error) {
	sp, provider, err := c.route(sport)
	if err != nil {
		return nil, err
	}

	lines, err := provider.FetchGameStats(ctx, gameID)
	if err != nil {
		return nil, c.degrade(ctx, err, sp, "/stats")
	}
	return lines, nil
}

// Quota returns the most recently observed upstream rate-limit snapshot.
func (c *Client) Quota() domain.Quota {
	return c.quota.Snapshot()
}

func (c *Client) route(sport string) (sports.Sport, providers.DataProvider, error) {
	sp, err := sports.Resolve(sport)
	if err != nil {
		return sports.Sport{}, nil, err
	}
	provider, ok := c.providers[sp.Key]
	if !ok {
		return sports.Sport{}, nil, fmt.Errorf("no provider configured for sport %q", sp.Key)
	}
	return sp, provider, nil
}

// lookup reads and decodes a cache entry into target. Undecodable entries
// count as misses.
func (c *Client) lookup(ctx context.Context, kind, key string, target any) (any, bool) {
	data, ok := c.cache.Get(ctx, key)
	if ok {
		if err := json.Unmarshal(data, target); err == nil {
			c.metrics.RecordCacheLookup(kind, true)
			return target, true
		}
	}
	c.metrics.RecordCacheLookup(kind, false)
	return nil, false
}

// store writes a cache entry unless the caller has already gone away; a
// cancelled operation must not install a possibly-incomplete result.
func (c *Client) store(ctx context.Context, key string, value any, ttl time.Duration) {
	if ctx.Err() != nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.cache.Set(ctx, key, data, ttl)
}

// degrade implements the error policy: rate limits propagate so callers can
// back off; everything else is logged with sport and endpoint context and
// resolved to "no data".
func (c *Client) degrade(ctx context.Context, err error, sp sports.Sport, endpoint string) error {
	if rlErr, ok := providers.AsRateLimitError(err); ok {
		logging.Warn(logging.FromContext(ctx, c.logger), "upstream rate limited",
			logging.FieldSport, sp.Key, logging.FieldEndpoint, endpoint)
		return rlErr
	}
	logging.Error(logging.FromContext(ctx, c.logger), "upstream fetch failed, returning no data", err,
		logging.FieldSport, sp.Key, logging.FieldEndpoint, endpoint)
	return nil
}

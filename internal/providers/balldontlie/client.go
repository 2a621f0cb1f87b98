package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"sports-stats-service/internal/domain"
	"sports-stats-service/internal/metrics"
	"sports-stats-service/internal/providers"
	"sports-stats-service/internal/quota"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL           string
	APIKey            string
	HTTPClient        *http.Client
	Quota             *quota.Tracker
	Metrics           *metrics.Recorder
	RequestsPerMinute int
	MaxPages          int
}

// Client fetches teams, games, and per-game stat lines from one balldontlie
// API root and maps them to domain models. The API key travels as a raw
// Authorization header; rate-limit headers are mirrored into the shared
// quota tracker on every response that carries them.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	quota      *quota.Tracker
	metrics    *metrics.Recorder
	limiter    *rate.Limiter
	maxPages   int
}

// NewClient constructs a balldontlie client with the provided configuration.
// BaseURL is required; each sport has its own root.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL, ""),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		quota:      cfg.Quota,
		metrics:    cfg.Metrics,
		limiter:    resolveLimiter(cfg.RequestsPerMinute),
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// FetchTeams retrieves the sport's full team list.
func (c *Client) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	raw, err := fetchAll[teamResponse](ctx, c, "/teams", url.Values{})
	if err != nil {
		return nil, err
	}
	teams := make([]domain.Team, 0, len(raw))
	for _, t := range raw {
		teams = append(teams, mapTeam(t))
	}
	return teams, nil
}

// FetchSeasonGames retrieves one team's games for a season.
func (c *Client) FetchSeasonGames(ctx context.Context, season, teamID int) ([]domain.Game, error) {
	q := url.Values{}
	q.Set("seasons[]", strconv.Itoa(season))
	q.Set("team_ids[]", strconv.Itoa(teamID))
	return c.fetchGames(ctx, q)
}

// FetchTeamGames retrieves one team's game history across seasons.
func (c *Client) FetchTeamGames(ctx context.Context, teamID int) ([]domain.Game, error) {
	q := url.Values{}
	q.Set("team_ids[]", strconv.Itoa(teamID))
	return c.fetchGames(ctx, q)
}

// FetchGameStats retrieves the per-player lines for one game.
func (c *Client) FetchGameStats(ctx context.Context, gameID int) ([]domain.PlayerGameStat, error) {
	q := url.Values{}
	q.Set("game_ids[]", strconv.Itoa(gameID))
	raw, err := fetchAll[statResponse](ctx, c, "/stats", q)
	if err != nil {
		return nil, err
	}
	stats := make([]domain.PlayerGameStat, 0, len(raw))
	for _, s := range raw {
		stats = append(stats, mapStat(s))
	}
	return stats, nil
}

func (c *Client) fetchGames(ctx context.Context, q url.Values) ([]domain.Game, error) {
	raw, err := fetchAll[gameResponse](ctx, c, "/games", q)
	if err != nil {
		return nil, err
	}
	games := make([]domain.Game, 0, len(raw))
	for _, g := range raw {
		games = append(games, mapGame(g))
	}
	return games, nil
}

// fetchAll walks the endpoint's cursor pagination, decoding each page's data
// array into T. maxPages bounds runaway cursors.
func fetchAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var out []T
	cursor := 0

	for page := 0; page < c.maxPages; page++ {
		q := url.Values{}
		for key, vals := range query {
			q[key] = vals
		}
		q.Set("per_page", strconv.Itoa(defaultPerPage))
		if cursor > 0 {
			q.Set("cursor", strconv.Itoa(cursor))
		}

		env, err := c.getPage(ctx, path, q)
		if err != nil {
			return nil, err
		}

		if len(env.Data) > 0 {
			var items []T
			if err := json.Unmarshal(env.Data, &items); err != nil {
				return nil, &providers.UpstreamError{Provider: providerName, Endpoint: path, Err: err}
			}
			out = append(out, items...)
		}

		if env.Meta.NextCursor == nil {
			break
		}
		cursor = *env.Meta.NextCursor
	}

	return out, nil
}

func (c *Client) getPage(ctx context.Context, path string, query url.Values) (envelope, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return envelope{}, &providers.UpstreamError{Provider: providerName, Endpoint: path, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return envelope{}, &providers.UpstreamError{Provider: providerName, Endpoint: path, Err: err}
	}
	req.URL.RawQuery = query.Encode()
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordProviderAttempt(providerName, time.Since(start), err)
	if err != nil {
		return envelope{}, &providers.UpstreamError{Provider: providerName, Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	c.captureQuota(resp.Header)

	if resp.StatusCode == http.StatusTooManyRequests {
		c.metrics.RecordRateLimit(providerName)
		return envelope{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Remaining:  resp.Header.Get(headerRateLimitRemaining),
			Message:    "balldontlie rate limited, try again shortly",
		}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return envelope{}, &providers.UpstreamError{
			Provider:   providerName,
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, &providers.UpstreamError{Provider: providerName, Endpoint: path, Err: err}
	}
	return env, nil
}

// captureQuota mirrors the rate-limit headers into the shared tracker.
// Runs on every response, success or failure, whenever the headers parse.
func (c *Client) captureQuota(h http.Header) {
	if c.quota == nil {
		return
	}

	remaining, err := strconv.Atoi(h.Get(headerRateLimitRemaining))
	if err != nil {
		return
	}
	limit, err := strconv.Atoi(h.Get(headerRateLimitLimit))
	if err != nil {
		limit = c.quota.Snapshot().Limit
	}
	c.quota.Record(remaining, limit)
}

package server

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"sports-stats-service/internal/config"
	"sports-stats-service/internal/domain"
	"sports-stats-service/internal/providers"
	"sports-stats-service/internal/testutil"
)

func testConfig() config.Config {
	cfg := config.Config{}
	cfg.Port = "0"
	cfg.Sports = []string{"nba"}
	cfg.Metrics.Enabled = false
	return cfg
}

func TestServerServesHealth(t *testing.T) {
	srv := newServerWithProviders(testConfig(), testutil.DiscardLogger(), map[string]providers.DataProvider{
		"nba": &testutil.FakeProvider{},
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestServerServesTeamsFromProvider(t *testing.T) {
	provider := &testutil.FakeProvider{
		Teams: []domain.Team{{ID: 14, FullName: "Los Angeles Lakers", Abbreviation: "LAL"}},
	}
	srv := newServerWithProviders(testConfig(), testutil.DiscardLogger(), map[string]providers.DataProvider{
		"nba": provider,
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/teams?sport=nba", nil))

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Teams []domain.Team `json:"teams"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Teams) != 1 || body.Teams[0].ID != 14 {
		t.Fatalf("unexpected teams payload: %+v", body.Teams)
	}
}

func TestServerUnknownSportReturns400(t *testing.T) {
	srv := newServerWithProviders(testConfig(), testutil.DiscardLogger(), map[string]providers.DataProvider{
		"nba": &testutil.FakeProvider{},
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/teams?sport=cricket", nil))

	if rec.Code != 400 {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestServerAttachesRequestIDHeader(t *testing.T) {
	srv := newServerWithProviders(testConfig(), testutil.DiscardLogger(), map[string]providers.DataProvider{
		"nba": &testutil.FakeProvider{},
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header on response")
	}
}

func TestBuildProvidersSkipsUnknownSports(t *testing.T) {
	cfg := testConfig()
	cfg.Sports = []string{"nba", "cricket", "nfl"}
	cfg.Balldontlie.HTTPTimeout = 5 * time.Second

	provs := buildProviders(cfg, nil, nil)

	if len(provs) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(provs))
	}
	if _, ok := provs["nba"]; !ok {
		t.Fatal("expected nba provider")
	}
	if _, ok := provs["nfl"]; !ok {
		t.Fatal("expected nfl provider")
	}
	if _, ok := provs["cricket"]; ok {
		t.Fatal("unexpected cricket provider")
	}
}

func TestBuildCacheFallsBackToMemoryOnBadRedisURL(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Backend = config.CacheBackendRedis
	cfg.Cache.RedisURL = "not-a-redis-url"

	resultCache, closer := buildCache(cfg, testutil.DiscardLogger())

	if resultCache == nil {
		t.Fatal("expected a cache")
	}
	if closer != nil {
		t.Fatal("expected no closer for the memory fallback")
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"sports-stats-service/internal/domain"
	"sports-stats-service/internal/providers"
	"sports-stats-service/internal/sports"
	"sports-stats-service/internal/testutil"
)

type stubClient struct {
	teams      []domain.Team
	teamsErr   error
	resolveID  int
	resolveOK  bool
	resolveErr error
	stats      *domain.TeamSeasonStats
	statsErr   error
	games      []domain.Game
	gamesErr   error
	lines      []domain.PlayerGameStat
	linesErr   error
	quota      domain.Quota

	lastSport string
}

func (s *stubClient) ListTeams(_ context.Context, sport string) ([]domain.Team, error) {
	s.lastSport = sport
	return s.teams, s.teamsErr
}

func (s *stubClient) ResolveTeamID(_ context.Context, _, sport string) (int, bool, error) {
	s.lastSport = sport
	return s.resolveID, s.resolveOK, s.resolveErr
}

func (s *stubClient) TeamSeasonStats(_ context.Context, _ int, sport string, _ int) (*domain.TeamSeasonStats, error) {
	s.lastSport = sport
	return s.stats, s.statsErr
}

func (s *stubClient) HeadToHead(_ context.Context, _, _ int, sport string) ([]domain.Game, error) {
	s.lastSport = sport
	return s.games, s.gamesErr
}

func (s *stubClient) GameStats(_ context.Context, _ int, sport string) ([]domain.PlayerGameStat, error) {
	s.lastSport = sport
	return s.lines, s.linesErr
}

func (s *stubClient) Quota() domain.Quota {
	return s.quota
}

func newTestHandler(client StatsClient) *Handler {
	return NewHandler(client, testutil.DiscardLogger())
}

func TestHealthReturnsOK(t *testing.T) {
	handler := newTestHandler(&stubClient{})
	rec := httptest.NewRecorder()

	handler.Health(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %q", body["status"])
	}
}

func TestHealthRejectsPost(t *testing.T) {
	handler := newTestHandler(&stubClient{})
	rec := httptest.NewRecorder()

	handler.Health(rec, httptest.NewRequest("POST", "/health", nil))

	if rec.Code != 405 {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestTeamsReturnsList(t *testing.T) {
	client := &stubClient{teams: []domain.Team{
		{ID: 14, FullName: "Los Angeles Lakers", Abbreviation: "LAL"},
	}}
	handler := newTestHandler(client)
	rec := httptest.NewRecorder()

	handler.Teams(rec, httptest.NewRequest("GET", "/teams?sport=nba", nil))

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if client.lastSport != "nba" {
		t.Fatalf("expected sport nba passed through, got %q", client.lastSport)
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

func TestTeamsUnknownSportReturns400(t *testing.T) {
	client := &stubClient{teamsErr: sports.ErrUnknownSport}
	handler := newTestHandler(client)
	rec := httptest.NewRecorder()

	handler.Teams(rec, httptest.NewRequest("GET", "/teams?sport=cricket", nil))

	if rec.Code != 400 {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestTeamsRateLimitedReturns429(t *testing.T) {
	client := &stubClient{teamsErr: &providers.RateLimitError{Provider: "balldontlie", StatusCode: 429}}
	handler := newTestHandler(client)
	rec := httptest.NewRecorder()

	handler.Teams(rec, httptest.NewRequest("GET", "/teams", nil))

	if rec.Code != 429 {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected an error message in the body")
	}
}

func TestResolveTeamRequiresName(t *testing.T) {
	handler := newTestHandler(&stubClient{})
	rec := httptest.NewRecorder()

	handler.ResolveTeam(rec, httptest.NewRequest("GET", "/teams/resolve", nil))

	if rec.Code != 400 {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestResolveTeamFound(t *testing.T) {
	client := &stubClient{resolveID: 14, resolveOK: true}
	handler := newTestHandler(client)
	rec := httptest.NewRecorder()

	handler.ResolveTeam(rec, httptest.NewRequest("GET", "/teams/resolve?name=lakers", nil))

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["teamId"] != 14 {
		t.Fatalf("expected teamId 14, got %d", body["teamId"])
	}
}

func TestResolveTeamNotFoundReturns404(t *testing.T) {
	handler := newTestHandler(&stubClient{resolveOK: false})
	rec := httptest.NewRecorder()

	handler.ResolveTeam(rec, httptest.NewRequest("GET", "/teams/resolve?name=nobody", nil))

	if rec.Code != 404 {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestTeamSeasonStatsRequiresParams(t *testing.T) {
	handler := newTestHandler(&stubClient{})

	cases := []struct {
		name   string
		target string
	}{
		{name: "missing team_id", target: "/stats?season=2023"},
		{name: "missing season", target: "/stats?team_id=14"},
		{name: "non-numeric team_id", target: "/stats?team_id=lakers&season=2023"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.TeamSeasonStats(rec, httptest.NewRequest("GET", tc.target, nil))
			if rec.Code != 400 {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestTeamSeasonStatsReturnsAggregate(t *testing.T) {
	client := &stubClient{stats: &domain.TeamSeasonStats{
		TeamID:       14,
		Season:       2023,
		GamesPlayed:  10,
		AvgPointsFor: 112.5,
		RecentForm:   []string{"W", "L", "W"},
	}}
	handler := newTestHandler(client)
	rec := httptest.NewRecorder()

	handler.TeamSeasonStats(rec, httptest.NewRequest("GET", "/stats?team_id=14&season=2023", nil))

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body domain.TeamSeasonStats
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.GamesPlayed != 10 || body.AvgPointsFor != 112.5 {
		t.Fatalf("unexpected aggregate payload: %+v", body)
	}
}

func TestTeamSeasonStatsAbsentReturns404(t *testing.T) {
	handler := newTestHandler(&stubClient{stats: nil})
	rec := httptest.NewRecorder()

	handler.TeamSeasonStats(rec, httptest.NewRequest("GET", "/stats?team_id=14&season=1990", nil))

	if rec.Code != 404 {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHeadToHeadRequiresBothTeams(t *testing.T) {
	handler := newTestHandler(&stubClient{})
	rec := httptest.NewRecorder()

	handler.HeadToHead(rec, httptest.NewRequest("GET", "/h2h?team_a=14", nil))

	if rec.Code != 400 {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHeadToHeadReturnsGames(t *testing.T) {
	client := &stubClient{games: []domain.Game{
		{ID: 1, Date: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), Status: domain.StatusFinal},
	}}
	handler := newTestHandler(client)
	rec := httptest.NewRecorder()

	handler.HeadToHead(rec, httptest.NewRequest("GET", "/h2h?team_a=14&team_b=2", nil))

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Games []domain.Game `json:"games"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Games) != 1 || body.Games[0].ID != 1 {
		t.Fatalf("unexpected games payload: %+v", body.Games)
	}
}

func TestGameStatsParsesPathID(t *testing.T) {
	client := &stubClient{lines: []domain.PlayerGameStat{
		{PlayerID: 7, PlayerName: "Test Player", Points: 30},
	}}
	handler := newTestHandler(client)
	rec := httptest.NewRecorder()

	handler.GameStats(rec, httptest.NewRequest("GET", "/games/555/stats", nil))

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Stats []domain.PlayerGameStat `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Stats) != 1 || body.Stats[0].Points != 30 {
		t.Fatalf("unexpected stats payload: %+v", body.Stats)
	}
}

func TestGameStatsRejectsBadPath(t *testing.T) {
	handler := newTestHandler(&stubClient{})

	for _, target := range []string{"/games/abc/stats", "/games/555", "/games/555/extra/stats"} {
		rec := httptest.NewRecorder()
		handler.GameStats(rec, httptest.NewRequest("GET", target, nil))
		if rec.Code != 404 {
			t.Fatalf("expected status 404 for %s, got %d", target, rec.Code)
		}
	}
}

func TestQuotaReturnsSnapshot(t *testing.T) {
	client := &stubClient{quota: domain.Quota{Remaining: 42, Limit: 60, Observed: true}}
	handler := newTestHandler(client)
	rec := httptest.NewRecorder()

	handler.Quota(rec, httptest.NewRequest("GET", "/quota", nil))

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body domain.Quota
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Remaining != 42 || body.Limit != 60 || !body.Observed {
		t.Fatalf("unexpected quota payload: %+v", body)
	}
}

// Package testutil provides shared fakes for tests: canned providers with
// call counters, a spy cache, and quiet loggers.
package testutil

import (
	"context"
	"sync"

	"sports-stats-service/internal/domain"
)

// FakeProvider is a DataProvider backed by canned data. Each method counts
// its calls so tests can assert fetch-count properties, and each can be
// forced to fail via the matching error field.
type FakeProvider struct {
	mu sync.Mutex

	Teams     []domain.Team
	Games     []domain.Game
	TeamGames []domain.Game
	Stats     []domain.PlayerGameStat

	TeamsErr     error
	GamesErr     error
	TeamGamesErr error
	StatsErr     error

	teamsCalls     int
	seasonCalls    int
	teamGamesCalls int
	statsCalls     int
}

func (f *FakeProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	f.mu.Lock()
	f.teamsCalls++
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.TeamsErr != nil {
		return nil, f.TeamsErr
	}
	return f.Teams, nil
}

func (f *FakeProvider) FetchSeasonGames(ctx context.Context, season, teamID int) ([]domain.Game, error) {
	f.mu.Lock()
	f.seasonCalls++
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.GamesErr != nil {
		return nil, f.GamesErr
	}
	return f.Games, nil
}

func (f *FakeProvider) FetchTeamGames(ctx context.Context, teamID int) ([]domain.Game, error) {
	f.mu.Lock()
	f.teamGamesCalls++
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.TeamGamesErr != nil {
		return nil, f.TeamGamesErr
	}
	return f.TeamGames, nil
}

func (f *FakeProvider) FetchGameStats(ctx context.Context, gameID int) ([]domain.PlayerGameStat, error) {
	f.mu.Lock()
	f.statsCalls++
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.StatsErr != nil {
		return nil, f.StatsErr
	}
	return f.Stats, nil
}

func (f *FakeProvider) TeamsCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.teamsCalls
}

func (f *FakeProvider) SeasonGamesCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seasonCalls
}

func (f *FakeProvider) TeamGamesCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.teamGamesCalls
}

func (f *FakeProvider) StatsCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statsCalls
}

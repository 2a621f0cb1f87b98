package providers

import (
	"context"

	"sports-stats-service/internal/domain"
)

// TeamProvider fetches the normalized team list for one sport.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]domain.Team, error)
}

// GameProvider fetches normalized game records.
// FetchSeasonGames is scoped to one team and season; FetchTeamGames returns
// the team's game history across seasons.
type GameProvider interface {
	FetchSeasonGames(ctx context.Context, season, teamID int) ([]domain.Game, error)
	FetchTeamGames(ctx context.Context, teamID int) ([]domain.Game, error)
}

// StatProvider fetches per-player lines for one game.
type StatProvider interface {
	FetchGameStats(ctx context.Context, gameID int) ([]domain.PlayerGameStat, error)
}

// DataProvider combines all provider capabilities for one sport.
type DataProvider interface {
	TeamProvider
	GameProvider
	StatProvider
}

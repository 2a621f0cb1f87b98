package balldontlie

import (
	"strings"

	"sports-stats-service/internal/domain"
	"sports-stats-service/internal/timeutil"
)

func mapTeam(t teamResponse) domain.Team {
	return domain.Team{
		ID:           t.ID,
		Name:         t.Name,
		FullName:     t.FullName,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Conference:   t.Conference,
		Division:     t.Division,
	}
}

func mapGame(g gameResponse) domain.Game {
	// Unparseable dates keep the zero time and sort last; aggregation
	// tolerates them instead of failing the whole batch.
	date, _ := timeutil.ParseGameDate(g.Date)
	return domain.Game{
		ID:           g.ID,
		Date:         date,
		Season:       g.Season,
		Status:       mapStatus(g.Status),
		HomeTeam:     mapTeam(g.HomeTeam),
		VisitorTeam:  mapTeam(g.VisitorTeam),
		HomeScore:    g.HomeTeamScore,
		VisitorScore: g.VisitorTeamScore,
	}
}

func mapStatus(status string) domain.GameStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "final", "ended":
		return domain.StatusFinal
	case "in progress", "halftime", "end of period":
		return domain.StatusInProgress
	case "postponed":
		return domain.StatusPostponed
	case "canceled", "cancelled":
		return domain.StatusCanceled
	default:
		return domain.StatusScheduled
	}
}

func mapStat(s statResponse) domain.PlayerGameStat {
	return domain.PlayerGameStat{
		PlayerID:   s.Player.ID,
		PlayerName: strings.TrimSpace(s.Player.FirstName + " " + s.Player.LastName),
		TeamID:     s.Team.ID,
		TeamName:   mapTeam(s.Team).DisplayName(),
		GameID:     s.Game.ID,
		Points:     s.Points,
		Assists:    s.Assists,
		Rebounds:   s.Rebounds,
	}
}

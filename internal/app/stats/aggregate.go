// Package stats reduces raw game records into team-season aggregates.
package stats

import (
	"log/slog"
	"sort"

	"sports-stats-service/internal/domain"
	"sports-stats-service/internal/logging"
)

// recentWindow is the number of most-recent games folded into the
// rolling-form fields.
const recentWindow = 5

// Aggregate folds a team's game records for one season into a
// TeamSeasonStats. Only final games where the team actually appears count;
// records naming the team on neither side are dropped rather than failing
// the batch. Returns nil when no qualifying games exist, so callers can
// tell "no data" apart from zero-valued stats.
func Aggregate(teamID, season int, games []domain.Game, logger *slog.Logger) *domain.TeamSeasonStats {
	final := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if !g.IsFinal() {
			continue
		}
		if !g.Involves(teamID) {
			logging.Warn(logger, "dropping game not involving team",
				logging.FieldGameID, g.ID, logging.FieldTeamID, teamID)
			continue
		}
		final = append(final, g)
	}

	if len(final) == 0 {
		return nil
	}

	// Newest first; the source offers no finer ordering than date, so the
	// stable sort preserves fetch order among same-day games.
	sort.SliceStable(final, func(i, j int) bool {
		return final[i].Date.After(final[j].Date)
	})

	agg := &domain.TeamSeasonStats{
		TeamID:      teamID,
		Season:      season,
		GamesPlayed: len(final),
		LastGameID:  final[0].ID,
		RecentForm:  make([]string, 0, recentWindow),
	}

	if team, ok := teamFromGame(final[0], teamID); ok {
		agg.TeamName = team.DisplayName()
	}

	var totalFor, totalAgainst, recentFor int
	for i, g := range final {
		scored, allowed, ok := g.Points(teamID)
		if !ok {
			continue
		}
		totalFor += scored
		totalAgainst += allowed

		if i < recentWindow {
			if scored > allowed {
				agg.RecentForm = append(agg.RecentForm, "W")
			} else {
				if scored == allowed {
					// Ties do not happen in the covered sports' final
					// games; record the observation before scoring it
					// as a loss.
					logging.Warn(logger, "tie score in final game recorded as loss",
						logging.FieldGameID, g.ID, logging.FieldTeamID, teamID)
				}
				agg.RecentForm = append(agg.RecentForm, "L")
			}
			recentFor += scored
		}
	}

	n := float64(len(final))
	agg.AvgPointsFor = float64(totalFor) / n
	agg.AvgPointsAgainst = float64(totalAgainst) / n
	agg.RecentAvgPoints = float64(recentFor) / float64(len(agg.RecentForm))

	return agg
}

func teamFromGame(g domain.Game, teamID int) (domain.Team, bool) {
	switch teamID {
	case g.HomeTeam.ID:
		return g.HomeTeam, true
	case g.VisitorTeam.ID:
		return g.VisitorTeam, true
	default:
		return domain.Team{}, false
	}
}

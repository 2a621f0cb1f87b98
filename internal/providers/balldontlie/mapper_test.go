package balldontlie

import (
	"testing"

	"sports-stats-service/internal/domain"
)

func TestMapStatus(t *testing.T) {
	cases := map[string]domain.GameStatus{
		"Final":          domain.StatusFinal,
		"final":          domain.StatusFinal,
		"Ended":          domain.StatusFinal,
		"In Progress":    domain.StatusInProgress,
		"Halftime":       domain.StatusInProgress,
		"End of Period":  domain.StatusInProgress,
		"Postponed":      domain.StatusPostponed,
		"Canceled":       domain.StatusCanceled,
		"cancelled":      domain.StatusCanceled,
		"7:30 PM ET":     domain.StatusScheduled,
		"":               domain.StatusScheduled,
		" Final ":        domain.StatusFinal,
	}

	for raw, want := range cases {
		if got := mapStatus(raw); got != want {
			t.Fatalf("mapStatus(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestMapGameKeepsZeroDateForUnparseableInput(t *testing.T) {
	g := mapGame(gameResponse{ID: 1, Date: "not-a-date", Status: "Final"})
	if !g.Date.IsZero() {
		t.Fatalf("expected zero date, got %v", g.Date)
	}
	if g.Status != domain.StatusFinal {
		t.Fatalf("expected status still mapped, got %v", g.Status)
	}
}

func TestMapStatBuildsPlayerName(t *testing.T) {
	s := mapStat(statResponse{
		Points:  20,
		Player:  playerResponse{ID: 3, FirstName: "Jaylen", LastName: "Brown"},
		Team:    teamResponse{ID: 1, Name: "Celtics", FullName: "Boston Celtics"},
		Game:    gameResponse{ID: 7},
	})
	if s.PlayerName != "Jaylen Brown" {
		t.Fatalf("unexpected player name %q", s.PlayerName)
	}
	if s.TeamName != "Boston Celtics" {
		t.Fatalf("expected full team name, got %q", s.TeamName)
	}
}

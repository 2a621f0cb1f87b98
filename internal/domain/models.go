package domain

import "time"

// GameStatus is the normalized lifecycle state of a game.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// Team is the normalized reference shape for a franchise. Conference and
// Division are sport-dependent and may be empty.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference,omitempty"`
	Division     string `json:"division,omitempty"`
}

// DisplayName prefers the full franchise name, falling back to the short one.
func (t Team) DisplayName() string {
	if t.FullName != "" {
		return t.FullName
	}
	return t.Name
}

// Game is one upstream contest record, completed or not.
type Game struct {
	ID           int        `json:"id"`
	Date         time.Time  `json:"date"`
	Season       int        `json:"season"`
	Status       GameStatus `json:"status"`
	HomeTeam     Team       `json:"homeTeam"`
	VisitorTeam  Team       `json:"visitorTeam"`
	HomeScore    int        `json:"homeScore"`
	VisitorScore int        `json:"visitorScore"`
}

// IsFinal reports whether no further play will occur.
func (g Game) IsFinal() bool {
	return g.Status == StatusFinal
}

// Involves reports whether the team appeared on either side of the game.
func (g Game) Involves(teamID int) bool {
	return g.HomeTeam.ID == teamID || g.VisitorTeam.ID == teamID
}

// Opponent returns the other side of the game for the given team.
// ok is false when the team played in neither slot.
func (g Game) Opponent(teamID int) (Team, bool) {
	switch teamID {
	case g.HomeTeam.ID:
		return g.VisitorTeam, true
	case g.VisitorTeam.ID:
		return g.HomeTeam, true
	default:
		return Team{}, false
	}
}

// Points returns the points scored and allowed from the given team's
// perspective. ok is false when the team played in neither slot.
func (g Game) Points(teamID int) (scored, allowed int, ok bool) {
	switch teamID {
	case g.HomeTeam.ID:
		return g.HomeScore, g.VisitorScore, true
	case g.VisitorTeam.ID:
		return g.VisitorScore, g.HomeScore, true
	default:
		return 0, 0, false
	}
}

// TeamSeasonStats is the derived aggregate over one team's final games in a
// season. It is recomputed on demand; a nil value means no final games exist.
type TeamSeasonStats struct {
	TeamID           int      `json:"teamId"`
	TeamName         string   `json:"teamName"`
	Season           int      `json:"season"`
	GamesPlayed      int      `json:"gamesPlayed"`
	AvgPointsFor     float64  `json:"avgPointsFor"`
	AvgPointsAgainst float64  `json:"avgPointsAgainst"`
	LastGameID       int      `json:"lastGameId"`
	RecentForm       []string `json:"recentForm"`
	RecentAvgPoints  float64  `json:"recentAvgPoints"`
}

// PlayerGameStat is one player's line for one game.
type PlayerGameStat struct {
	PlayerID   int    `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamID     int    `json:"teamId"`
	TeamName   string `json:"teamName"`
	GameID     int    `json:"gameId"`
	Points     int    `json:"points"`
	Assists    int    `json:"assists"`
	Rebounds   int    `json:"rebounds"`
}

// Quota is the most recently observed upstream rate-limit snapshot.
// Observed is false until at least one response carried the headers.
type Quota struct {
	Remaining int  `json:"remaining"`
	Limit     int  `json:"limit"`
	Observed  bool `json:"observed"`
}

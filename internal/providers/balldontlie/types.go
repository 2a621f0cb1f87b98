package balldontlie

import "encoding/json"

// envelope is the response wrapper every endpoint returns:
// {"data": [...], "meta": {"next_cursor": ..., "per_page": ...}}.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta metaResponse    `json:"meta"`
}

type metaResponse struct {
	NextCursor *int `json:"next_cursor"`
	PerPage    int  `json:"per_page"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type gameResponse struct {
	ID               int          `json:"id"`
	Date             string       `json:"date"`
	Status           string       `json:"status"`
	Season           int          `json:"season"`
	HomeTeam         teamResponse `json:"home_team"`
	VisitorTeam      teamResponse `json:"visitor_team"`
	HomeTeamScore    int          `json:"home_team_score"`
	VisitorTeamScore int          `json:"visitor_team_score"`
	Postseason       bool         `json:"postseason"`
}

type playerResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type statResponse struct {
	Points   int            `json:"pts"`
	Assists  int            `json:"ast"`
	Rebounds int            `json:"reb"`
	Player   playerResponse `json:"player"`
	Team     teamResponse   `json:"team"`
	Game     gameResponse   `json:"game"`
}

package models

import "time"

// Match is a scheduled or finished esports match, served by the matches
// microservice.
type Match struct {
	ID         string    `json:"id"`
	GameSlug   string    `json:"game_slug"`
	Tournament string    `json:"tournament"`
	TeamA      MatchTeam `json:"team_a"`
	TeamB      MatchTeam `json:"team_b"`
	Status     string    `json:"status"`
	StartsAt   time.Time `json:"starts_at"`
}

// MatchTeam is one side of a match.
type MatchTeam struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Ranking is a team's position in a game ranking, served by the matches
// microservice.
type Ranking struct {
	Position int    `json:"position"`
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	GameSlug string `json:"game_slug"`
	Points   int    `json:"points"`
}

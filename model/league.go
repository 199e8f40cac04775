package model

var PlatformSleeper = "Sleeper"

// SleeperUser is the account the dashboard is loaded for.
type SleeperUser struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type League struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Season string `json:"season"`
}

// LeagueUser is a member of a league. TeamName comes from the user's metadata
// and is frequently empty, in which case DisplayName is the next best label.
type LeagueUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	TeamName    string `json:"team_name"`
}

// Roster is one team's player pool and starting lineup in a league.
type Roster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

// Matchup is one roster's scoring line for a week. Two rosters in the same
// league share a MatchupID when they are playing each other. LeagueID is not
// part of the wire payload; the pipeline injects it so that roster ids, which
// are small integers reused by every league, can be disambiguated.
type Matchup struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     int                `json:"matchup_id"`
	Points        float64            `json:"points"`
	PlayersPoints map[string]float64 `json:"players_points,omitempty"`
	LeagueID      string             `json:"league_id"`
}

// NFLState reports where the NFL season currently stands.
type NFLState struct {
	Week       int    `json:"week"`
	Season     string `json:"season"`
	SeasonType string `json:"season_type"`
}

// TrendingPlayer is a best-effort add/drop trend entry. Name and Position are
// filled in from the player directory when the id resolves.
type TrendingPlayer struct {
	PlayerID string   `json:"player_id"`
	Count    int      `json:"count"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Team     string   `json:"team"`
}

package model

import "fmt"

// Team is the converted, view-friendly record for one roster in one league.
// Teams are rebuilt wholesale on every successful load; they are never
// incrementally mutated.
type Team struct {
	ID               string         `json:"id"` // "{leagueID}-{rosterID}", unique across leagues
	LeagueID         string         `json:"league_id"`
	LeagueName       string         `json:"league_name"`
	Name             string         `json:"name"`
	OwnerID          string         `json:"owner_id"`
	OwnerDisplayName string         `json:"owner_display_name"`
	Platform         string         `json:"platform"`
	RosterID         int            `json:"roster_id"`
	Players          []RosterPlayer `json:"players"`
	CurrentScore     float64        `json:"current_score"`
	// ProjectedScore is always 0 for the same reason RosterPlayer.Projection
	// is: no projections feed.
	ProjectedScore float64 `json:"projected_score"`
	MatchupID      int     `json:"matchup_id"` // 0 when the roster has no matchup this week
}

func TeamID(leagueID string, rosterID int) string {
	return fmt.Sprintf("%s-%d", leagueID, rosterID)
}

func (t *Team) Starters() []RosterPlayer {
	return t.filter(PlayerStatusStarting)
}

func (t *Team) Bench() []RosterPlayer {
	return t.filter(PlayerStatusBench)
}

// PositionScore is one slice of a team's weekly score attributed to a
// position group.
type PositionScore struct {
	Position Position `json:"position"`
	Points   float64  `json:"points"`
}

// ScoreCard is the per-team scoring view for a week: totals, the approximate
// position breakdown, and the resolved opponent.
type ScoreCard struct {
	TeamID          string          `json:"team_id"`
	TeamName        string          `json:"team_name"`
	LeagueName      string          `json:"league_name"`
	Week            int             `json:"week"`
	Points          float64         `json:"points"`
	ProjectedPoints float64         `json:"projected_points"`
	Opponent        string          `json:"opponent"`
	Breakdown       []PositionScore `json:"breakdown"`
}

func (t *Team) filter(status PlayerStatus) []RosterPlayer {
	var result []RosterPlayer
	for _, p := range t.Players {
		if p.Status == status {
			result = append(result, p)
		}
	}
	return result
}

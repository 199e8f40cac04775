package model

// Snapshot is the full output of one load: everything the UI layer reads.
// A snapshot is immutable once published: loads, week switches, and lineup
// actions all install a fresh snapshot rather than writing into a shared one,
// and a failed load leaves the previous snapshot in place so stale-but-valid
// data keeps rendering.
type Snapshot struct {
	User            *SleeperUser     `json:"user"`
	Teams           []Team           `json:"teams"`     // the loaded user's team in each league
	AllTeams        []Team           `json:"all_teams"` // every roster in every league, opponents included
	Matchups        []Matchup        `json:"matchups"`
	Notifications   []Notification   `json:"notifications"`
	Recommendations []Recommendation `json:"recommendations"`
	CurrentWeek     int              `json:"current_week"`
}

// DashboardSummary is the handful of headline numbers on the dashboard panel.
type DashboardSummary struct {
	ActiveTeams         int     `json:"active_teams"`
	LineupAlerts        int     `json:"lineup_alerts"`
	UnreadNotifications int     `json:"unread_notifications"`
	BestProjection      float64 `json:"best_projection"`
	CurrentWeek         int     `json:"current_week"`
}

// Team looks up a converted team by its composite id, searching the user's
// teams first and then the full league set.
func (s *Snapshot) Team(id string) *Team {
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i]
		}
	}
	for i := range s.AllTeams {
		if s.AllTeams[i].ID == id {
			return &s.AllTeams[i]
		}
	}
	return nil
}

// LeagueIDs returns the distinct league ids present in the snapshot, in the
// order the teams were converted.
func (s *Snapshot) LeagueIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, t := range s.AllTeams {
		if !seen[t.LeagueID] {
			seen[t.LeagueID] = true
			ids = append(ids, t.LeagueID)
		}
	}
	for _, t := range s.Teams {
		if !seen[t.LeagueID] {
			seen[t.LeagueID] = true
			ids = append(ids, t.LeagueID)
		}
	}
	return ids
}

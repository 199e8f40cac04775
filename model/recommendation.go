package model

import "fmt"

type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// Recommendation suggests moving Candidate from the bench into Starter's
// lineup spot because it projects higher. It is derived on every load and is
// never persisted or sent back to the platform.
type Recommendation struct {
	ID         string       `json:"id"`
	TeamID     string       `json:"team_id"`
	TeamName   string       `json:"team_name"`
	LeagueName string       `json:"league_name"`
	Platform   string       `json:"platform"`
	Starter    RosterPlayer `json:"starter"`
	Candidate  RosterPlayer `json:"candidate"`
	Gap        float64      `json:"gap"`
	Priority   Priority     `json:"priority"`
}

func RecommendationID(teamID, starterID, candidateID string) string {
	return fmt.Sprintf("%s:%s:%s", teamID, starterID, candidateID)
}

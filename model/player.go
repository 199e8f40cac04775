package model

import (
	"fmt"
	"slices"
	"time"
)

// Player is one entry in the league-wide player directory. It is reference
// data: fetched once per session and never mutated by the pipeline.
type Player struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Team         string     `json:"team"` // NFL team abbreviation, "UNK" when not listed
	Position     Position   `json:"position"`
	InjuryStatus string     `json:"injury_status,omitempty"` // empty when the player is healthy
	NewsUpdated  *time.Time `json:"news_updated,omitempty"`  // nil when there has been no news
}

func (p *Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// PlaceholderPlayer is the synthetic entry used when a roster references an id
// that is missing from the directory. Conversion must never fail on a miss.
func PlaceholderPlayer(id string) Player {
	return Player{
		ID:        id,
		FirstName: "Player",
		LastName:  id,
		Team:      "UNK",
		Position:  POS_UNKNOWN,
	}
}

type PlayerStatus string

const (
	PlayerStatusStarting PlayerStatus = "starting"
	PlayerStatusBench    PlayerStatus = "bench"
)

// RosterPlayer is a directory Player joined with its per-roster state for the
// fetched week: whether it is starting, and the points it has scored so far.
type RosterPlayer struct {
	Player
	Status PlayerStatus `json:"status"`
	// Projection is always 0. The data source does not publish projections on
	// any of the endpoints this system reads, so it is carried as an explicit
	// placeholder until a projections feed exists.
	Projection float64 `json:"projection"`
	Score      float64 `json:"score"`
}

func (p *RosterPlayer) IsStarting() bool {
	return p.Status == PlayerStatusStarting
}

// SortRosterPlayers orders players for display: known positions first in the
// standard lineup order, then everything else, keeping the roster order within
// a position group.
func SortRosterPlayers(players []RosterPlayer) {
	rank := func(p Position) int {
		for i, pos := range PositionOrder {
			if p == pos {
				return i
			}
		}
		return len(PositionOrder)
	}
	slices.SortStableFunc(players, func(a, b RosterPlayer) int {
		return rank(a.Position) - rank(b.Position)
	})
}

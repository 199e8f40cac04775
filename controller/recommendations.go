package controller

import (
	"slices"

	"github.com/joshuasellers/fantasy-football-tracker/model"
)

// recommendations scans each team's lineup for starters that a bench player
// out-projects. The first qualifying bench player wins, in roster order; this
// is a lineup-inefficiency flag, not an optimizer, and it never considers
// multi-player swaps.
func recommendations(teams []model.Team) []model.Recommendation {
	var recs []model.Recommendation
	for _, team := range teams {
		bench := team.Bench()
		for _, starter := range team.Starters() {
			for _, candidate := range bench {
				if candidate.Projection > starter.Projection {
					gap := candidate.Projection - starter.Projection
					recs = append(recs, model.Recommendation{
						ID:         model.RecommendationID(team.ID, starter.ID, candidate.ID),
						TeamID:     team.ID,
						TeamName:   team.Name,
						LeagueName: team.LeagueName,
						Platform:   team.Platform,
						Starter:    starter,
						Candidate:  candidate,
						Gap:        gap,
						Priority:   priorityForGap(gap),
					})
					break
				}
			}
		}
	}

	// Highest priority first; the stable sort keeps ties in generation order.
	slices.SortStableFunc(recs, func(a, b model.Recommendation) int {
		return int(b.Priority - a.Priority)
	})
	return recs
}

func priorityForGap(gap float64) model.Priority {
	switch {
	case gap >= 5:
		return model.PriorityHigh
	case gap >= 2:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// DismissRecommendation drops a recommendation from the current snapshot.
// This is a local UI action; nothing is written back to the platform.
// Snapshots already handed out are never touched; the update installs a
// fresh one.
func (c *controller) DismissRecommendation(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot == nil {
		return ErrNoDataLoaded
	}

	i := recommendationIndex(c.snapshot.Recommendations, id)
	if i < 0 {
		return ErrRecommendationNotFound
	}

	next := *c.snapshot
	next.Recommendations = deleteRecommendation(c.snapshot.Recommendations, i)
	c.snapshot = &next
	return nil
}

// SwapRecommendation flips the starter and candidate statuses and drops the
// recommendation. Like dismissal it never reaches the external system and it
// never mutates a published snapshot.
func (c *controller) SwapRecommendation(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot == nil {
		return ErrNoDataLoaded
	}

	i := recommendationIndex(c.snapshot.Recommendations, id)
	if i < 0 {
		return ErrRecommendationNotFound
	}
	rec := c.snapshot.Recommendations[i]

	// The same team appears in both the user's list and the all-rosters
	// list as separate copies, so flip the statuses in both.
	next := *c.snapshot
	next.Teams = swappedTeams(c.snapshot.Teams, rec)
	next.AllTeams = swappedTeams(c.snapshot.AllTeams, rec)
	next.Recommendations = deleteRecommendation(c.snapshot.Recommendations, i)
	c.snapshot = &next
	return nil
}

// swappedTeams copies the team list, giving the affected team a fresh player
// slice with the starter and candidate statuses exchanged. The input slices
// belong to a published snapshot and stay untouched.
func swappedTeams(teams []model.Team, rec model.Recommendation) []model.Team {
	next := make([]model.Team, len(teams))
	copy(next, teams)
	for i := range next {
		if next[i].ID != rec.TeamID {
			continue
		}
		players := make([]model.RosterPlayer, len(next[i].Players))
		copy(players, next[i].Players)
		for j := range players {
			switch players[j].ID {
			case rec.Starter.ID:
				players[j].Status = model.PlayerStatusBench
			case rec.Candidate.ID:
				players[j].Status = model.PlayerStatusStarting
			}
		}
		next[i].Players = players
	}
	return next
}

func deleteRecommendation(recs []model.Recommendation, i int) []model.Recommendation {
	next := make([]model.Recommendation, 0, len(recs)-1)
	next = append(next, recs[:i]...)
	return append(next, recs[i+1:]...)
}

func recommendationIndex(recs []model.Recommendation, id string) int {
	for i := range recs {
		if recs[i].ID == id {
			return i
		}
	}
	return -1
}

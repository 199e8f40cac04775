package controller

import (
	"github.com/joshuasellers/fantasy-football-tracker/model"
)

// positionScores splits a matchup total into a per-position breakdown using
// fixed fractions. The source data has no real per-position scoring, so this
// is a declared approximation and the weights are part of the contract.
func positionScores(points float64) []model.PositionScore {
	return []model.PositionScore{
		{Position: model.POS_QB, Points: points * 0.25},
		{Position: model.POS_RB, Points: points * 0.30},
		{Position: model.POS_WR, Points: points * 0.25},
		{Position: model.POS_TE, Points: points * 0.10},
		{Position: model.POS_K, Points: points * 0.05},
		{Position: model.POS_DEF, Points: points * 0.05},
	}
}

// projectedScore is total points scaled by a flat factor, another declared
// approximation standing in for a real projections feed.
func projectedScore(points float64) float64 {
	return points * 1.2
}

// opponentName resolves the display name of the team on the other side of a
// matchup. Matchup ids only pair rosters within one league, so the search is
// scoped by league id. "TBD" is the sentinel for byes, incomplete data, or an
// untagged matchup.
func opponentName(m model.Matchup, matchups []model.Matchup, teams []model.Team) string {
	if m.LeagueID == "" {
		return "TBD"
	}

	var opponent *model.Matchup
	for i := range matchups {
		if matchups[i].MatchupID == m.MatchupID &&
			matchups[i].RosterID != m.RosterID &&
			matchups[i].LeagueID == m.LeagueID {
			opponent = &matchups[i]
			break
		}
	}
	if opponent == nil {
		return "TBD"
	}

	for i := range teams {
		if teams[i].RosterID == opponent.RosterID && teams[i].LeagueID == m.LeagueID {
			return teams[i].Name
		}
	}
	return "TBD"
}

// Scoring builds the per-team score cards for the user's teams from the
// current snapshot.
func (c *controller) Scoring() []model.ScoreCard {
	c.mu.Lock()
	snap := c.snapshot
	c.mu.Unlock()
	if snap == nil {
		return nil
	}

	cards := make([]model.ScoreCard, 0, len(snap.Teams))
	for _, team := range snap.Teams {
		matchup := findMatchup(snap.Matchups, team.LeagueID, team.RosterID)
		card := model.ScoreCard{
			TeamID:     team.ID,
			TeamName:   team.Name,
			LeagueName: team.LeagueName,
			Week:       snap.CurrentWeek,
			Opponent:   "TBD",
		}
		if matchup != nil {
			card.Points = matchup.Points
			card.ProjectedPoints = projectedScore(matchup.Points)
			card.Breakdown = positionScores(matchup.Points)
			card.Opponent = opponentName(*matchup, snap.Matchups, snap.AllTeams)
		} else {
			card.Breakdown = positionScores(0)
		}
		cards = append(cards, card)
	}
	return cards
}

package controller

import (
	"fmt"

	"github.com/joshuasellers/fantasy-football-tracker/model"
)

// convertRoster builds the Team belonging to ownerID, or nil when that owner
// has no roster in the league.
func convertRoster(league *model.League, rosters []model.Roster, users []model.LeagueUser, matchups []model.Matchup, players map[string]model.Player, ownerID string) *model.Team {
	for i := range rosters {
		if rosters[i].OwnerID == ownerID {
			return buildTeam(league, &rosters[i], users, matchups, players)
		}
	}
	return nil
}

// convertAllRosters builds a Team for every roster in the league, opponents
// included. Rosters whose owner cannot be matched to a league user are
// skipped rather than failing the league.
func convertAllRosters(league *model.League, rosters []model.Roster, users []model.LeagueUser, matchups []model.Matchup, players map[string]model.Player) []model.Team {
	teams := make([]model.Team, 0, len(rosters))
	for i := range rosters {
		if team := buildTeam(league, &rosters[i], users, matchups, players); team != nil {
			teams = append(teams, *team)
		}
	}
	return teams
}

func buildTeam(league *model.League, roster *model.Roster, users []model.LeagueUser, matchups []model.Matchup, players map[string]model.Player) *model.Team {
	user := findLeagueUser(users, roster.OwnerID)
	if user == nil {
		return nil
	}

	matchup := findMatchup(matchups, league.ID, roster.RosterID)

	starters := make(map[string]bool, len(roster.Starters))
	for _, id := range roster.Starters {
		starters[id] = true
	}

	converted := make([]model.RosterPlayer, 0, len(roster.Players))
	for _, id := range roster.Players {
		p, found := players[id]
		if !found {
			// A missing directory entry must never fail the conversion.
			p = model.PlaceholderPlayer(id)
		}

		rp := model.RosterPlayer{
			Player: p,
			Status: model.PlayerStatusBench,
		}
		if starters[id] {
			rp.Status = model.PlayerStatusStarting
		}
		if matchup != nil {
			rp.Score = matchup.PlayersPoints[id]
		}
		converted = append(converted, rp)
	}

	team := &model.Team{
		ID:               model.TeamID(league.ID, roster.RosterID),
		LeagueID:         league.ID,
		LeagueName:       league.Name,
		Name:             teamName(user, roster.RosterID),
		OwnerID:          roster.OwnerID,
		OwnerDisplayName: user.DisplayName,
		Platform:         model.PlatformSleeper,
		RosterID:         roster.RosterID,
		Players:          converted,
	}
	if matchup != nil {
		team.CurrentScore = matchup.Points
		team.MatchupID = matchup.MatchupID
	}
	return team
}

// teamName prefers the user's configured team nickname, then their display
// name, then a synthesized label.
func teamName(user *model.LeagueUser, rosterID int) string {
	if user.TeamName != "" {
		return user.TeamName
	}
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return fmt.Sprintf("Team %d", rosterID)
}

func findLeagueUser(users []model.LeagueUser, userID string) *model.LeagueUser {
	if userID == "" {
		return nil
	}
	for i := range users {
		if users[i].UserID == userID {
			return &users[i]
		}
	}
	return nil
}

// findMatchup matches by roster id and, when the matchup has been tagged with
// a league, by league id as well. Roster ids are reused across leagues so the
// tag is what keeps lookups from crossing leagues.
func findMatchup(matchups []model.Matchup, leagueID string, rosterID int) *model.Matchup {
	for i := range matchups {
		if matchups[i].RosterID != rosterID {
			continue
		}
		if matchups[i].LeagueID != "" && matchups[i].LeagueID != leagueID {
			continue
		}
		return &matchups[i]
	}
	return nil
}

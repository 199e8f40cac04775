package sleeper

import (
	"time"

	"github.com/joshuasellers/fantasy-football-tracker/model"
)

// Wire shapes for the Sleeper API. These stay internal to this package; the
// client converts them into model types before returning.

type sleeperUser struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

func (u *sleeperUser) toUser() *model.SleeperUser {
	return &model.SleeperUser{
		UserID:      u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
}

type sleeperLeague struct {
	LeagueID string `json:"league_id"`
	Name     string `json:"name"`
	Season   string `json:"season"`
}

func (l *sleeperLeague) toLeague() *model.League {
	return &model.League{
		ID:     l.LeagueID,
		Name:   l.Name,
		Season: l.Season,
	}
}

type sleeperLeagueUser struct {
	UserID      string              `json:"user_id"`
	DisplayName string              `json:"display_name"`
	Metadata    *leagueUserMetadata `json:"metadata"`
}

type leagueUserMetadata struct {
	TeamName string `json:"team_name"`
}

func (u *sleeperLeagueUser) toLeagueUser() model.LeagueUser {
	lu := model.LeagueUser{
		UserID:      u.UserID,
		DisplayName: u.DisplayName,
	}
	if u.Metadata != nil {
		lu.TeamName = u.Metadata.TeamName
	}
	return lu
}

type sleeperRoster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

func (r *sleeperRoster) toRoster() model.Roster {
	return model.Roster{
		RosterID: r.RosterID,
		OwnerID:  r.OwnerID,
		Players:  r.Players,
		Starters: r.Starters,
	}
}

type sleeperMatchup struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     int                `json:"matchup_id"`
	Points        float64            `json:"points"`
	PlayersPoints map[string]float64 `json:"players_points"`
}

func (m *sleeperMatchup) toMatchup() model.Matchup {
	return model.Matchup{
		RosterID:      m.RosterID,
		MatchupID:     m.MatchupID,
		Points:        m.Points,
		PlayersPoints: m.PlayersPoints,
	}
}

type sleeperTransaction struct {
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	Created       int64  `json:"created"` // milliseconds since epoch
}

func (t *sleeperTransaction) toTransaction() model.Transaction {
	tx := model.Transaction{
		ID:     t.TransactionID,
		Type:   model.ParseTransactionType(t.Type),
		Status: model.ParseTransactionStatus(t.Status),
	}
	if t.Created != 0 {
		tx.Created = time.UnixMilli(t.Created).UTC()
	}
	return tx
}

type sleeperNFLState struct {
	Week       int    `json:"week"`
	Season     string `json:"season"`
	SeasonType string `json:"season_type"`
}

func (s *sleeperNFLState) toState() *model.NFLState {
	return &model.NFLState{
		Week:       s.Week,
		Season:     s.Season,
		SeasonType: s.SeasonType,
	}
}

type sleeperPlayer struct {
	ID           string `json:"player_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Team         string `json:"team"`
	Position     string `json:"position"`
	InjuryStatus string `json:"injury_status"`
	NewsUpdated  *int64 `json:"news_updated"` // milliseconds since epoch
}

func (p *sleeperPlayer) toPlayer(id string) model.Player {
	if p.ID == "" {
		p.ID = id
	}

	team := p.Team
	if team == "" {
		team = "UNK"
	}

	player := model.Player{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Team:         team,
		Position:     model.ParsePosition(p.Position),
		InjuryStatus: p.InjuryStatus,
	}
	if p.NewsUpdated != nil {
		t := time.UnixMilli(*p.NewsUpdated).UTC()
		player.NewsUpdated = &t
	}
	return player
}

type trendingPlayer struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

func (t *trendingPlayer) toTrendingPlayer() model.TrendingPlayer {
	return model.TrendingPlayer{
		PlayerID: t.PlayerID,
		Count:    t.Count,
	}
}

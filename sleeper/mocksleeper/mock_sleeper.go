package mocksleeper

import (
	"context"

	"github.com/joshuasellers/fantasy-football-tracker/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetUser(ctx context.Context, username string) (*model.SleeperUser, error) {
	args := c.Called(ctx, username)

	var res *model.SleeperUser
	if args.Get(0) != nil {
		res = args.Get(0).(*model.SleeperUser)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeaguesForUser(ctx context.Context, userID, season string) ([]model.League, error) {
	args := c.Called(ctx, userID, season)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	args := c.Called(ctx, leagueID)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}

func (c *Client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Roster)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeagueUsers(ctx context.Context, leagueID string) ([]model.LeagueUser, error) {
	args := c.Called(ctx, leagueID)

	var res []model.LeagueUser
	if args.Get(0) != nil {
		res = args.Get(0).([]model.LeagueUser)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	args := c.Called(ctx, leagueID, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}

func (c *Client) GetTransactions(ctx context.Context, leagueID string, week int) ([]model.Transaction, error) {
	args := c.Called(ctx, leagueID, week)

	var res []model.Transaction
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Transaction)
	}

	return res, args.Error(1)
}

func (c *Client) LoadPlayers(ctx context.Context) (map[string]model.Player, error) {
	args := c.Called(ctx)

	var res map[string]model.Player
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]model.Player)
	}

	return res, args.Error(1)
}

func (c *Client) GetNFLState(ctx context.Context) (*model.NFLState, error) {
	args := c.Called(ctx)

	var res *model.NFLState
	if args.Get(0) != nil {
		res = args.Get(0).(*model.NFLState)
	}

	return res, args.Error(1)
}

func (c *Client) GetTrendingPlayers(ctx context.Context, trendType string, lookbackHours, limit int) ([]model.TrendingPlayer, error) {
	args := c.Called(ctx, trendType, lookbackHours, limit)

	var res []model.TrendingPlayer
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TrendingPlayer)
	}

	return res, args.Error(1)
}

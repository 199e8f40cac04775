package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/joshuasellers/fantasy-football-tracker/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) LoadUserData(ctx context.Context, username string) (*model.Snapshot, error) {
	args := c.Called(ctx, username)

	var res *model.Snapshot
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Snapshot)
	}

	return res, args.Error(1)
}

func (c *C) LoadWeek(ctx context.Context, week int, force bool) ([]model.Matchup, error) {
	args := c.Called(ctx, week, force)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}

func (c *C) Snapshot() *model.Snapshot {
	args := c.Called()

	var res *model.Snapshot
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Snapshot)
	}

	return res
}

func (c *C) Loading() bool {
	args := c.Called()
	return args.Bool(0)
}

func (c *C) LastError() string {
	args := c.Called()
	return args.String(0)
}

func (c *C) Dashboard() model.DashboardSummary {
	args := c.Called()
	return args.Get(0).(model.DashboardSummary)
}

func (c *C) Scoring() []model.ScoreCard {
	args := c.Called()

	var res []model.ScoreCard
	if args.Get(0) != nil {
		res = args.Get(0).([]model.ScoreCard)
	}

	return res
}

func (c *C) TrendingPlayers(ctx context.Context, trendType string) ([]model.TrendingPlayer, error) {
	args := c.Called(ctx, trendType)

	var res []model.TrendingPlayer
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TrendingPlayer)
	}

	return res, args.Error(1)
}

func (c *C) DismissRecommendation(id string) error {
	args := c.Called(id)
	return args.Error(0)
}

func (c *C) SwapRecommendation(id string) error {
	args := c.Called(id)
	return args.Error(0)
}

func (c *C) Reset() {
	c.Called()
}

func (c *C) RunPeriodicDirectoryUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

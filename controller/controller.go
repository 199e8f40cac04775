package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joshuasellers/fantasy-football-tracker/model"
	"github.com/joshuasellers/fantasy-football-tracker/sleeper"
)

// DefaultNotificationLimit caps how many notifications a load produces.
const DefaultNotificationLimit = 50

var (
	ErrNoDataLoaded           = errors.New("no data loaded")
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// C encapsulates the data pipeline without worrying about any web layers.
// A load rebuilds the whole snapshot from the Sleeper API; between loads the
// controller only serves what it already has in memory.
type C interface {
	// LoadUserData runs the full pipeline for a username: user -> leagues ->
	// per-league data, converted into the snapshot the UI reads. A failure on
	// the top-level resources aborts the load and keeps the previous snapshot.
	LoadUserData(ctx context.Context, username string) (*model.Snapshot, error)
	// LoadWeek returns the matchups for a week, fetching them only if the
	// week has not been seen before. force evicts the cached week first.
	LoadWeek(ctx context.Context, week int, force bool) ([]model.Matchup, error)

	Snapshot() *model.Snapshot
	Loading() bool
	LastError() string
	Dashboard() model.DashboardSummary
	Scoring() []model.ScoreCard

	TrendingPlayers(ctx context.Context, trendType string) ([]model.TrendingPlayer, error)

	DismissRecommendation(id string) error
	SwapRecommendation(id string) error

	// Reset clears all session state: snapshot, caches, and the player
	// directory.
	Reset()
	RunPeriodicDirectoryUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock             clock.Clock
	sleeper           sleeper.Client
	notificationLimit int

	// Session state. The pipeline itself is a pure function of its inputs;
	// everything that survives between loads lives here, guarded by mu. The
	// snapshot pointer is replaced, never mutated, so handing it out to
	// readers is safe without further locking.
	mu        sync.Mutex
	players   map[string]model.Player
	weekCache map[int][]model.Matchup
	snapshot  *model.Snapshot
	loading   bool
	lastErr   string
}

func New(clock clock.Clock, sleeper sleeper.Client, notificationLimit int) (C, error) {
	if notificationLimit <= 0 {
		notificationLimit = DefaultNotificationLimit
	}
	c := &controller{
		clock:             clock,
		sleeper:           sleeper,
		notificationLimit: notificationLimit,
		weekCache:         make(map[int][]model.Matchup),
	}
	return c, nil
}

func (c *controller) Snapshot() *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

func (c *controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.players = nil
	c.weekCache = make(map[int][]model.Matchup)
	c.snapshot = nil
	c.lastErr = ""
}

func (c *controller) setLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

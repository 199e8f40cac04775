package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/joshuasellers/fantasy-football-tracker/model"
)

// leagueData bundles the five per-league resources that are fetched together.
type leagueData struct {
	league       *model.League
	rosters      []model.Roster
	users        []model.LeagueUser
	matchups     []model.Matchup
	transactions []model.Transaction
}

func (c *controller) LoadUserData(ctx context.Context, username string) (*model.Snapshot, error) {
	if username == "" {
		return nil, errors.New("username must be provided")
	}

	c.setLoading(true)
	defer c.setLoading(false)

	user, err := c.sleeper.GetUser(ctx, username)
	if err != nil {
		return nil, c.failLoad(fmt.Errorf("error looking up user %s: %w", username, err))
	}

	season := strconv.Itoa(c.clock.Now().Year())
	leagues, err := c.sleeper.GetLeaguesForUser(ctx, user.UserID, season)
	if err != nil {
		return nil, c.failLoad(fmt.Errorf("error loading leagues for user %s: %w", user.UserID, err))
	}

	state, err := c.sleeper.GetNFLState(ctx)
	if err != nil {
		return nil, c.failLoad(fmt.Errorf("error loading nfl state: %w", err))
	}

	players, err := c.playerDirectory(ctx)
	if err != nil {
		return nil, c.failLoad(fmt.Errorf("error loading player directory: %w", err))
	}

	snap := &model.Snapshot{
		User:        user,
		CurrentWeek: state.Week,
	}

	var allTransactions []model.Transaction
	for _, league := range leagues {
		ld, err := c.fetchLeagueData(ctx, league.ID, state.Week)
		if err != nil {
			// One bad league must not take down the rest of the load.
			log.Printf("error processing league %s: %v", league.ID, err)
			continue
		}

		for i := range ld.matchups {
			ld.matchups[i].LeagueID = ld.league.ID
		}
		for i := range ld.transactions {
			ld.transactions[i].LeagueID = ld.league.ID
			ld.transactions[i].LeagueName = ld.league.Name
		}

		if team := convertRoster(ld.league, ld.rosters, ld.users, ld.matchups, players, user.UserID); team != nil {
			snap.Teams = append(snap.Teams, *team)
		}
		snap.AllTeams = append(snap.AllTeams, convertAllRosters(ld.league, ld.rosters, ld.users, ld.matchups, players)...)
		snap.Matchups = append(snap.Matchups, ld.matchups...)
		allTransactions = append(allTransactions, ld.transactions...)
	}

	snap.Notifications = notificationsFromTransactions(allTransactions, c.notificationLimit, c.clock.Now())
	snap.Recommendations = recommendations(snap.Teams)

	c.mu.Lock()
	c.snapshot = snap
	c.weekCache = map[int][]model.Matchup{state.Week: snap.Matchups}
	c.lastErr = ""
	c.mu.Unlock()

	return snap, nil
}

// fetchLeagueData fans out the five requests for one league concurrently and
// joins them once they all resolve.
func (c *controller) fetchLeagueData(ctx context.Context, leagueID string, week int) (*leagueData, error) {
	var ld leagueData
	var errs [5]error

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		ld.league, errs[0] = c.sleeper.GetLeague(ctx, leagueID)
	}()
	go func() {
		defer wg.Done()
		ld.rosters, errs[1] = c.sleeper.GetRosters(ctx, leagueID)
	}()
	go func() {
		defer wg.Done()
		ld.users, errs[2] = c.sleeper.GetLeagueUsers(ctx, leagueID)
	}()
	go func() {
		defer wg.Done()
		ld.matchups, errs[3] = c.sleeper.GetMatchups(ctx, leagueID, week)
	}()
	go func() {
		defer wg.Done()
		ld.transactions, errs[4] = c.sleeper.GetTransactions(ctx, leagueID, 0)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &ld, nil
}

func (c *controller) LoadWeek(ctx context.Context, week int, force bool) ([]model.Matchup, error) {
	if week < 1 || week > 18 {
		return nil, fmt.Errorf("week must be between 1 and 18, got: %d", week)
	}

	c.mu.Lock()
	snap := c.snapshot
	if snap == nil {
		c.mu.Unlock()
		return nil, ErrNoDataLoaded
	}
	if force {
		delete(c.weekCache, week)
	} else if cached, found := c.weekCache[week]; found {
		c.snapshot = withMatchups(snap, cached)
		c.mu.Unlock()
		return cached, nil
	}
	leagueIDs := snap.LeagueIDs()
	c.mu.Unlock()

	c.setLoading(true)
	defer c.setLoading(false)

	weekMatchups := make([]model.Matchup, 0)
	for _, leagueID := range leagueIDs {
		matchups, err := c.sleeper.GetMatchups(ctx, leagueID, week)
		if err != nil {
			log.Printf("error fetching week %d matchups for league %s: %v", week, leagueID, err)
			continue
		}
		for i := range matchups {
			matchups[i].LeagueID = leagueID
		}
		weekMatchups = append(weekMatchups, matchups...)
	}

	c.mu.Lock()
	c.weekCache[week] = weekMatchups
	if c.snapshot != nil {
		c.snapshot = withMatchups(c.snapshot, weekMatchups)
	}
	c.mu.Unlock()

	return weekMatchups, nil
}

// withMatchups copies a snapshot with a different matchup list. Snapshots are
// immutable once published; every update installs a fresh copy so readers
// holding an older one never see it change underneath them.
func withMatchups(snap *model.Snapshot, matchups []model.Matchup) *model.Snapshot {
	next := *snap
	next.Matchups = matchups
	return &next
}

// playerDirectory returns the session's player directory, fetching it on the
// first call. A failed fetch leaves the cache unpopulated so a later load can
// retry.
func (c *controller) playerDirectory(ctx context.Context) (map[string]model.Player, error) {
	c.mu.Lock()
	players := c.players
	c.mu.Unlock()
	if players != nil {
		return players, nil
	}

	players, err := c.sleeper.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.players = players
	c.mu.Unlock()
	return players, nil
}

func (c *controller) TrendingPlayers(ctx context.Context, trendType string) ([]model.TrendingPlayer, error) {
	trending, err := c.sleeper.GetTrendingPlayers(ctx, trendType, 24, 25)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	players := c.players
	c.mu.Unlock()

	for i, t := range trending {
		if p, found := players[t.PlayerID]; found {
			trending[i].Name = p.FullName()
			trending[i].Position = p.Position
			trending[i].Team = p.Team
		}
	}
	return trending, nil
}

func (c *controller) Dashboard() model.DashboardSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	var summary model.DashboardSummary
	if c.snapshot == nil {
		return summary
	}

	summary.ActiveTeams = len(c.snapshot.Teams)
	summary.LineupAlerts = len(c.snapshot.Recommendations)
	summary.CurrentWeek = c.snapshot.CurrentWeek
	for _, n := range c.snapshot.Notifications {
		if !n.Read {
			summary.UnreadNotifications++
		}
	}
	for _, t := range c.snapshot.Teams {
		for _, p := range t.Players {
			if p.Projection > summary.BestProjection {
				summary.BestProjection = p.Projection
			}
		}
	}
	return summary
}

// RunPeriodicDirectoryUpdates refreshes the player directory on a fixed
// schedule so long-running sessions pick up injury news and team changes.
func (c *controller) RunPeriodicDirectoryUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			players, err := c.sleeper.LoadPlayers(ctx)
			cancel()
			if err != nil {
				log.Printf("error refreshing player directory: %v", err)
				continue
			}

			c.mu.Lock()
			c.players = players
			c.mu.Unlock()
			log.Printf("player directory refreshed, %d players", len(players))
		}
	}
}

func (c *controller) failLoad(err error) error {
	// Keep the previous snapshot so the UI can keep rendering stale data.
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
	return err
}

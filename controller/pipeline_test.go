package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joshuasellers/fantasy-football-tracker/model"
	"github.com/joshuasellers/fantasy-football-tracker/sleeper"
	"github.com/joshuasellers/fantasy-football-tracker/testutils"
)

// newTestController wires a controller to the fake sleeper server with the
// clock pinned inside the 2024 season, which is the season the fixture data
// describes.
func newTestController(t *testing.T) (C, *testutils.FakeSleeperServer) {
	t.Helper()

	fakeSleeper := testutils.NewFakeSleeperServer()
	t.Cleanup(fakeSleeper.Close)

	mock := clock.NewMock()
	mock.Set(time.Date(2024, 9, 5, 12, 0, 0, 0, time.UTC))

	ctrl, err := New(mock, sleeper.NewForTest(fakeSleeper.URL()), 0)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}
	return ctrl, fakeSleeper
}

func TestLoadUserData(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	snap, err := ctrl.LoadUserData(ctx, "sleeperuser")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	if snap.User == nil || snap.User.UserID != "12345678" {
		t.Fatalf("unexpected user: %+v", snap.User)
	}
	if snap.CurrentWeek != 1 {
		t.Errorf("expected current week 1, got %d", snap.CurrentWeek)
	}

	// The user owns a roster in both leagues.
	if len(snap.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(snap.Teams))
	}

	team := snap.Teams[0]
	if team.ID != "924039165950484480-1" {
		t.Errorf("unexpected team id: %s", team.ID)
	}
	if team.Name != "No-Bell Prizes" {
		t.Errorf("expected team name 'No-Bell Prizes', got %s", team.Name)
	}
	if team.CurrentScore != 87.5 || team.MatchupID != 7 {
		t.Errorf("unexpected matchup data: score=%f matchupID=%d", team.CurrentScore, team.MatchupID)
	}
	if len(team.Players) != 7 {
		t.Fatalf("expected 7 players, got %d", len(team.Players))
	}

	starters := 0
	for _, p := range team.Players {
		if p.IsStarting() {
			starters++
		}
		switch p.ID {
		case "2374":
			if p.FirstName != "Tyler" || p.Score != 16.8 {
				t.Errorf("unexpected player 2374: %+v", p)
			}
		case "9999":
			// Not in the player directory, so it shows up as a placeholder.
			if p.FirstName != "Player" || p.LastName != "9999" || p.Team != "UNK" {
				t.Errorf("expected placeholder for 9999, got %+v", p)
			}
		}
	}
	if starters != 5 {
		t.Errorf("expected 5 starters, got %d", starters)
	}

	// The second league has no team_name metadata so the display name is used,
	// and no matchups so the score stays zero.
	second := snap.Teams[1]
	if second.Name != "sleeperuser" {
		t.Errorf("expected team name 'sleeperuser', got %s", second.Name)
	}
	if second.CurrentScore != 0 || second.MatchupID != 0 {
		t.Errorf("unexpected second team matchup data: %+v", second)
	}

	// All rosters across both leagues, minus the one with no owner.
	if len(snap.AllTeams) != 3 {
		t.Fatalf("expected 3 teams in AllTeams, got %d", len(snap.AllTeams))
	}
	if snap.AllTeams[1].Name != "Puk Nukem" {
		t.Errorf("expected opponent team 'Puk Nukem', got %s", snap.AllTeams[1].Name)
	}

	// Matchups carry the league id they came from.
	if len(snap.Matchups) != 2 {
		t.Fatalf("expected 2 matchups, got %d", len(snap.Matchups))
	}
	for _, m := range snap.Matchups {
		if m.LeagueID != "924039165950484480" {
			t.Errorf("expected league tag on matchup, got %q", m.LeagueID)
		}
	}

	// The failed transaction is filtered and the rest sort newest first with
	// the undated one last.
	expectedOrder := []string{"waiver-1", "trade-1", "fa-1", "commish-1"}
	if len(snap.Notifications) != len(expectedOrder) {
		t.Fatalf("expected %d notifications, got %d", len(expectedOrder), len(snap.Notifications))
	}
	for i, id := range expectedOrder {
		if snap.Notifications[i].ID != id {
			t.Errorf("position %d - expected %s, got %s", i, id, snap.Notifications[i].ID)
		}
	}
	if snap.Notifications[0].Message != "Waiver Claim in Footclan & Friends Dynasty" {
		t.Errorf("unexpected message: %s", snap.Notifications[0].Message)
	}

	// Projections are all zero, so no lineup changes get recommended.
	if len(snap.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %d", len(snap.Recommendations))
	}

	if ctrl.Snapshot() != snap {
		t.Errorf("expected the snapshot to be stored on the controller")
	}
	if ctrl.LastError() != "" {
		t.Errorf("expected no last error, got %s", ctrl.LastError())
	}
}

func TestLoadUserData_unknownUser(t *testing.T) {
	ctrl, _ := newTestController(t)

	_, err := ctrl.LoadUserData(context.Background(), "badusername")
	if !errors.Is(err, sleeper.ErrNotFound) {
		t.Fatalf("expected a not found error, got: %v", err)
	}
	if ctrl.LastError() == "" {
		t.Errorf("expected the error to be recorded")
	}
	if ctrl.Snapshot() != nil {
		t.Errorf("expected no snapshot")
	}
}

func TestLoadUserData_emptyUsername(t *testing.T) {
	ctrl, _ := newTestController(t)

	if _, err := ctrl.LoadUserData(context.Background(), ""); err == nil {
		t.Fatalf("error should not have been nil")
	}
}

func TestLoadUserData_brokenLeagueIsSkipped(t *testing.T) {
	ctrl, _ := newTestController(t)

	// brokenuser belongs to a league whose endpoints all fail and to one
	// healthy league. The bad league is dropped, not the whole load.
	snap, err := ctrl.LoadUserData(context.Background(), "brokenuser")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	if len(snap.AllTeams) != 2 {
		t.Errorf("expected 2 teams from the healthy league, got %d", len(snap.AllTeams))
	}
	for _, team := range snap.AllTeams {
		if team.LeagueID == testutils.BrokenLeagueID {
			t.Errorf("the broken league should not have produced teams")
		}
	}
}

func TestLoadUserData_failurePreservesSnapshot(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	snap, err := ctrl.LoadUserData(ctx, "sleeperuser")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	if _, err := ctrl.LoadUserData(ctx, "badusername"); err == nil {
		t.Fatalf("error should not have been nil")
	}

	if ctrl.Snapshot() != snap {
		t.Errorf("a failed load should keep the previous snapshot")
	}
	if ctrl.LastError() == "" {
		t.Errorf("expected the error to be recorded")
	}
}

func TestLoadWeek_caching(t *testing.T) {
	ctrl, fakeSleeper := newTestController(t)
	ctx := context.Background()

	if _, err := ctrl.LoadUserData(ctx, "sleeperuser"); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	week1Path := "/v1/league/924039165950484480/matchups/1"
	week2Path := "/v1/league/924039165950484480/matchups/2"

	// The initial load already fetched and cached the current week.
	if n := fakeSleeper.RequestCount(week1Path); n != 1 {
		t.Fatalf("expected 1 week-1 request after load, got %d", n)
	}
	if _, err := ctrl.LoadWeek(ctx, 1, false); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if n := fakeSleeper.RequestCount(week1Path); n != 1 {
		t.Errorf("expected the cached week to be served without a fetch, got %d requests", n)
	}

	// A new week fetches once and then serves from the cache.
	if _, err := ctrl.LoadWeek(ctx, 2, false); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if _, err := ctrl.LoadWeek(ctx, 2, false); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if n := fakeSleeper.RequestCount(week2Path); n != 1 {
		t.Errorf("expected 1 week-2 request, got %d", n)
	}

	// force evicts the cached week and fetches again.
	if _, err := ctrl.LoadWeek(ctx, 2, true); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if n := fakeSleeper.RequestCount(week2Path); n != 2 {
		t.Errorf("expected 2 week-2 requests after a forced refresh, got %d", n)
	}
}

func TestLoadWeek_doesNotMutatePublishedSnapshot(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	before, err := ctrl.LoadUserData(ctx, "sleeperuser")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(before.Matchups) != 2 {
		t.Fatalf("expected 2 matchups after load, got %d", len(before.Matchups))
	}

	// Switching weeks installs a fresh snapshot; a reader holding the old one
	// keeps seeing the week it loaded.
	if _, err := ctrl.LoadWeek(ctx, 2, false); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	if len(before.Matchups) != 2 {
		t.Errorf("the old snapshot's matchups were mutated, got %d", len(before.Matchups))
	}
	after := ctrl.Snapshot()
	if after == before {
		t.Fatalf("expected a fresh snapshot to be installed")
	}
	if len(after.Matchups) != 0 {
		t.Errorf("expected no week-2 matchups on the new snapshot, got %d", len(after.Matchups))
	}
}

func TestLoadWeek_validation(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	if _, err := ctrl.LoadWeek(ctx, 1, false); !errors.Is(err, ErrNoDataLoaded) {
		t.Errorf("expected ErrNoDataLoaded, got %v", err)
	}

	if _, err := ctrl.LoadUserData(ctx, "sleeperuser"); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	for _, week := range []int{0, -1, 19} {
		if _, err := ctrl.LoadWeek(ctx, week, false); err == nil {
			t.Errorf("expected an error for week %d", week)
		}
	}
}

func TestDashboard(t *testing.T) {
	ctrl, _ := newTestController(t)

	// Before any load the summary is all zeros.
	if summary := ctrl.Dashboard(); summary != (model.DashboardSummary{}) {
		t.Errorf("expected an empty summary, got %+v", summary)
	}

	if _, err := ctrl.LoadUserData(context.Background(), "sleeperuser"); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	summary := ctrl.Dashboard()
	if summary.ActiveTeams != 2 {
		t.Errorf("expected 2 active teams, got %d", summary.ActiveTeams)
	}
	if summary.UnreadNotifications != 4 {
		t.Errorf("expected 4 unread notifications, got %d", summary.UnreadNotifications)
	}
	if summary.CurrentWeek != 1 {
		t.Errorf("expected current week 1, got %d", summary.CurrentWeek)
	}
	if summary.LineupAlerts != 0 {
		t.Errorf("expected no lineup alerts, got %d", summary.LineupAlerts)
	}
}

func TestTrendingPlayers(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	if _, err := ctrl.LoadUserData(ctx, "sleeperuser"); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	trending, err := ctrl.TrendingPlayers(ctx, "add")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(trending) != 2 {
		t.Fatalf("expected 2 trending players, got %d", len(trending))
	}

	// Known ids resolve against the player directory, unknown ones stay bare.
	if trending[0].Name != "Tyler Lockett" || trending[0].Position != model.POS_WR || trending[0].Team != "SEA" {
		t.Errorf("unexpected trending entry: %+v", trending[0])
	}
	if trending[1].PlayerID != "9999" || trending[1].Name != "" {
		t.Errorf("unexpected trending entry: %+v", trending[1])
	}
}

func TestReset(t *testing.T) {
	ctrl, _ := newTestController(t)

	if _, err := ctrl.LoadUserData(context.Background(), "sleeperuser"); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if ctrl.Snapshot() == nil {
		t.Fatalf("expected a snapshot after load")
	}

	ctrl.Reset()
	if ctrl.Snapshot() != nil {
		t.Errorf("expected no snapshot after reset")
	}
	if ctrl.LastError() != "" {
		t.Errorf("expected no error after reset")
	}
}

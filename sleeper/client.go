package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/joshuasellers/fantasy-football-tracker/model"
)

const SleeperURL = "https://api.sleeper.app"

// Client covers the read-only slice of the Sleeper API this system consumes.
// There are no write endpoints; every load rebuilds the model from GETs.
type Client interface {
	GetUser(ctx context.Context, username string) (*model.SleeperUser, error)
	GetLeaguesForUser(ctx context.Context, userID, season string) ([]model.League, error)
	GetLeague(ctx context.Context, leagueID string) (*model.League, error)
	GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]model.LeagueUser, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error)
	// GetTransactions lists a league's transactions. A week <= 0 requests the
	// unscoped listing.
	GetTransactions(ctx context.Context, leagueID string, week int) ([]model.Transaction, error)
	// LoadPlayers fetches the full player directory. The response is large;
	// callers are expected to cache it for the session.
	LoadPlayers(ctx context.Context) (map[string]model.Player, error)
	GetNFLState(ctx context.Context) (*model.NFLState, error)
	// GetTrendingPlayers is best-effort: on any failure it returns an empty
	// list instead of an error.
	GetTrendingPlayers(ctx context.Context, trendType string, lookbackHours, limit int) ([]model.TrendingPlayer, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	return NewForTest(SleeperURL), nil
}

func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
}

func (c *client) GetUser(ctx context.Context, username string) (*model.SleeperUser, error) {
	// Requesting a user that doesn't exist returns a 200 with "null" as the
	// response body, so a nil decode is the not-found signal here.
	var parsed *sleeperUser
	if err := c.getJSON(ctx, "user", fmt.Sprintf("/v1/user/%s", url.PathEscape(username)), &parsed); err != nil {
		return nil, err
	}
	if parsed == nil || parsed.UserID == "" {
		return nil, &NotFoundError{Resource: "user"}
	}
	return parsed.toUser(), nil
}

func (c *client) GetLeaguesForUser(ctx context.Context, userID, season string) ([]model.League, error) {
	var parsed []sleeperLeague
	path := fmt.Sprintf("/v1/user/%s/leagues/nfl/%s", url.PathEscape(userID), url.PathEscape(season))
	if err := c.getJSON(ctx, "leagues", path, &parsed); err != nil {
		return nil, err
	}

	leagues := make([]model.League, 0, len(parsed))
	for _, l := range parsed {
		leagues = append(leagues, *l.toLeague())
	}
	return leagues, nil
}

func (c *client) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	var parsed *sleeperLeague
	if err := c.getJSON(ctx, "league", fmt.Sprintf("/v1/league/%s", url.PathEscape(leagueID)), &parsed); err != nil {
		return nil, err
	}
	if parsed == nil || parsed.LeagueID == "" {
		return nil, &NotFoundError{Resource: "league"}
	}
	return parsed.toLeague(), nil
}

func (c *client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	path := fmt.Sprintf("/v1/league/%s/rosters", url.PathEscape(leagueID))
	if err := c.getJSON(ctx, "rosters", path, &parsed); err != nil {
		return nil, err
	}

	rosters := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		rosters = append(rosters, r.toRoster())
	}
	return rosters, nil
}

func (c *client) GetLeagueUsers(ctx context.Context, leagueID string) ([]model.LeagueUser, error) {
	var parsed []sleeperLeagueUser
	path := fmt.Sprintf("/v1/league/%s/users", url.PathEscape(leagueID))
	if err := c.getJSON(ctx, "users", path, &parsed); err != nil {
		return nil, err
	}

	users := make([]model.LeagueUser, 0, len(parsed))
	for _, u := range parsed {
		users = append(users, u.toLeagueUser())
	}
	return users, nil
}

func (c *client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	var parsed []sleeperMatchup
	path := fmt.Sprintf("/v1/league/%s/matchups/%d", url.PathEscape(leagueID), week)
	if err := c.getJSON(ctx, "matchups", path, &parsed); err != nil {
		return nil, err
	}

	matchups := make([]model.Matchup, 0, len(parsed))
	for _, m := range parsed {
		matchups = append(matchups, m.toMatchup())
	}
	return matchups, nil
}

func (c *client) GetTransactions(ctx context.Context, leagueID string, week int) ([]model.Transaction, error) {
	path := fmt.Sprintf("/v1/league/%s/transactions", url.PathEscape(leagueID))
	if week > 0 {
		path = fmt.Sprintf("%s/%d", path, week)
	}

	var parsed []sleeperTransaction
	if err := c.getJSON(ctx, "transactions", path, &parsed); err != nil {
		return nil, err
	}

	transactions := make([]model.Transaction, 0, len(parsed))
	for _, t := range parsed {
		transactions = append(transactions, t.toTransaction())
	}
	return transactions, nil
}

func (c *client) LoadPlayers(ctx context.Context) (map[string]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.getJSON(ctx, "players", "/v1/players/nfl", &parsed); err != nil {
		return nil, err
	}

	players := make(map[string]model.Player, len(parsed))
	for id, p := range parsed {
		players[id] = p.toPlayer(id)
	}
	return players, nil
}

func (c *client) GetNFLState(ctx context.Context) (*model.NFLState, error) {
	var parsed *sleeperNFLState
	if err := c.getJSON(ctx, "nfl state", "/v1/state/nfl", &parsed); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, &NotFoundError{Resource: "nfl state"}
	}
	return parsed.toState(), nil
}

func (c *client) GetTrendingPlayers(ctx context.Context, trendType string, lookbackHours, limit int) ([]model.TrendingPlayer, error) {
	path := fmt.Sprintf("/v1/players/nfl/trending/%s?lookback_hours=%d&limit=%d",
		url.PathEscape(trendType), lookbackHours, limit)

	var parsed []trendingPlayer
	if err := c.getJSON(ctx, "trending players", path, &parsed); err != nil {
		log.Printf("error fetching trending players, continuing without them: %v", err)
		return []model.TrendingPlayer{}, nil
	}

	trending := make([]model.TrendingPlayer, 0, len(parsed))
	for _, t := range parsed {
		trending = append(trending, t.toTrendingPlayer())
	}
	return trending, nil
}

func (c *client) getJSON(ctx context.Context, resource, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{Resource: resource, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing %s response from sleeper: %w", resource, err)
	}
	return nil
}

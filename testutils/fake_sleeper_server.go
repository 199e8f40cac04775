package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// BrokenLeagueID is a league id every endpoint fails for, to exercise the
// per-league error isolation in the pipeline.
const BrokenLeagueID = "666"

type FakeSleeperServer struct {
	s *httptest.Server

	mu       sync.Mutex
	requests map[string]int
}

func NewFakeSleeperServer() *FakeSleeperServer {
	f := &FakeSleeperServer{
		requests: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(f.countRequests)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", nflPlayersHandler)
		r.Get("/players/nfl/trending/{type}", trendingHandler)
		r.Get("/state/nfl", nflStateHandler)

		r.Route("/user", func(r chi.Router) {
			r.Get("/{userID}/leagues/nfl/{year}", userLeaguesHandler)
			r.Get("/{username}", sleeperUserHandler)
		})

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/rosters", rostersHandler)
			r.Get("/users", leagueUsersHandler)
			r.Get("/matchups/{week}", matchupsHandler)
			r.Get("/transactions", transactionsHandler)
			r.Get("/transactions/{week}", transactionsHandler)
		})
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

// RequestCount reports how many times the given path has been requested,
// e.g. "/v1/league/924039165950484480/matchups/2".
func (f *FakeSleeperServer) RequestCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[path]
}

func (f *FakeSleeperServer) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests[r.URL.Path]++
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func trendingHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "type") == "add" {
		serveFile(w, "trending_add.json")
	} else {
		serveJSON(w, "[]")
	}
}

func nflStateHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "state.json")
}

func sleeperUserHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "sleeperuser" || username == "brokenuser" {
		serveFile(w, fmt.Sprintf("%s.json", username))
	} else {
		// requesting a user that doesn't exist returns a 200 with "null" as
		// the response body as of 2024-08-12
		serveJSON(w, "null")
	}
}

func userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	year := chi.URLParam(r, "year")

	switch {
	case userID == "12345678" && year == "2024":
		serveFile(w, "user_leagues.json")
	case userID == "98765432" && year == "2024":
		serveFile(w, "broken_user_leagues.json")
	default:
		serveJSON(w, "[]")
	}
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "leagueID") {
	case "924039165950484480":
		serveFile(w, "league_1.json")
	case "1005178517580746753":
		serveFile(w, "league_2.json")
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func rostersHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "leagueID") {
	case "924039165950484480":
		serveFile(w, "rosters_1.json")
	case "1005178517580746753":
		serveFile(w, "rosters_2.json")
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "leagueID") {
	case "924039165950484480":
		serveFile(w, "users_1.json")
	case "1005178517580746753":
		serveFile(w, "users_2.json")
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func matchupsHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	week := chi.URLParam(r, "week")

	switch {
	case leagueID == BrokenLeagueID:
		w.WriteHeader(http.StatusInternalServerError)
	case leagueID == "924039165950484480" && week == "1":
		serveFile(w, "matchups_1.json")
	default:
		serveJSON(w, "[]")
	}
}

func transactionsHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "leagueID") {
	case BrokenLeagueID:
		w.WriteHeader(http.StatusInternalServerError)
	case "924039165950484480":
		serveFile(w, "transactions_1.json")
	default:
		serveJSON(w, "[]")
	}
}

func serveJSON(w http.ResponseWriter, body string) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/joshuasellers/fantasy-football-tracker/controller"
	"github.com/joshuasellers/fantasy-football-tracker/model"
	"github.com/joshuasellers/fantasy-football-tracker/sleeper"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func renderError(render *render.Render, w http.ResponseWriter, status int, err error) {
	render.JSON(w, status, errorResponse{Error: err.Error()})
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "fantasy football tracker")
	}
}

// stateHandler reports whether a load is in flight and what the last load
// error was, so a client can poll while LoadUserData runs.
func stateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Snapshot()
		data := map[string]any{
			"loading": ctrl.Loading(),
			"error":   ctrl.LastError(),
			"loaded":  snap != nil,
		}
		if snap != nil {
			data["current_week"] = snap.CurrentWeek
		} else {
			data["current_week"] = 0
		}
		render.JSON(w, http.StatusOK, data)
	}
}

func loadHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		username := r.PostForm.Get("username")
		if username == "" {
			renderError(render, w, http.StatusBadRequest, errors.New("username must be provided"))
			return
		}

		snap, err := ctrl.LoadUserData(r.Context(), username)
		if err != nil {
			if errors.Is(err, sleeper.ErrNotFound) {
				renderError(render, w, http.StatusNotFound, err)
			} else {
				renderError(render, w, http.StatusInternalServerError, err)
			}
			return
		}

		render.JSON(w, http.StatusOK, snap)
	}
}

func dashboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.Dashboard())
	}
}

func teamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Snapshot()
		if snap == nil {
			renderError(render, w, http.StatusNotFound, controller.ErrNoDataLoaded)
			return
		}
		render.JSON(w, http.StatusOK, displayTeams(snap.Teams))
	}
}

func allTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Snapshot()
		if snap == nil {
			renderError(render, w, http.StatusNotFound, controller.ErrNoDataLoaded)
			return
		}
		render.JSON(w, http.StatusOK, displayTeams(snap.AllTeams))
	}
}

// displayTeams copies the teams and sorts each player list into lineup order.
// The snapshot keeps roster order, so sort a copy rather than the shared data.
func displayTeams(teams []model.Team) []model.Team {
	result := make([]model.Team, len(teams))
	for i, t := range teams {
		result[i] = t
		result[i].Players = make([]model.RosterPlayer, len(t.Players))
		copy(result[i].Players, t.Players)
		model.SortRosterPlayers(result[i].Players)
	}
	return result
}

func matchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekParam := r.URL.Query().Get("week")
		week := 0
		if weekParam != "" {
			var err error
			week, err = strconv.Atoi(weekParam)
			if err != nil {
				renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing week: %v", err))
				return
			}
		} else if snap := ctrl.Snapshot(); snap != nil {
			week = snap.CurrentWeek
		}

		force := r.URL.Query().Get("refresh") == "1"

		matchups, err := ctrl.LoadWeek(r.Context(), week, force)
		if err != nil {
			if errors.Is(err, controller.ErrNoDataLoaded) {
				renderError(render, w, http.StatusNotFound, err)
			} else {
				renderError(render, w, http.StatusBadRequest, err)
			}
			return
		}

		render.JSON(w, http.StatusOK, matchups)
	}
}

func scoringHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.Scoring())
	}
}

func notificationsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Snapshot()
		if snap == nil {
			renderError(render, w, http.StatusNotFound, controller.ErrNoDataLoaded)
			return
		}
		render.JSON(w, http.StatusOK, snap.Notifications)
	}
}

func recommendationsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Snapshot()
		if snap == nil {
			renderError(render, w, http.StatusNotFound, controller.ErrNoDataLoaded)
			return
		}
		render.JSON(w, http.StatusOK, snap.Recommendations)
	}
}

func dismissRecommendationHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "recommendationID")
		if err := ctrl.DismissRecommendation(id); err != nil {
			renderRecommendationError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "dismissed"})
	}
}

func swapRecommendationHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "recommendationID")
		if err := ctrl.SwapRecommendation(id); err != nil {
			renderRecommendationError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "swapped"})
	}
}

func renderRecommendationError(render *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, controller.ErrRecommendationNotFound):
		renderError(render, w, http.StatusNotFound, err)
	case errors.Is(err, controller.ErrNoDataLoaded):
		renderError(render, w, http.StatusNotFound, err)
	default:
		renderError(render, w, http.StatusInternalServerError, err)
	}
}

func trendingHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trendType := r.URL.Query().Get("type")
		if trendType == "" {
			trendType = "add"
		}
		if trendType != "add" && trendType != "drop" {
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("unknown trending type: %s", trendType))
			return
		}

		trending, err := ctrl.TrendingPlayers(r.Context(), trendType)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, trending)
	}
}

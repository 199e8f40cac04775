package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joshuasellers/fantasy-football-tracker/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		// Loading a user fans out to every league, so give it more headroom
		// than the regular read endpoints.
		r.With(middleware.Timeout(60 * time.Second)).Post("/load", loadHandler(ctrl, render))

		r.Get("/state", stateHandler(ctrl, render))
		r.Get("/dashboard", dashboardHandler(ctrl, render))
		r.Get("/teams", teamsHandler(ctrl, render))
		r.Get("/teams/all", allTeamsHandler(ctrl, render))
		r.Get("/matchups", matchupsHandler(ctrl, render))
		r.Get("/scoring", scoringHandler(ctrl, render))
		r.Get("/notifications", notificationsHandler(ctrl, render))
		r.Get("/trending", trendingHandler(ctrl, render))

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/", recommendationsHandler(ctrl, render))
			r.Post("/{recommendationID}/dismiss", dismissRecommendationHandler(ctrl, render))
			r.Post("/{recommendationID}/swap", swapRecommendationHandler(ctrl, render))
		})
	})

	return r
}

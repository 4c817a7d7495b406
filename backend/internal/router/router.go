package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/teamboard/teamboard/backend/internal/setup"
	mw "github.com/teamboard/teamboard/shared/middleware"
	"github.com/teamboard/teamboard/shared/middleware/metrics"
	"github.com/teamboard/teamboard/shared/middleware/ratelimiter"
)

// New creates and configures a new chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.Http.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", mw.RequestIdHeader},
		ExposedHeaders: []string{mw.RequestIdHeader},
		MaxAge:         300,
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		if limit := deps.Config.Public.Http.RateLimit; limit.Rps > 0 {
			burst := max(limit.Burst, 1)
			r.Use(mw.RateLimit(ratelimiter.New(limit.Rps, float64(burst), time.Hour), mw.GetIP))
		}

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.CreateUser)
			r.Get("/", h.ListUsers)
			r.Get("/{id}", h.GetUser)
			r.Patch("/{id}", h.UpdateUser)
			r.Get("/{id}/teams", h.GetUserTeams)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Post("/", h.CreateTeam)
			r.Get("/", h.ListTeams)
			r.Get("/{id}", h.GetTeam)
			r.Patch("/{id}", h.UpdateTeam)
			r.Post("/{id}/users", h.AddTeamUsers)
			r.Delete("/{id}/users", h.RemoveTeamUsers)
			r.Get("/{id}/users", h.ListTeamUsers)
			r.Get("/{id}/boards", h.ListTeamBoards)
		})

		r.Route("/boards", func(r chi.Router) {
			r.Post("/", h.CreateBoard)
			r.Get("/{id}", h.GetBoard)
			r.Post("/{id}/close", h.CloseBoard)
			r.Post("/{id}/export", h.ExportBoard)
			r.Get("/{id}/tasks", h.ListBoardTasks)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", h.CreateTask)
			r.Put("/{id}/status", h.UpdateTaskStatus)
		})
	})

	return r
}

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ideator/internal/api/handlers"
	"ideator/internal/api/middleware"
	"ideator/internal/config"
	"ideator/internal/pkg/errors"
	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/metrics"
	"ideator/internal/pkg/utils"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Idea     *handlers.IdeaHandler
	Calendar *handlers.CalendarHandler
	Trend    *handlers.TrendHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(cfg.Server.FrontendURL))
	r.Use(metrics.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorMessage(w, http.StatusNotFound, errors.ErrCodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorMessage(w, http.StatusMethodNotAllowed, errors.ErrCodeBadRequest, "Method not allowed")
	})

	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/health", h.Health.Healthz)
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)
		r.Handle("/metrics", metrics.Handler())

		r.Post("/api/auth/register", h.Auth.Register)
		r.Post("/api/auth/login", h.Auth.Login)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticator(cfg.Auth.JWTSecret))

		r.Get("/api/auth/profile", h.Auth.GetProfile)
		r.Put("/api/auth/profile", h.Auth.UpdateProfile)

		r.Route("/api/ideas", func(r chi.Router) {
			r.Get("/", h.Idea.List)
			r.Post("/generate", h.Idea.Generate)
			r.Get("/{id}", h.Idea.Get)
			r.Put("/{id}", h.Idea.Update)
			r.Delete("/{id}", h.Idea.Delete)
		})

		r.Get("/api/calendar", h.Calendar.List)
		r.Get("/api/trends", h.Trend.List)
	})

	return r
}

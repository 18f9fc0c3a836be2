package integration

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"ideator/internal/api/handlers"
	"ideator/internal/api/router"
	"ideator/internal/config"
	"ideator/internal/ideagen"
	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/validator"
	"ideator/internal/repository/postgres"
	"ideator/internal/services"
	"ideator/internal/testutil"
	"ideator/pkg/client"
)

// scriptedGenerator returns a canned parse result so the stack can be
// exercised without an upstream completion API.
type scriptedGenerator struct {
	result ideagen.ParseResult
	err    error
}

func (s *scriptedGenerator) Generate(ctx context.Context, contentType string, keywords []string, count int) (ideagen.ParseResult, error) {
	if s.err != nil {
		return ideagen.ParseResult{}, s.err
	}
	return s.result, nil
}

// startServer wires the full HTTP stack over an in-memory database and
// returns an SDK client pointed at it.
func startServer(t *testing.T, gen services.IdeaGenerator) *client.Client {
	t.Helper()

	db := testutil.NewTestDB(t)
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	val := validator.New()

	cfg := &config.Config{
		Server: config.ServerConfig{FrontendURL: "http://localhost:3000"},
		Auth: config.AuthConfig{
			JWTSecret:   "integration-test-secret",
			TokenExpiry: time.Hour,
			BCryptCost:  4,
		},
	}

	userRepo := postgres.NewUserRepository(db)
	ideaRepo := postgres.NewIdeaRepository(db)
	trendRepo := postgres.NewTrendRepository(db)

	authService := services.NewAuthService(userRepo, cfg.Auth, log)
	ideaService := services.NewIdeaService(ideaRepo, gen, log)
	trendService := services.NewTrendService(trendRepo)

	h := &router.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Auth:     handlers.NewAuthHandler(authService, log, val),
		Idea:     handlers.NewIdeaHandler(ideaService, log, val),
		Calendar: handlers.NewCalendarHandler(ideaService, log),
		Trend:    handlers.NewTrendHandler(trendService, log),
	}

	ts := httptest.NewServer(router.New(cfg, log, h))
	t.Cleanup(ts.Close)

	return client.NewClient(client.Config{BaseURL: ts.URL})
}

func defaultGenerator() *scriptedGenerator {
	return &scriptedGenerator{
		result: ideagen.ParseResult{
			Mode: ideagen.ModeStructured,
			Ideas: []ideagen.Idea{
				{Title: "Growing an Audience", Description: "Practical distribution tactics."},
				{Title: "Evergreen Topics", Description: "Content that keeps paying off."},
			},
		},
	}
}

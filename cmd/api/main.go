package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ideator/internal/api/handlers"
	"ideator/internal/api/router"
	"ideator/internal/config"
	"ideator/internal/ideagen"
	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/validator"
	"ideator/internal/repository/postgres"
	"ideator/internal/services"
	"ideator/internal/worker"
	"ideator/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := postgres.New(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.GetFS()); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	ideaRepo := postgres.NewIdeaRepository(db)
	trendRepo := postgres.NewTrendRepository(db)

	// Services
	generator := ideagen.New(cfg.OpenAI)
	authService := services.NewAuthService(userRepo, cfg.Auth, log)
	ideaService := services.NewIdeaService(ideaRepo, generator, log)
	trendService := services.NewTrendService(trendRepo)

	val := validator.New()

	h := &router.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Auth:     handlers.NewAuthHandler(authService, log, val),
		Idea:     handlers.NewIdeaHandler(ideaService, log, val),
		Calendar: handlers.NewCalendarHandler(ideaService, log),
		Trend:    handlers.NewTrendHandler(trendService, log),
	}

	sweeper := worker.NewTrendSweeper(trendRepo, cfg.Trends, log)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("failed to start trend sweeper: %v", err)
	}
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.ErrorWithErr(err, "graceful shutdown failed")
	}
}

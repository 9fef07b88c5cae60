package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"littleyears/internal/config"
	"littleyears/internal/database"
	"littleyears/internal/handlers"
	"littleyears/internal/metrics"
	"littleyears/internal/repository"
	"littleyears/internal/service"
	"littleyears/pkg/logging"
)

func main() {
	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("Database connection established", "type", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	kidRepo := repository.NewKidRepository(db)
	momentRepo := repository.NewMomentRepository(db)

	// Initialize services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		slog.Warn("Email service unavailable, invitations disabled", "error", err)
		emailService, _ = service.NewEmailService("", "", "", "")
	}
	kidService := service.NewKidService(kidRepo, emailService)
	timelineService := service.NewTimelineService(kidRepo, momentRepo)
	seedService := service.NewSeedService(kidRepo, momentRepo)

	// Initialize handlers
	kidHandler := handlers.NewKidHandler(kidService, timelineService)
	seedHandler := handlers.NewSeedHandler(seedService)
	systemHandler := handlers.NewSystemHandler(db)
	middleware := handlers.NewMiddleware(cfg.CORSAllowedOrigin)

	// Setup routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", systemHandler.Healthcheck)
	mux.HandleFunc("GET /test", systemHandler.TestDatabase)
	mux.HandleFunc("GET /api/hello", systemHandler.Hello)
	mux.HandleFunc("GET /api/kids", kidHandler.ListKids)
	mux.HandleFunc("GET /api/kids/{kidID}/timeline", kidHandler.Timeline)
	mux.HandleFunc("POST /api/kids/{kidID}/grandparents", kidHandler.GrantGrandparent)
	mux.HandleFunc("POST /api/seed", seedHandler.Seed)
	mux.Handle("GET /metrics", metrics.Handler())

	handler := middleware.Logging(middleware.Metrics(middleware.CORS(mux)))

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

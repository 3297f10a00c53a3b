package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"budgetnatin/internal/config"
	"budgetnatin/internal/database"
	"budgetnatin/internal/events"
	"budgetnatin/internal/logger"
	"budgetnatin/internal/metrics"
	"budgetnatin/internal/middleware"
	"budgetnatin/internal/oauth"
	"budgetnatin/internal/server"
	"budgetnatin/internal/validator"
)

// @title           BudgetNatin API
// @version         1.0
// @description     BudgetNatin tracks personal expenses against monthly budgets, extra income and bill due dates.

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Load first: ENV may come from .env, and it picks the log encoder.
	cfg, err := config.Load()
	if err != nil {
		logger.Init(os.Getenv("ENV"))
		logger.Get().Fatalf("failed to load configuration: %v", err)
	}
	logger.Init(cfg.Env)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		publisher = amqpPublisher
		log.Infow("Publishing notification events", "exchange", cfg.AMQPExchange)
	}
	defer publisher.Close()

	var google oauth.GoogleProvider
	if cfg.GoogleEnabled() {
		google = oauth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL)
	} else {
		log.Info("Google sign-in disabled: GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set")
	}

	deps := server.Deps{
		Config:    cfg,
		DB:        dbManager.DB(),
		Pinger:    dbManager,
		Tokens:    middleware.NewTokenManager(cfg.JWTSecret, cfg.JWTExpirationDur),
		Google:    google,
		Publisher: publisher,
		Metrics:   metrics.New(),
	}
	router := server.NewRouter(deps, server.NewServices(deps))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting BudgetNatin backend server on port %s (%s)", cfg.Port, cfg.Env)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server stopped gracefully")
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"campaign-payouts/internal/adapter/countries"
	httpadapter "campaign-payouts/internal/adapter/http"
	"campaign-payouts/internal/adapter/memory"
	"campaign-payouts/internal/adapter/postgres"
	"campaign-payouts/internal/adapter/usecase"
	"campaign-payouts/internal/config"
	"campaign-payouts/internal/config/configs"
	"campaign-payouts/internal/core/port"
	"campaign-payouts/internal/db"
)

// main is the entry point of the campaign-payouts service. It loads
// configuration and the country reference data, wires the configured
// storage driver into the use cases, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	// The service cannot validate anything without reference data.
	catalog, err := countries.LoadFile(cfg.Storage.CountriesPath)
	if err != nil {
		logger.Error("countries dataset error", slog.Any("error", err))
		return
	}
	logger.Info("countries loaded", slog.Int("count", catalog.Len()))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.CampaignRepository
	switch cfg.Storage.Driver {
	case configs.DriverMemory:
		logger.Warn("using in-memory storage, data is lost on exit")
		repo = memory.NewCampaignRepository()
	default:
		// Optionally run migrations if configured. We use the Psql sub‑config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewCampaignRepository(pool)
	}

	campaigns := usecase.NewCampaignUseCase(repo, catalog)
	payouts := usecase.NewPayoutUseCase(repo, catalog)

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, campaigns); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	handler := httpadapter.NewHandler(campaigns, payouts, catalog, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serverErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

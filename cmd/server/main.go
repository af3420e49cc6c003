package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/auth"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/backend"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/config"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/contact"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/db"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/etl"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/stats"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var client *backend.Client
	if cfg.BackendConfigured() {
		client = backend.NewClient(cfg.BackendURL)
	} else {
		logger.Warn("backend URL not configured, running in degraded mode")
	}

	var store *db.Store
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		p, err := db.ConnectURL(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("database unavailable, skipping fallback tiers", zap.Error(err))
		} else {
			pool = p
			defer pool.Close()
			if err := db.ApplyMigrations(ctx, pool); err != nil {
				logger.Fatal("migration failed", zap.Error(err))
			}
			store = db.NewStore(pool)
		}
	}

	registry, err := etl.LoadRegistry()
	if err != nil {
		logger.Fatal("loading pipeline registry", zap.Error(err))
	}

	// Retrieval tiers in order: backend API, dashboard_stats view,
	// manual aggregation over the base tables.
	var statsSources []stats.Source
	var statusSources []etl.StatusSource
	if client != nil {
		statsSources = append(statsSources, stats.BackendSource{Client: client})
		statusSources = append(statusSources, etl.BackendStatusSource{Client: client})
	}
	if store != nil {
		statsSources = append(statsSources,
			stats.ViewSource{Store: store},
			stats.ManualSource{Store: store},
		)
		statusSources = append(statusSources, etl.TableStatusSource{Store: store})
	}

	var statsService *stats.Service
	if len(statsSources) > 0 {
		statsService = stats.NewService(logger, statsSources...)
	}

	var triggerer etl.Triggerer
	if client != nil {
		triggerer = client
	}
	monitor := etl.NewMonitor(registry, triggerer, cfg.PollInterval, logger, statusSources...)
	monitor.Start(ctx)

	var authService *auth.Service
	if pool != nil {
		authService = auth.NewService(pool)
	}

	srv := web.NewServer(web.Deps{
		Stats:   statsService,
		Monitor: monitor,
		Backend: client,
		Store:   store,
		Auth:    authService,
		Contact: contact.NewService(contact.SimulatedDeliverer{}, logger),
		Log:     logger,
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Echo.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}()

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := srv.Start(":" + cfg.Port); err != nil {
		logger.Info("server stopped", zap.Error(err))
	}
	monitor.Wait()
}

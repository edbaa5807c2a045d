package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openanonymiser/openanonymiser-backend/internal/adapter/postgres"
	"github.com/openanonymiser/openanonymiser-backend/internal/adapter/postgres/analysis"
	"github.com/openanonymiser/openanonymiser-backend/internal/config"
	"github.com/openanonymiser/openanonymiser-backend/internal/service/readability"
	"github.com/openanonymiser/openanonymiser-backend/internal/service/readability/scoring"
	"github.com/openanonymiser/openanonymiser-backend/internal/transport/middleware"
	"github.com/openanonymiser/openanonymiser-backend/internal/transport/rest"
)

// Run is the application entry point. It loads both configurations, wires
// the optional history store, serves HTTP until ctx is cancelled and then
// shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	profile := config.Profile()
	rcfg, err := config.LoadReadability()
	if err != nil {
		return fmt.Errorf("readability config (profile %s): %w", profile, err)
	}

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("profile", profile),
		slog.String("log_level", cfg.Log.Level),
	)

	var pool *pgxpool.Pool
	if cfg.Database.Enabled() {
		pool, err = postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				return err
			}
		}
	}

	engine := scoring.New(*rcfg)
	svc := newReadabilityService(logger, engine, pool)
	logger.Info("readability service ready", slog.Bool("history", svc.HistoryEnabled()))

	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rl.Stop()

	handler := newRouter(cfg, logger, routes{
		readability: rest.NewReadabilityHandler(svc, cfg.Server.MaxBodyBytes, logger),
		health:      newHealthHandler(pool, profile),
	}, rl)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// The nil branches keep the interfaces untyped-nil so the service and the
// health handler see "no database" rather than a nil pool.
func newReadabilityService(logger *slog.Logger, engine *scoring.Engine, pool *pgxpool.Pool) *readability.Service {
	if pool == nil {
		return readability.NewService(logger, engine, nil)
	}
	return readability.NewService(logger, engine, analysis.New(pool))
}

func newHealthHandler(pool *pgxpool.Pool, profile string) *rest.HealthHandler {
	if pool == nil {
		return rest.NewHealthHandler(nil, BuildVersion(), profile)
	}
	return rest.NewHealthHandler(pool, BuildVersion(), profile)
}

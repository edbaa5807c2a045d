// Command cleanup removes readability analysis records older than the
// configured retention period. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/openanonymiser/openanonymiser-backend/internal/adapter/postgres"
	"github.com/openanonymiser/openanonymiser-backend/internal/adapter/postgres/analysis"
	"github.com/openanonymiser/openanonymiser-backend/internal/app"
	"github.com/openanonymiser/openanonymiser-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Database.Enabled() {
		logger.Info("history store disabled, nothing to clean up")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := analysis.New(pool)

	threshold := time.Now().AddDate(0, 0, -cfg.Database.HistoryRetentionDays)

	deleted, err := repo.DeleteBefore(ctx, threshold)
	if err != nil {
		logger.Error("history cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("history cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
		slog.Int("retention_days", cfg.Database.HistoryRetentionDays),
	)
}

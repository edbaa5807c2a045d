package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/openanonymiser/openanonymiser-backend/internal/config"
)

func TestPoolConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dsn     string
		wantApp string
	}{
		{name: "default application name", dsn: "postgres://u:p@db.internal:5432/history", wantApp: ApplicationName},
		{name: "explicit application name kept", dsn: "postgres://u:p@db.internal:5432/history?application_name=ops", wantApp: "ops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := poolConfig(config.DatabaseConfig{
				DSN:             tt.dsn,
				MaxConns:        8,
				MinConns:        2,
				MaxConnLifetime: time.Hour,
				MaxConnIdleTime: time.Minute,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if cfg.MaxConns != 8 || cfg.MinConns != 2 {
				t.Errorf("conns = (%d, %d), want (8, 2)", cfg.MaxConns, cfg.MinConns)
			}
			if cfg.MaxConnLifetime != time.Hour || cfg.MaxConnIdleTime != time.Minute {
				t.Errorf("lifetimes = (%v, %v)", cfg.MaxConnLifetime, cfg.MaxConnIdleTime)
			}
			if got := cfg.ConnConfig.RuntimeParams["application_name"]; got != tt.wantApp {
				t.Errorf("application_name = %q, want %q", got, tt.wantApp)
			}
			if cfg.ConnConfig.Database != "history" {
				t.Errorf("database = %q, want history", cfg.ConnConfig.Database)
			}
		})
	}
}

func TestNewPool_InvalidDSN(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := NewPool(context.Background(), config.DatabaseConfig{DSN: "postgres://%zz"}, log); err == nil {
		t.Fatal("expected error for malformed DSN")
	}
}

package app

import (
	"log/slog"
	"net/http"

	"github.com/openanonymiser/openanonymiser-backend/internal/config"
	"github.com/openanonymiser/openanonymiser-backend/internal/transport/middleware"
	"github.com/openanonymiser/openanonymiser-backend/internal/transport/rest"
)

type routes struct {
	readability *rest.ReadabilityHandler
	health      *rest.HealthHandler
}

// newRouter registers all HTTP routes. Probes are exempt from rate limiting.
func newRouter(cfg *config.Config, logger *slog.Logger, h routes, rl *middleware.RateLimiter) http.Handler {
	limit := middleware.Chain()
	if cfg.RateLimit.Enabled {
		limit = rl.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/analyze/readability", limit(http.HandlerFunc(h.readability.Analyze)))
	mux.Handle("GET /api/v1/analyze/readability/history", limit(http.HandlerFunc(h.readability.History)))

	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}

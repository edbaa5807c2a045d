package readability

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
	"github.com/openanonymiser/openanonymiser-backend/pkg/ctxutil"
)

// AnalyzeResult is the outcome of one analysis.
type AnalyzeResult struct {
	RequestID string
	InputHash string
	Meta      *domain.SourceMeta
	// Metrics is the sorted set of metric groups that were requested.
	Metrics []domain.Metric
	Stats   domain.ReadabilityStats
	// IncludeDebugFields mirrors the engine's output configuration.
	IncludeDebugFields bool
	IncludeCEFRHint    bool
}

// Has reports whether metric m was requested.
func (r *AnalyzeResult) Has(m domain.Metric) bool {
	return slices.Contains(r.Metrics, m)
}

// Analyze validates input, scores its text and records a fingerprint of the
// analysis when history is enabled. The text itself is never stored.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeResult, error) {
	cfg := s.engine.Config()

	if err := input.Validate(cfg.Limits.MaxTextLength); err != nil {
		return nil, err
	}

	ctx, requestID := ctxutil.EnsureRequestID(ctx)
	metrics := ResolveMetrics(input.Metrics, cfg.FleschDouma.EnabledByDefault)
	includeFlesch := slices.Contains(metrics, domain.MetricFleschDouma)

	stats, err := s.engine.Compute(strings.TrimSpace(input.Text), includeFlesch)
	if err != nil {
		return nil, fmt.Errorf("compute readability: %w", err)
	}

	result := &AnalyzeResult{
		RequestID:          requestID,
		InputHash:          domain.InputHash(input.Text),
		Meta:               input.Meta,
		Metrics:            metrics,
		Stats:              stats,
		IncludeDebugFields: cfg.Output.IncludeDebugFields,
		IncludeCEFRHint:    cfg.Output.IncludeCEFRHint,
	}

	if s.history != nil {
		s.record(ctx, result)
	}

	s.log.DebugContext(ctx, "readability analysis completed",
		slog.String("request_id", requestID),
		slog.Int("word_count", stats.WordCount),
		slog.Float64("lix", stats.LIX),
		slog.String("band", stats.Judgement.Band.String()),
	)

	return result, nil
}

// record persists the analysis fingerprint. Failures are logged, not
// returned: history is best effort and must not fail an analysis.
func (s *Service) record(ctx context.Context, result *AnalyzeResult) {
	rec := &domain.AnalysisRecord{
		ID:            uuid.New(),
		RequestID:     result.RequestID,
		InputHash:     result.InputHash,
		Metrics:       result.Metrics,
		WordCount:     result.Stats.WordCount,
		SentenceCount: result.Stats.SentenceCount,
		LIX:           result.Stats.LIX,
		Band:          result.Stats.Judgement.Band,
		FleschStatus:  result.Stats.FleschStatus,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.history.Create(ctx, rec); err != nil {
		s.log.WarnContext(ctx, "record analysis history",
			slog.String("request_id", result.RequestID),
			slog.String("error", err.Error()),
		)
	}
}

package readability

import (
	"context"
	"log/slog"
	"time"

	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
	"github.com/openanonymiser/openanonymiser-backend/internal/service/readability/scoring"
)

type historyRepo interface {
	Create(ctx context.Context, record *domain.AnalysisRecord) error
	ListByInputHash(ctx context.Context, inputHash string, limit int) ([]domain.AnalysisRecord, error)
}

// Service runs readability analyses and keeps their optional history.
type Service struct {
	engine  *scoring.Engine
	history historyRepo
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new readability service. history may be nil, in
// which case analyses are not recorded and History is unavailable.
func NewService(log *slog.Logger, engine *scoring.Engine, history historyRepo) *Service {
	return &Service{
		engine:  engine,
		history: history,
		log:     log.With("service", "readability"),
		now:     time.Now,
	}
}

// HistoryEnabled reports whether analyses are being recorded.
func (s *Service) HistoryEnabled() bool {
	return s.history != nil
}

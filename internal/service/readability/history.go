package readability

import (
	"context"
	"fmt"

	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
)

// History lists earlier analyses of the same input fingerprint, newest first.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.AnalysisRecord, error) {
	if s.history == nil {
		return nil, fmt.Errorf("analysis history: %w", domain.ErrUnavailable)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	records, err := s.history.ListByInputHash(ctx, input.InputHash, limit)
	if err != nil {
		return nil, fmt.Errorf("list analysis history: %w", err)
	}
	if records == nil {
		records = []domain.AnalysisRecord{}
	}
	return records, nil
}

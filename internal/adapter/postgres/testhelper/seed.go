package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
)

// UniqueInputHash returns a fingerprint no other test has used, so parallel
// tests sharing the container never see each other's rows.
func UniqueInputHash() string {
	return domain.InputHash("testhelper " + uuid.NewString())
}

// SeedAnalysis inserts an analysis record for inputHash created at
// createdAt and returns it.
func SeedAnalysis(t *testing.T, pool *pgxpool.Pool, inputHash string, createdAt time.Time) domain.AnalysisRecord {
	t.Helper()

	rec := domain.AnalysisRecord{
		ID:            uuid.New(),
		RequestID:     "seed-" + uuid.NewString()[:8],
		InputHash:     inputHash,
		Metrics:       []domain.Metric{domain.MetricLIX, domain.MetricStats},
		WordCount:     8,
		SentenceCount: 2,
		LIX:           4,
		Band:          domain.BandEasy,
		CreatedAt:     createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO readability_analyses
		    (id, request_id, input_hash, metrics, word_count, sentence_count, lix, band, flesch_status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULL, $9)`,
		rec.ID, rec.RequestID, rec.InputHash, []string{"lix", "stats"},
		rec.WordCount, rec.SentenceCount, rec.LIX, string(rec.Band), rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnalysis insert: %v", err)
	}

	return rec
}

// Package analysis implements the readability analysis history repository
// using PostgreSQL. Records are append-only fingerprints; no text is stored.
package analysis

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/openanonymiser/openanonymiser-backend/internal/adapter/postgres"
	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
)

const (
	table  = "readability_analyses"
	entity = "readability_analysis"
)

var columns = []string{
	"id", "request_id", "input_hash", "metrics", "word_count",
	"sentence_count", "lix", "band", "flesch_status", "created_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides analysis history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new analysis repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts one analysis record.
func (r *Repo) Create(ctx context.Context, rec *domain.AnalysisRecord) error {
	metrics := make([]string, len(rec.Metrics))
	for i, m := range rec.Metrics {
		metrics[i] = m.String()
	}

	var flesch *string
	if rec.FleschStatus != nil {
		s := rec.FleschStatus.String()
		flesch = &s
	}

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.RequestID, rec.InputHash, metrics, rec.WordCount,
			rec.SentenceCount, rec.LIX, rec.Band.String(), flesch, rec.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s: %w", entity, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, rec.ID)
	}
	return nil
}

// ListByInputHash returns up to limit records with the given fingerprint,
// newest first.
func (r *Repo) ListByInputHash(ctx context.Context, inputHash string, limit int) ([]domain.AnalysisRecord, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"input_hash": inputHash}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, inputHash)
	}

	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, postgres.MapError(err, entity, inputHash)
	}
	return records, nil
}

func scanRecord(row pgx.CollectableRow) (domain.AnalysisRecord, error) {
	var (
		rec     domain.AnalysisRecord
		metrics []string
		band    string
		flesch  *string
	)

	err := row.Scan(&rec.ID, &rec.RequestID, &rec.InputHash, &metrics, &rec.WordCount,
		&rec.SentenceCount, &rec.LIX, &band, &flesch, &rec.CreatedAt)
	if err != nil {
		return domain.AnalysisRecord{}, err
	}

	rec.Metrics = make([]domain.Metric, len(metrics))
	for i, m := range metrics {
		rec.Metrics[i] = domain.Metric(m)
	}
	rec.Band = domain.Band(band)
	if flesch != nil {
		status := domain.FleschStatus(*flesch)
		rec.FleschStatus = &status
	}
	return rec, nil
}

// DeleteBefore removes records created before threshold and returns how many
// were deleted.
func (r *Repo) DeleteBefore(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := psql.Delete(table).
		Where(sq.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete %s: %w", entity, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, threshold.Format(time.RFC3339))
	}
	return tag.RowsAffected(), nil
}

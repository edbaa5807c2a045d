package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openanonymiser/openanonymiser-backend/internal/config"
	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
	"github.com/openanonymiser/openanonymiser-backend/internal/service/readability"
	"github.com/openanonymiser/openanonymiser-backend/internal/service/readability/scoring"
	"github.com/openanonymiser/openanonymiser-backend/pkg/ctxutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadabilityService struct {
	AnalyzeFunc func(ctx context.Context, input readability.AnalyzeInput) (*readability.AnalyzeResult, error)
	HistoryFunc func(ctx context.Context, input readability.HistoryInput) ([]domain.AnalysisRecord, error)
}

func (m *mockReadabilityService) Analyze(ctx context.Context, input readability.AnalyzeInput) (*readability.AnalyzeResult, error) {
	return m.AnalyzeFunc(ctx, input)
}

func (m *mockReadabilityService) History(ctx context.Context, input readability.HistoryInput) ([]domain.AnalysisRecord, error) {
	return m.HistoryFunc(ctx, input)
}

func newEngineHandler(mutate ...func(*config.ReadabilityConfig)) *ReadabilityHandler {
	cfg := config.DefaultReadabilityConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	svc := readability.NewService(slog.Default(), scoring.New(cfg), nil)
	return NewReadabilityHandler(svc, 1<<20, slog.Default())
}

func postAnalyze(t *testing.T, h *ReadabilityHandler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/readability", strings.NewReader(body))
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-test"))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), "body: %s", rec.Body.String())
	return rec, payload
}

func TestAnalyze_DefaultMetrics(t *testing.T) {
	t.Parallel()

	rec, payload := postAnalyze(t, newEngineHandler(), `{"text": "Dit is een korte zin. Nog een zin."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-test", payload["request_id"])
	assert.Equal(t, domain.InputHash("Dit is een korte zin. Nog een zin."), payload["input_hash"])
	assert.Nil(t, payload["meta"])
	assert.Contains(t, payload, "meta")
	assert.EqualValues(t, 8, payload["word_count"])
	assert.EqualValues(t, 2, payload["sentence_count"])
	assert.Equal(t, []any{"lix", "stats"}, payload["metrics_computed"])
	assert.EqualValues(t, 4, payload["lix"])
	assert.EqualValues(t, 4, payload["avg_sentence_length"])
	assert.EqualValues(t, 0, payload["long_word_pct"])
	assert.EqualValues(t, 0, payload["long_word_count"])
	assert.Equal(t, "A1", payload["cefr_hint"])
	assert.EqualValues(t, 0.4, payload["cefr_confidence"])
	assert.Contains(t, payload, "syllables_per_word")
	assert.NotContains(t, payload, "flesch_douma")
	assert.NotContains(t, payload, "flesch_douma_status")

	judgement, ok := payload["judgement"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "easy", judgement["band"])
	assert.NotEmpty(t, judgement["notes"])
}

func TestAnalyze_FieldGating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		metrics string
		present []string
		absent  []string
	}{
		{
			name:    "stats only",
			metrics: `["stats"]`,
			present: []string{"long_word_count", "word_count", "sentence_count"},
			absent:  []string{"lix", "avg_sentence_length", "long_word_pct", "flesch_douma"},
		},
		{
			name:    "lix only",
			metrics: `["LIX"]`,
			present: []string{"lix", "avg_sentence_length", "long_word_pct"},
			absent:  []string{"long_word_count", "flesch_douma_status"},
		},
		{
			name:    "flesch only",
			metrics: `["flesch_douma"]`,
			present: []string{"flesch_douma", "flesch_douma_status"},
			absent:  []string{"lix", "long_word_count"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := `{"text": "Dit is een eenvoudige Nederlandse zin. Nog een simpele zin.", "metrics": ` + tt.metrics + `}`
			rec, payload := postAnalyze(t, newEngineHandler(), body)
			require.Equal(t, http.StatusOK, rec.Code)

			for _, key := range tt.present {
				assert.Contains(t, payload, key)
			}
			for _, key := range tt.absent {
				assert.NotContains(t, payload, key)
			}
		})
	}
}

func TestAnalyze_FleschGuardrailIsNull(t *testing.T) {
	t.Parallel()

	text := strings.TrimSpace(strings.Repeat("onwaarschijnlijkheidsberekening ", 4))
	rec, payload := postAnalyze(t, newEngineHandler(), `{"text": "`+text+`", "metrics": ["flesch_douma", "lix"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, payload, "flesch_douma")
	assert.Nil(t, payload["flesch_douma"])
	assert.Equal(t, "invalid_syllable_estimate", payload["flesch_douma_status"])
	assert.GreaterOrEqual(t, payload["long_word_pct"], 50.0)
}

func TestAnalyze_FleschWithoutWords(t *testing.T) {
	t.Parallel()

	rec, payload := postAnalyze(t, newEngineHandler(), `{"text": "...", "metrics": ["flesch_douma"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, payload["word_count"])
	assert.Contains(t, payload, "flesch_douma")
	assert.Nil(t, payload["flesch_douma"])
	assert.Equal(t, "invalid_syllable_estimate", payload["flesch_douma_status"])
}

func TestAnalyze_OutputToggles(t *testing.T) {
	t.Parallel()

	h := newEngineHandler(func(c *config.ReadabilityConfig) {
		c.Output.IncludeDebugFields = false
		c.Output.IncludeCEFRHint = false
	})
	rec, payload := postAnalyze(t, h, `{"text": "Een zin."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, payload, "syllables_per_word")
	assert.NotContains(t, payload, "cefr_hint")
	assert.NotContains(t, payload, "cefr_confidence")
}

func TestAnalyze_EchoesMeta(t *testing.T) {
	t.Parallel()

	rec, payload := postAnalyze(t, newEngineHandler(), `{"text": "Een zin.", "meta": {"source_type": "letter"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"source_type": "letter", "source_name": nil}, payload["meta"])
}

func TestAnalyze_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{"malformed json", `{"text": `, http.StatusBadRequest, "invalid request body"},
		{"blank text", `{"text": "   "}`, http.StatusBadRequest, "text cannot be empty"},
		{"missing text", `{}`, http.StatusBadRequest, "text cannot be empty"},
		{"too long", `{"text": "` + strings.Repeat("a", 101) + `"}`, http.StatusBadRequest, "text too long; please submit <= 100 characters"},
		{"unknown metric", `{"text": "Een zin.", "metrics": ["smog"]}`, http.StatusBadRequest, `unknown metric "smog"`},
		{"english", `{"text": "A sentence.", "language": "en"}`, http.StatusBadRequest, `unsupported language "en"`},
	}

	h := newEngineHandler(func(c *config.ReadabilityConfig) { c.Limits.MaxTextLength = 100 })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, payload := postAnalyze(t, h, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, payload["error"])
		})
	}
}

func TestAnalyze_BodyTooLarge(t *testing.T) {
	t.Parallel()

	svc := &mockReadabilityService{}
	h := NewReadabilityHandler(svc, 64, slog.Default())

	body := `{"text": "` + strings.Repeat("a", 200) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/readability", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAnalyze_InternalError(t *testing.T) {
	t.Parallel()

	svc := &mockReadabilityService{
		AnalyzeFunc: func(context.Context, readability.AnalyzeInput) (*readability.AnalyzeResult, error) {
			return nil, errors.New("boom")
		},
	}
	h := NewReadabilityHandler(svc, 1<<20, slog.Default())

	rec, payload := postAnalyze(t, h, `{"text": "Een zin."}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", payload["error"])
}

func TestHistory(t *testing.T) {
	t.Parallel()

	hash := domain.InputHash("Een zin.")
	flesch := domain.FleschStatusOK
	record := domain.AnalysisRecord{
		ID:            uuid.New(),
		RequestID:     "req-1",
		InputHash:     hash,
		Metrics:       []domain.Metric{domain.MetricFleschDouma, domain.MetricLIX},
		WordCount:     2,
		SentenceCount: 1,
		LIX:           2,
		Band:          domain.BandEasy,
		FleschStatus:  &flesch,
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	var got readability.HistoryInput
	svc := &mockReadabilityService{
		HistoryFunc: func(_ context.Context, input readability.HistoryInput) ([]domain.AnalysisRecord, error) {
			got = input
			return []domain.AnalysisRecord{record}, nil
		},
	}
	h := NewReadabilityHandler(svc, 1<<20, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze/readability/history?input_hash="+hash+"&limit=5", nil)
	rec := httptest.NewRecorder()
	h.History(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, readability.HistoryInput{InputHash: hash, Limit: 5}, got)

	var resp historyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, hash, resp.InputHash)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, record.ID.String(), resp.Items[0].ID)
	assert.Equal(t, domain.BandEasy, resp.Items[0].Band)
	assert.True(t, record.CreatedAt.Equal(resp.Items[0].CreatedAt))
}

func TestHistory_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		svcErr   error
		wantCode int
	}{
		{"bad limit", "?input_hash=x&limit=abc", nil, http.StatusBadRequest},
		{"zero limit", "?input_hash=x&limit=0", nil, http.StatusBadRequest},
		{"validation", "?input_hash=x", domain.NewValidationError("input_hash", "invalid"), http.StatusBadRequest},
		{"no store", "?input_hash=x", domain.ErrUnavailable, http.StatusServiceUnavailable},
		{"not found", "?input_hash=x", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mockReadabilityService{
				HistoryFunc: func(context.Context, readability.HistoryInput) ([]domain.AnalysisRecord, error) {
					return nil, tt.svcErr
				},
			}
			h := NewReadabilityHandler(svc, 1<<20, slog.Default())

			rec := httptest.NewRecorder()
			h.History(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analyze/readability/history"+tt.query, nil))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

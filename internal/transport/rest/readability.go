package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
	"github.com/openanonymiser/openanonymiser-backend/internal/service/readability"
)

// readabilityService defines the minimal interface needed by ReadabilityHandler.
type readabilityService interface {
	Analyze(ctx context.Context, input readability.AnalyzeInput) (*readability.AnalyzeResult, error)
	History(ctx context.Context, input readability.HistoryInput) ([]domain.AnalysisRecord, error)
}

// ReadabilityHandler serves the readability analysis endpoints.
type ReadabilityHandler struct {
	svc          readabilityService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewReadabilityHandler creates a ReadabilityHandler. Request bodies larger
// than maxBodyBytes are rejected with 413.
func NewReadabilityHandler(svc readabilityService, maxBodyBytes int64, logger *slog.Logger) *ReadabilityHandler {
	return &ReadabilityHandler{
		svc:          svc,
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "readability"),
	}
}

type analyzeRequest struct {
	Text     string             `json:"text"`
	Language string             `json:"language"`
	Metrics  []string           `json:"metrics"`
	Meta     *domain.SourceMeta `json:"meta"`
}

// analyzeResponse gates optional groups with omitempty pointers; a present
// group is always serialized, even when its value is zero.
type analyzeResponse struct {
	RequestID       string             `json:"request_id"`
	InputHash       string             `json:"input_hash"`
	Meta            *domain.SourceMeta `json:"meta"`
	WordCount       int                `json:"word_count"`
	SentenceCount   int                `json:"sentence_count"`
	MetricsComputed []domain.Metric    `json:"metrics_computed"`
	Judgement       domain.Judgement   `json:"judgement"`
	CEFRHint        *domain.CEFRLevel  `json:"cefr_hint,omitempty"`
	CEFRConfidence  *float64           `json:"cefr_confidence,omitempty"`

	LIX               *float64 `json:"lix,omitempty"`
	AvgSentenceLength *float64 `json:"avg_sentence_length,omitempty"`
	LongWordPct       *float64 `json:"long_word_pct,omitempty"`

	LongWordCount *int `json:"long_word_count,omitempty"`

	SyllablesPerWord *float64 `json:"syllables_per_word,omitempty"`

	FleschDouma       *nullableFloat       `json:"flesch_douma,omitempty"`
	FleschDoumaStatus *domain.FleschStatus `json:"flesch_douma_status,omitempty"`
}

// nullableFloat serializes as null when empty. Behind an omitempty pointer it
// distinguishes "not requested" (absent) from "not computable" (null).
type nullableFloat struct {
	v *float64
}

func (n nullableFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.v)
}

func toAnalyzeResponse(res *readability.AnalyzeResult) analyzeResponse {
	s := res.Stats
	resp := analyzeResponse{
		RequestID:       res.RequestID,
		InputHash:       res.InputHash,
		Meta:            res.Meta,
		WordCount:       s.WordCount,
		SentenceCount:   s.SentenceCount,
		MetricsComputed: res.Metrics,
		Judgement:       s.Judgement,
		CEFRHint:        s.ProficiencyHint,
		CEFRConfidence:  s.ProficiencyConfidence,
	}

	if res.Has(domain.MetricLIX) {
		resp.LIX = &s.LIX
		resp.AvgSentenceLength = &s.AvgSentenceLength
		resp.LongWordPct = &s.LongWordPct
	}
	if res.Has(domain.MetricStats) {
		resp.LongWordCount = &s.LongWordCount
	}
	if res.IncludeDebugFields {
		resp.SyllablesPerWord = s.SyllablesPerWord
	}
	if res.Has(domain.MetricFleschDouma) {
		resp.FleschDouma = &nullableFloat{v: s.FleschScore}
		resp.FleschDoumaStatus = s.FleschStatus
	}

	return resp
}

// Analyze handles POST /api/v1/analyze/readability.
func (h *ReadabilityHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Analyze(r.Context(), readability.AnalyzeInput{
		Text:     req.Text,
		Language: req.Language,
		Metrics:  req.Metrics,
		Meta:     req.Meta,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalyzeResponse(result))
}

type historyItem struct {
	ID                string               `json:"id"`
	RequestID         string               `json:"request_id"`
	Metrics           []domain.Metric      `json:"metrics"`
	WordCount         int                  `json:"word_count"`
	SentenceCount     int                  `json:"sentence_count"`
	LIX               float64              `json:"lix"`
	Band              domain.Band          `json:"band"`
	FleschDoumaStatus *domain.FleschStatus `json:"flesch_douma_status"`
	CreatedAt         time.Time            `json:"created_at"`
}

type historyResponse struct {
	InputHash string        `json:"input_hash"`
	Items     []historyItem `json:"items"`
}

// History handles GET /api/v1/analyze/readability/history.
func (h *ReadabilityHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var limit int
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		if n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be positive")
			return
		}
		limit = n
	}

	input := readability.HistoryInput{InputHash: q.Get("input_hash"), Limit: limit}
	records, err := h.svc.History(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]historyItem, 0, len(records))
	for _, rec := range records {
		items = append(items, historyItem{
			ID:                rec.ID.String(),
			RequestID:         rec.RequestID,
			Metrics:           rec.Metrics,
			WordCount:         rec.WordCount,
			SentenceCount:     rec.SentenceCount,
			LIX:               rec.LIX,
			Band:              rec.Band,
			FleschDoumaStatus: rec.FleschStatus,
			CreatedAt:         rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, historyResponse{InputHash: input.InputHash, Items: items})
}

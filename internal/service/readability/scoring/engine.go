package scoring

import (
	"fmt"
	"unicode/utf8"

	"github.com/openanonymiser/openanonymiser-backend/internal/config"
	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
)

// Engine computes readability statistics from a fixed configuration.
// It is safe for concurrent use.
type Engine struct {
	cfg config.ReadabilityConfig
}

// New creates an Engine over a copy of cfg. The caller is expected to have
// validated cfg (config.LoadReadability does).
func New(cfg config.ReadabilityConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() config.ReadabilityConfig {
	return e.cfg
}

// Compute scores text. The Flesch–Douma score is only computed when
// includeFlesch is set. Text without any word yields the degenerate result:
// zero metrics, an easy judgement and a low-confidence A1 hint.
//
// Callers should reject oversized input themselves; Compute re-checks the
// limit and returns a validation error rather than scoring it.
func (e *Engine) Compute(text string, includeFlesch bool) (domain.ReadabilityStats, error) {
	if n := utf8.RuneCountInString(text); n > e.cfg.Limits.MaxTextLength {
		return domain.ReadabilityStats{}, domain.NewValidationError("text",
			fmt.Sprintf("max %d characters (got %d)", e.cfg.Limits.MaxTextLength, n))
	}

	sentences, words := Segment(text)
	sentenceCount := max(1, len(sentences))

	if len(words) == 0 {
		return e.degenerate(sentenceCount, includeFlesch), nil
	}

	m := Measure(words, sentenceCount, e.cfg.LIX.LongWordMinLen)

	stats := domain.ReadabilityStats{
		WordCount:         m.WordCount,
		SentenceCount:     m.SentenceCount,
		LongWordCount:     m.LongWordCount,
		AvgSentenceLength: round2(m.AvgSentenceLength),
		LongWordPct:       round2(m.LongWordPct),
		LIX:               round2(m.LIX),
		Judgement:         Judge(m.LIX, m.LongWordPct, m.AvgSentenceLength, e.cfg.LIX.JudgementBands),
	}

	if includeFlesch {
		score, status := FleschDouma(m, e.cfg.FleschDouma.SyllablesPerWordMin, e.cfg.FleschDouma.SyllablesPerWordMax)
		stats.FleschScore = score
		stats.FleschStatus = &status
	}

	if e.cfg.Output.IncludeDebugFields {
		spw := round2(m.SyllablesPerWord)
		stats.SyllablesPerWord = &spw
	}

	if e.cfg.Output.IncludeCEFRHint {
		level, confidence := ProficiencyHint(m.LIX, e.cfg.Output.CEFRConfidenceCap)
		stats.ProficiencyHint = &level
		stats.ProficiencyConfidence = &confidence
	}

	return stats, nil
}

// degenerate scores text without words. A requested Flesch score is absent
// with the invalid estimate status: zero syllables per word is no estimate.
func (e *Engine) degenerate(sentenceCount int, includeFlesch bool) domain.ReadabilityStats {
	stats := domain.ReadabilityStats{
		SentenceCount: sentenceCount,
		Judgement:     judgementFor(domain.BandEasy, 0, 0),
	}

	if includeFlesch {
		status := domain.FleschStatusInvalidSyllableEstimate
		stats.FleschStatus = &status
	}

	if e.cfg.Output.IncludeDebugFields {
		var spw float64
		stats.SyllablesPerWord = &spw
	}

	if e.cfg.Output.IncludeCEFRHint {
		level := domain.CEFRLevelA1
		confidence := min(degenerateConfidence, e.cfg.Output.CEFRConfidenceCap)
		stats.ProficiencyHint = &level
		stats.ProficiencyConfidence = &confidence
	}

	return stats
}

package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrInvalid marks a configuration that violates a business rule.
var ErrInvalid = errors.New("invalid configuration")

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port must be in 1..65535 (got %d)", ErrInvalid, c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be > 0 (got %d)", ErrInvalid, c.Server.MaxBodyBytes)
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level != "" && !slices.Contains(validLogLevels, level) {
		return fmt.Errorf("%w: log.level must be one of %v (got %q)", ErrInvalid, validLogLevels, c.Log.Level)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("%w: rate_limit.requests_per_minute must be > 0 (got %d)", ErrInvalid, c.RateLimit.RequestsPerMinute)
	}

	if c.Database.Enabled() && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("%w: database.min_conns (%d) exceeds max_conns (%d)", ErrInvalid, c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.Enabled() && c.Database.HistoryRetentionDays < 1 {
		return fmt.Errorf("%w: database.history_retention_days must be >= 1 (got %d)", ErrInvalid, c.Database.HistoryRetentionDays)
	}

	return nil
}

// Validate checks the readability invariants: ascending judgement bands, an
// ordered syllable guardrail, a long-word length of at least two letters and
// a confidence cap within (0, 1].
func (c *ReadabilityConfig) Validate() error {
	if c.Limits.MaxTextLength <= 0 {
		return fmt.Errorf("%w: limits.max_text_length must be > 0 (got %d)", ErrInvalid, c.Limits.MaxTextLength)
	}

	if c.LIX.LongWordMinLen < 2 {
		return fmt.Errorf("%w: lix.long_word_min_len must be >= 2 (got %d)", ErrInvalid, c.LIX.LongWordMinLen)
	}

	if err := c.LIX.JudgementBands.validate(); err != nil {
		return fmt.Errorf("lix.judgement_bands: %w", err)
	}

	f := c.FleschDouma
	if !isFinite(f.SyllablesPerWordMin) || !isFinite(f.SyllablesPerWordMax) {
		return fmt.Errorf("%w: flesch_douma guardrail must be finite (got [%v, %v])",
			ErrInvalid, f.SyllablesPerWordMin, f.SyllablesPerWordMax)
	}
	if f.SyllablesPerWordMin < 0 {
		return fmt.Errorf("%w: flesch_douma.syllables_per_word_min must be >= 0 (got %v)", ErrInvalid, f.SyllablesPerWordMin)
	}
	if f.SyllablesPerWordMin >= f.SyllablesPerWordMax {
		return fmt.Errorf("%w: flesch_douma.syllables_per_word_min (%v) must be < syllables_per_word_max (%v)",
			ErrInvalid, f.SyllablesPerWordMin, f.SyllablesPerWordMax)
	}

	if math.IsNaN(c.Output.CEFRConfidenceCap) || c.Output.CEFRConfidenceCap <= 0 || c.Output.CEFRConfidenceCap > 1 {
		return fmt.Errorf("%w: output.cefr_confidence_cap must be in (0, 1] (got %v)", ErrInvalid, c.Output.CEFRConfidenceCap)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (b JudgementBands) validate() error {
	if !(b.Easy < b.Medium && b.Medium < b.Complex) {
		return fmt.Errorf("%w: bands must be strictly increasing (easy=%v, medium=%v, complex=%v)",
			ErrInvalid, b.Easy, b.Medium, b.Complex)
	}
	return nil
}

package readability

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
)

// LanguageDutch is the only language the engine is calibrated for.
const LanguageDutch = "nl"

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// AnalyzeInput holds the parameters of one readability analysis.
type AnalyzeInput struct {
	Text     string
	Language string   // empty = nl
	Metrics  []string // empty = default set
	Meta     *domain.SourceMeta
}

// Validate checks all fields against maxTextLength and collects all errors.
func (i AnalyzeInput) Validate(maxTextLength int) error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "text cannot be empty"})
	}
	if n := utf8.RuneCountInString(text); n > maxTextLength {
		errs = append(errs, domain.FieldError{
			Field:   "text",
			Message: fmt.Sprintf("text too long; please submit <= %d characters", maxTextLength),
		})
	}

	if lang := normalizeLanguage(i.Language); lang != LanguageDutch {
		errs = append(errs, domain.FieldError{Field: "language", Message: fmt.Sprintf("unsupported language %q", lang)})
	}

	for _, name := range i.Metrics {
		if m := domain.Metric(normalizeMetric(name)); !m.IsValid() {
			errs = append(errs, domain.FieldError{Field: "metrics", Message: fmt.Sprintf("unknown metric %q", name)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResolveMetrics turns requested metric names into a sorted, de-duplicated
// set. Unknown names are skipped; Validate reports them. An empty request
// yields the default set, plus flesch_douma when fleschByDefault is set.
func ResolveMetrics(names []string, fleschByDefault bool) []domain.Metric {
	var out []domain.Metric
	for _, name := range names {
		if m := domain.Metric(normalizeMetric(name)); m.IsValid() {
			out = append(out, m)
		}
	}

	if len(out) == 0 {
		out = domain.DefaultMetrics()
		if fleschByDefault {
			out = append(out, domain.MetricFleschDouma)
		}
	}

	slices.Sort(out)
	return slices.Compact(out)
}

// HistoryInput holds the parameters of a history lookup.
type HistoryInput struct {
	InputHash string
	Limit     int // 0 = DefaultHistoryLimit
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.InputHash == "" {
		errs = append(errs, domain.FieldError{Field: "input_hash", Message: "required"})
	} else if !domain.IsInputHash(i.InputHash) {
		errs = append(errs, domain.FieldError{Field: "input_hash", Message: "must be sha256:<64 hex characters>"})
	}
	if i.Limit < 0 || i.Limit > MaxHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxHistoryLimit)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return LanguageDutch
	}
	return lang
}

func normalizeMetric(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

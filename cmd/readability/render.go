package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
	"github.com/openanonymiser/openanonymiser-backend/internal/service/readability"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Width(22)
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Italic(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Padding(0, 1)

	bandColors = map[domain.Band]lipgloss.Color{
		domain.BandEasy:        "#52C41A",
		domain.BandMedium:      "#C89A3A",
		domain.BandComplex:     "#FA8C16",
		domain.BandVeryComplex: "#FF4D4F",
	}
)

// report is the CLI view of an analysis. Field gating matches the HTTP API.
type report struct {
	InputHash       string            `json:"input_hash"                    yaml:"input_hash"`
	WordCount       int               `json:"word_count"                    yaml:"word_count"`
	SentenceCount   int               `json:"sentence_count"                yaml:"sentence_count"`
	MetricsComputed []domain.Metric   `json:"metrics_computed"              yaml:"metrics_computed"`
	Judgement       domain.Judgement  `json:"judgement"                     yaml:"judgement"`
	CEFRHint        *domain.CEFRLevel `json:"cefr_hint,omitempty"           yaml:"cefr_hint,omitempty"`
	CEFRConfidence  *float64          `json:"cefr_confidence,omitempty"     yaml:"cefr_confidence,omitempty"`

	LIX               *float64 `json:"lix,omitempty"                 yaml:"lix,omitempty"`
	AvgSentenceLength *float64 `json:"avg_sentence_length,omitempty" yaml:"avg_sentence_length,omitempty"`
	LongWordPct       *float64 `json:"long_word_pct,omitempty"       yaml:"long_word_pct,omitempty"`
	LongWordCount     *int     `json:"long_word_count,omitempty"     yaml:"long_word_count,omitempty"`
	SyllablesPerWord  *float64 `json:"syllables_per_word,omitempty"  yaml:"syllables_per_word,omitempty"`

	FleschDouma       *float64             `json:"flesch_douma,omitempty"        yaml:"flesch_douma,omitempty"`
	FleschDoumaStatus *domain.FleschStatus `json:"flesch_douma_status,omitempty" yaml:"flesch_douma_status,omitempty"`
}

func newReport(res *readability.AnalyzeResult) report {
	s := res.Stats
	r := report{
		InputHash:       res.InputHash,
		WordCount:       s.WordCount,
		SentenceCount:   s.SentenceCount,
		MetricsComputed: res.Metrics,
		Judgement:       s.Judgement,
		CEFRHint:        s.ProficiencyHint,
		CEFRConfidence:  s.ProficiencyConfidence,
	}

	if res.Has(domain.MetricLIX) {
		r.LIX = &s.LIX
		r.AvgSentenceLength = &s.AvgSentenceLength
		r.LongWordPct = &s.LongWordPct
	}
	if res.Has(domain.MetricStats) {
		r.LongWordCount = &s.LongWordCount
	}
	if res.IncludeDebugFields {
		r.SyllablesPerWord = s.SyllablesPerWord
	}
	if res.Has(domain.MetricFleschDouma) {
		r.FleschDouma = s.FleschScore
		r.FleschDoumaStatus = s.FleschStatus
	}

	return r
}

func render(w io.Writer, format string, r report) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		_, err := fmt.Fprintln(w, renderText(r))
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func renderText(r report) string {
	var lines []string
	row := func(label, value string) {
		lines = append(lines, labelStyle.Render(label)+value)
	}

	j := r.Judgement
	band := lipgloss.NewStyle().Bold(true).Foreground(bandColors[j.Band]).Render(j.Label)
	lines = append(lines, titleStyle.Render("Readability")+"  "+band, "")

	row("words", strconv.Itoa(r.WordCount))
	row("sentences", strconv.Itoa(r.SentenceCount))
	if r.LIX != nil {
		row("LIX", formatFloat(*r.LIX))
		row("avg sentence length", formatFloat(*r.AvgSentenceLength))
		row("long words", formatFloat(*r.LongWordPct)+"%")
	}
	if r.LongWordCount != nil {
		row("long word count", strconv.Itoa(*r.LongWordCount))
	}
	if r.SyllablesPerWord != nil {
		row("syllables per word", formatFloat(*r.SyllablesPerWord))
	}
	if r.FleschDoumaStatus != nil {
		value := "n/a"
		if r.FleschDouma != nil {
			value = formatFloat(*r.FleschDouma)
		}
		row("Flesch-Douma", fmt.Sprintf("%s (%s)", value, *r.FleschDoumaStatus))
	}
	if r.CEFRHint != nil {
		row("CEFR hint", fmt.Sprintf("%s (confidence %s)", *r.CEFRHint, formatFloat(*r.CEFRConfidence)))
	}

	lines = append(lines, "")
	row("suitable for", strings.Join(j.SuitableFor, ", "))
	row("not suitable for", strings.Join(j.NotSuitableFor, ", "))
	row("drivers", strings.Join(j.PrimaryDrivers, ", "))
	for _, n := range j.Notes {
		lines = append(lines, noteStyle.Render("* "+n))
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

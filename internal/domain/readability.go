package domain

import (
	"time"

	"github.com/google/uuid"
)

// Judgement is the qualitative, human-readable verdict attached to a
// readability result.
type Judgement struct {
	Band           Band     `json:"band"           yaml:"band"`
	Label          string   `json:"label"          yaml:"label"`
	SuitableFor    []string `json:"suitable_for"    yaml:"suitable_for"`
	NotSuitableFor []string `json:"not_suitable_for" yaml:"not_suitable_for"`
	PrimaryDrivers []string `json:"primary_drivers" yaml:"primary_drivers"`
	Notes          []string `json:"notes"          yaml:"notes"`
}

// ReadabilityStats holds the metrics computed for one text. Float fields are
// rounded to two decimals. Optional fields are nil when not computed or
// withheld by configuration.
type ReadabilityStats struct {
	WordCount         int
	SentenceCount     int
	LongWordCount     int
	AvgSentenceLength float64
	LongWordPct       float64
	LIX               float64

	// FleschScore is nil when not requested or when the guardrail tripped.
	FleschScore  *float64
	FleschStatus *FleschStatus

	SyllablesPerWord *float64

	ProficiencyHint       *CEFRLevel
	ProficiencyConfidence *float64

	Judgement Judgement
}

// SourceMeta is opaque caller metadata echoed back with a result.
type SourceMeta struct {
	SourceType *string `json:"source_type"`
	SourceName *string `json:"source_name"`
}

// AnalysisRecord is the persisted fingerprint of one readability analysis.
// It never carries the analysed text itself.
type AnalysisRecord struct {
	ID            uuid.UUID
	RequestID     string
	InputHash     string
	Metrics       []Metric
	WordCount     int
	SentenceCount int
	LIX           float64
	Band          Band
	FleschStatus  *FleschStatus
	CreatedAt     time.Time
}

package domain

// Band is the qualitative readability band derived from the LIX score.
type Band string

const (
	BandEasy        Band = "easy"
	BandMedium      Band = "medium"
	BandComplex     Band = "complex"
	BandVeryComplex Band = "very_complex"
)

func (b Band) String() string { return string(b) }

func (b Band) IsValid() bool {
	switch b {
	case BandEasy, BandMedium, BandComplex, BandVeryComplex:
		return true
	}
	return false
}

// FleschStatus records whether the Flesch–Douma estimate passed its guardrail.
type FleschStatus string

const (
	FleschStatusOK                      FleschStatus = "ok"
	FleschStatusInvalidSyllableEstimate FleschStatus = "invalid_syllable_estimate"
)

func (s FleschStatus) String() string { return string(s) }

func (s FleschStatus) IsValid() bool {
	switch s {
	case FleschStatusOK, FleschStatusInvalidSyllableEstimate:
		return true
	}
	return false
}

// CEFRLevel is an indicative proficiency level label. It is a heuristic hint,
// never a certified language assessment.
type CEFRLevel string

const (
	CEFRLevelA1 CEFRLevel = "A1"
	CEFRLevelA2 CEFRLevel = "A2"
	CEFRLevelB1 CEFRLevel = "B1"
	CEFRLevelB2 CEFRLevel = "B2"
	CEFRLevelC1 CEFRLevel = "C1"
	CEFRLevelC2 CEFRLevel = "C2"
)

func (l CEFRLevel) String() string { return string(l) }

func (l CEFRLevel) IsValid() bool {
	switch l {
	case CEFRLevelA1, CEFRLevelA2, CEFRLevelB1, CEFRLevelB2, CEFRLevelC1, CEFRLevelC2:
		return true
	}
	return false
}

// Metric names a group of output fields a caller can request.
type Metric string

const (
	MetricLIX         Metric = "lix"
	MetricStats       Metric = "stats"
	MetricFleschDouma Metric = "flesch_douma"
)

func (m Metric) String() string { return string(m) }

func (m Metric) IsValid() bool {
	switch m {
	case MetricLIX, MetricStats, MetricFleschDouma:
		return true
	}
	return false
}

// DefaultMetrics is the metric set used when the caller requests none.
func DefaultMetrics() []Metric {
	return []Metric{MetricLIX, MetricStats}
}

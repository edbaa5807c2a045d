package scoring

import "github.com/openanonymiser/openanonymiser-backend/internal/domain"

// degenerateConfidence is the base confidence for text without words.
const degenerateConfidence = 0.3

// cefrBands map half-open LIX ranges [previous upper, upper) to a level.
// Anything at or above the last upper bound is C2.
var cefrBands = []struct {
	upper      float64
	level      domain.CEFRLevel
	confidence float64
}{
	{upper: 25, level: domain.CEFRLevelA1, confidence: 0.6},
	{upper: 30, level: domain.CEFRLevelA2, confidence: 0.55},
	{upper: 40, level: domain.CEFRLevelB1, confidence: 0.5},
	{upper: 50, level: domain.CEFRLevelB2, confidence: 0.45},
	{upper: 60, level: domain.CEFRLevelC1, confidence: 0.4},
}

const (
	topLevel      = domain.CEFRLevelC2
	topConfidence = 0.35
)

// ProficiencyHint maps a LIX score to an indicative CEFR level. The
// confidence falls as the level rises and never exceeds confidenceCap.
// This is a rough heuristic, not a proficiency assessment.
func ProficiencyHint(lix, confidenceCap float64) (domain.CEFRLevel, float64) {
	for _, b := range cefrBands {
		if lix < b.upper {
			return b.level, min(b.confidence, confidenceCap)
		}
	}
	return topLevel, min(topConfidence, confidenceCap)
}

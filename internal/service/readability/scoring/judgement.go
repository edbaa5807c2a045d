package scoring

import (
	"slices"

	"github.com/openanonymiser/openanonymiser-backend/internal/config"
	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
)

// Driver thresholds are fixed; only the band boundaries are configurable.
const (
	longWordDriverPct        = 35.0
	longSentenceDriverLength = 20.0
)

const (
	DriverLongWords     = "high proportion of long words"
	DriverLongSentences = "long sentences"
	DriverAverage       = "average sentence and word length"
)

// judgementNotes are appended to every judgement.
var judgementNotes = []string{
	"Compound words can raise the long-word percentage without making the text harder to read.",
	"The CEFR hint is indicative only and is not a certified language assessment.",
}

type bandProfile struct {
	label          string
	suitableFor    []string
	notSuitableFor []string
}

var bandProfiles = map[domain.Band]bandProfile{
	domain.BandEasy: {
		label:          "Easy to read",
		suitableFor:    []string{"broad audiences", "readers with limited literacy", "public information and instructions"},
		notSuitableFor: []string{"detailed technical or legal documentation"},
	},
	domain.BandMedium: {
		label:          "Fairly easy to read",
		suitableFor:    []string{"general adult audiences", "news and informational texts"},
		notSuitableFor: []string{"readers with limited literacy"},
	},
	domain.BandComplex: {
		label:          "Difficult to read",
		suitableFor:    []string{"professionals", "highly educated readers", "policy documents"},
		notSuitableFor: []string{"general public", "readers with limited literacy"},
	},
	domain.BandVeryComplex: {
		label:          "Very difficult to read",
		suitableFor:    []string{"domain experts", "academic and legal texts"},
		notSuitableFor: []string{"general public", "readers with limited literacy", "public service communication"},
	},
}

// SelectBand partitions LIX against ascending boundaries:
//
//	[-inf, easy) easy, [easy, medium) medium, [medium, complex) complex, [complex, +inf) very_complex
func SelectBand(lix float64, bands config.JudgementBands) domain.Band {
	switch {
	case lix < bands.Easy:
		return domain.BandEasy
	case lix < bands.Medium:
		return domain.BandMedium
	case lix < bands.Complex:
		return domain.BandComplex
	default:
		return domain.BandVeryComplex
	}
}

// Judge builds the judgement for a text's LIX, long-word percentage and
// average sentence length.
func Judge(lix, longWordPct, avgSentenceLength float64, bands config.JudgementBands) domain.Judgement {
	return judgementFor(SelectBand(lix, bands), longWordPct, avgSentenceLength)
}

func judgementFor(band domain.Band, longWordPct, avgSentenceLength float64) domain.Judgement {
	profile := bandProfiles[band]
	return domain.Judgement{
		Band:           band,
		Label:          profile.label,
		SuitableFor:    slices.Clone(profile.suitableFor),
		NotSuitableFor: slices.Clone(profile.notSuitableFor),
		PrimaryDrivers: drivers(longWordPct, avgSentenceLength),
		Notes:          slices.Clone(judgementNotes),
	}
}

// drivers never returns an empty list.
func drivers(longWordPct, avgSentenceLength float64) []string {
	var out []string
	if longWordPct >= longWordDriverPct {
		out = append(out, DriverLongWords)
	}
	if avgSentenceLength >= longSentenceDriverLength {
		out = append(out, DriverLongSentences)
	}
	if len(out) == 0 {
		out = append(out, DriverAverage)
	}
	return out
}

package scoring

import (
	"math"
	"strconv"
	"unicode"

	"github.com/openanonymiser/openanonymiser-backend/internal/domain"
)

// Metrics are the unrounded core statistics of a text.
type Metrics struct {
	WordCount     int
	SentenceCount int
	LongWordCount int
	SyllableCount int

	AvgSentenceLength float64
	LongWordPct       float64
	// LIX is exactly AvgSentenceLength + LongWordPct.
	LIX              float64
	SyllablesPerWord float64
}

// Measure computes the core statistics for words spread over sentenceCount
// sentences. A word is long when it has at least longWordMinLen letters.
// With no words or no sentences every ratio is zero.
//
//	avg = words / sentences
//	pct = 100 * long / words
//	LIX = avg + pct
func Measure(words []string, sentenceCount, longWordMinLen int) Metrics {
	m := Metrics{
		WordCount:     len(words),
		SentenceCount: sentenceCount,
	}
	if m.WordCount == 0 || sentenceCount <= 0 {
		return m
	}

	for _, w := range words {
		if letterCount(w) > longWordMinLen-1 {
			m.LongWordCount++
		}
		m.SyllableCount += EstimateSyllables(w)
	}

	wc := float64(m.WordCount)
	m.AvgSentenceLength = wc / float64(sentenceCount)
	m.LongWordPct = float64(m.LongWordCount) * 100.0 / wc
	m.LIX = m.AvgSentenceLength + m.LongWordPct
	m.SyllablesPerWord = float64(m.SyllableCount) / wc

	return m
}

// FleschDouma returns the indicative Flesch–Douma reading ease for m, or nil
// with FleschStatusInvalidSyllableEstimate when the syllables-per-word ratio
// falls outside [minSPW, maxSPW]. Higher scores mean easier text.
//
//	score = 206.835 - 77.0*wps - 0.93*(spw*100)/10
//
// The constants are reproduced as-is; sources disagree on the Dutch variant.
func FleschDouma(m Metrics, minSPW, maxSPW float64) (*float64, domain.FleschStatus) {
	if m.WordCount == 0 || m.SentenceCount <= 0 {
		return nil, domain.FleschStatusInvalidSyllableEstimate
	}

	spw := m.SyllablesPerWord
	if spw < minSPW || spw > maxSPW {
		return nil, domain.FleschStatusInvalidSyllableEstimate
	}

	wps := m.AvgSentenceLength
	// The explicit conversions forbid fused multiply-add, keeping the score
	// identical on every architecture.
	score := 206.835 - float64(77.0*wps) - float64(0.93*(spw*100.0))/10.0
	score = round2(score)

	return &score, domain.FleschStatusOK
}

func letterCount(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// round2 rounds to two decimals on the exact binary value, ties to even, so
// 1.125 gives 1.12 and 2.675 (stored as 2.67499...) gives 2.67.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

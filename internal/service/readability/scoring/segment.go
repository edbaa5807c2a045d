// Package scoring implements the readability scoring engine for Dutch text:
// segmentation, a vowel-group syllable heuristic, LIX and an indicative
// Flesch–Douma ease score, a capped CEFR hint, and a banded judgement.
//
// Every function is a pure computation over its arguments; an Engine holds
// nothing but an immutable copy of its configuration.
package scoring

import (
	"regexp"
	"strings"
)

var (
	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)
	// Letters including Latin-1 accented forms, plus apostrophe and hyphen
	// so that "zo'n" and "e-mail" stay single tokens.
	wordPattern = regexp.MustCompile(`[A-Za-zÀ-ÖØ-öø-ÿ'-]+`)
)

// Segment splits text into sentences and word tokens.
//
// Sentences are the trimmed, non-empty fragments between runs of '.', '!'
// and '?'. When no fragment survives, the whole trimmed text is the single
// sentence, so the result always holds at least one sentence.
func Segment(text string) (sentences []string, words []string) {
	return splitSentences(text), tokenizeWords(text)
}

func splitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceSplitPattern.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			sentences = append(sentences, part)
		}
	}
	if len(sentences) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return sentences
}

func tokenizeWords(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

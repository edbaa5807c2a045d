package scoring

import "regexp"

var vowelGroupPattern = regexp.MustCompile(`[aeiouyáéíóúàèìòùäëïöüAEIOUYÁÉÍÓÚÀÈÌÒÙÄËÏÖÜ]+`)

// EstimateSyllables approximates the syllable count of a Dutch word as the
// number of contiguous vowel groups. Any non-empty word counts at least one
// syllable, vowels or not. Diphthongs count once and compounds are often
// off by one; the estimate only feeds the syllables-per-word ratio.
func EstimateSyllables(word string) int {
	if word == "" {
		return 0
	}
	return max(1, len(vowelGroupPattern.FindAllStringIndex(word, -1)))
}

package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// inputHashPrefix names the digest algorithm in an input fingerprint.
const inputHashPrefix = "sha256:"

// NormalizeText prepares text for fingerprinting:
//   - trims leading/trailing whitespace
//   - compresses every whitespace run (spaces, tabs, newlines) into one space
//
// Case, diacritics and punctuation are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// InputHash returns the "sha256:<hex>" fingerprint of the normalized text.
// Texts differing only in surrounding or repeated whitespace share a hash.
func InputHash(text string) string {
	sum := sha256.Sum256([]byte(NormalizeText(text)))
	return inputHashPrefix + hex.EncodeToString(sum[:])
}

// IsInputHash reports whether s looks like a value produced by InputHash.
func IsInputHash(s string) bool {
	hexPart, ok := strings.CutPrefix(s, inputHashPrefix)
	if !ok || len(hexPart) != sha256.Size*2 {
		return false
	}
	for _, r := range hexPart {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}
	return true
}

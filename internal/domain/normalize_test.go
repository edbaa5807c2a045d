package domain

import (
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  Dit is tekst.  ", want: "Dit is tekst."},
		{name: "case preserved", input: "Hallo Wereld", want: "Hallo Wereld"},
		{name: "compress multiple spaces", input: "Dit   is   tekst.", want: "Dit is tekst."},
		{name: "newlines and tabs", input: "een\n\ttwee\r\ndrie", want: "een twee drie"},
		{name: "diacritics preserved", input: "Café  één", want: "Café één"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "single word", input: "woord", want: "woord"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInputHash_Format(t *testing.T) {
	t.Parallel()

	h := InputHash("Hallo wereld.")
	if !strings.HasPrefix(h, "sha256:") {
		t.Fatalf("hash %q lacks sha256: prefix", h)
	}
	if len(h) != len("sha256:")+64 {
		t.Fatalf("hash %q has length %d", h, len(h))
	}
	if !IsInputHash(h) {
		t.Fatalf("IsInputHash(%q) = false", h)
	}
}

func TestInputHash_WhitespaceInsensitive(t *testing.T) {
	t.Parallel()

	if InputHash("  Dit   is   tekst.  ") != InputHash("Dit is tekst.") {
		t.Error("hashes differ for texts differing only in whitespace")
	}
}

func TestInputHash_DifferentText(t *testing.T) {
	t.Parallel()

	if InputHash("Tekst een.") == InputHash("Tekst twee.") {
		t.Error("different texts produced the same hash")
	}
}

func TestIsInputHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "valid", in: InputHash("x"), want: true},
		{name: "no prefix", in: strings.Repeat("a", 64), want: false},
		{name: "short", in: "sha256:abc", want: false},
		{name: "uppercase hex", in: "sha256:" + strings.Repeat("A", 64), want: false},
		{name: "empty", in: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsInputHash(tt.in); got != tt.want {
				t.Errorf("IsInputHash(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

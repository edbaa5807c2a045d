package scoring

import (
	"slices"
	"testing"
)

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		text          string
		wantSentences []string
		wantWords     []string
	}{
		{
			name:          "two sentences",
			text:          "Dit is een zin. Nog een!",
			wantSentences: []string{"Dit is een zin", "Nog een"},
			wantWords:     []string{"Dit", "is", "een", "zin", "Nog", "een"},
		},
		{
			name:          "punctuation runs count once",
			text:          "Echt?!... Ja.",
			wantSentences: []string{"Echt", "Ja"},
			wantWords:     []string{"Echt", "Ja"},
		},
		{
			name:          "no terminator",
			text:          "  zonder punt  ",
			wantSentences: []string{"zonder punt"},
			wantWords:     []string{"zonder", "punt"},
		},
		{
			name:          "apostrophe and hyphen stay in word",
			text:          "Zo'n e-mail is oké.",
			wantSentences: []string{"Zo'n e-mail is oké"},
			wantWords:     []string{"Zo'n", "e-mail", "is", "oké"},
		},
		{
			name:          "digits split words",
			text:          "Het jaar 2024 was goed.",
			wantSentences: []string{"Het jaar 2024 was goed"},
			wantWords:     []string{"Het", "jaar", "was", "goed"},
		},
		{
			name:          "only punctuation falls back to whole text",
			text:          " ...!? ",
			wantSentences: []string{"...!?"},
			wantWords:     nil,
		},
		{
			name:          "empty",
			text:          "",
			wantSentences: []string{""},
			wantWords:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentences, words := Segment(tt.text)
			if !slices.Equal(sentences, tt.wantSentences) {
				t.Errorf("sentences = %q, want %q", sentences, tt.wantSentences)
			}
			if !slices.Equal(words, tt.wantWords) {
				t.Errorf("words = %q, want %q", words, tt.wantWords)
			}
		})
	}
}

func TestSegment_AlwaysOneSentence(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "!!!", "a", "Een. Twee. Drie."} {
		sentences, _ := Segment(text)
		if len(sentences) < 1 {
			t.Errorf("Segment(%q) returned no sentences", text)
		}
	}
}

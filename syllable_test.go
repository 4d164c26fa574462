package textmetrics

import "testing"

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
		desc     string
	}{
		{"the", 1, "Single vowel"},
		{"beautiful", 3, "Vowel runs counted once"},
		{"", 0, "Empty word"},
		{"123", 0, "No letters"},
		{"rhythm", 1, "No vowels clamps to one"},
		{"boxes", 1, "Silent es"},
		{"wanted", 1, "Silent ed"},
		{"bed", 1, "Single run keeps ed"},
		{"Amazing!", 3, "Case and punctuation ignored"},
		{"queue", 1, "Long vowel run"},
		{"wonderful", 3, "Three runs"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := CountSyllables(tt.word); got != tt.expected {
				t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.expected)
			}
		})
	}
}

func TestCountSyllablesMinimum(t *testing.T) {
	for _, w := range []string{"a", "b", "xyz", "es", "ed", "i"} {
		if got := CountSyllables(w); got < 1 {
			t.Errorf("CountSyllables(%q) = %d, want at least 1", w, got)
		}
	}
}

func TestCountComplexWords(t *testing.T) {
	tests := []struct {
		words    []string
		expected int
	}{
		{nil, 0},
		{[]string{"the", "cat"}, 0},
		{[]string{"beautiful", "cat", "organization"}, 2},
		{[]string{"123", "amazing", "amazing"}, 2},
	}

	for _, tt := range tests {
		got := CountComplexWords(tt.words)
		if got != tt.expected {
			t.Errorf("CountComplexWords(%v) = %d, want %d", tt.words, got, tt.expected)
		}
		if got > len(tt.words) {
			t.Errorf("CountComplexWords(%v) = %d exceeds word count", tt.words, got)
		}
	}
}

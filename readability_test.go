package textmetrics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMeasureReadability(t *testing.T) {
	doc := Document{Sentences: [][]string{
		{"i", "love", "great", "product"},
		{"amazing", "wonderful"},
	}}
	r := MeasureReadability(doc)

	if r.WordCount != 6 || r.SentenceCount != 2 {
		t.Fatalf("counts = (%d words, %d sentences), want (6, 2)", r.WordCount, r.SentenceCount)
	}
	if r.ComplexWordCount != 2 {
		t.Errorf("ComplexWordCount = %d, want 2", r.ComplexWordCount)
	}
	if !almostEqual(r.AvgWordsPerSentence, 3) {
		t.Errorf("AvgWordsPerSentence = %f, want 3", r.AvgWordsPerSentence)
	}
	if !almostEqual(r.PercentComplexWords, 2.0/6.0) {
		t.Errorf("PercentComplexWords = %f, want %f", r.PercentComplexWords, 2.0/6.0)
	}
	if !almostEqual(r.FogIndex, 0.4*(3+2.0/6.0)) {
		t.Errorf("FogIndex = %f, want %f", r.FogIndex, 0.4*(3+2.0/6.0))
	}
	if r.TotalCharacters != 33 || !almostEqual(r.AvgWordLength, 5.5) {
		t.Errorf("characters = %d avg %f, want 33 avg 5.5", r.TotalCharacters, r.AvgWordLength)
	}
	if r.TotalSyllables != 12 || !almostEqual(r.SyllablesPerWord, 2) {
		t.Errorf("syllables = %d per word %f, want 12 per word 2", r.TotalSyllables, r.SyllablesPerWord)
	}
}

func TestMeasureReadabilityZeroDenominators(t *testing.T) {
	tests := []struct {
		doc       Document
		sentences int
		desc      string
	}{
		{Document{}, 0, "No sentences"},
		{Document{Sentences: [][]string{{}, {}}}, 2, "Only empty sentences"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			r := MeasureReadability(tt.doc)
			if r.SentenceCount != tt.sentences {
				t.Errorf("SentenceCount = %d, want %d", r.SentenceCount, tt.sentences)
			}
			for name, v := range map[string]float64{
				"AvgWordsPerSentence": r.AvgWordsPerSentence,
				"PercentComplexWords": r.PercentComplexWords,
				"FogIndex":            r.FogIndex,
				"AvgWordLength":       r.AvgWordLength,
				"SyllablesPerWord":    r.SyllablesPerWord,
			} {
				if v != 0 {
					t.Errorf("%s = %f, want 0", name, v)
				}
			}
		})
	}
}

func TestEmptySentencesCountTowardsAverage(t *testing.T) {
	doc := Document{Sentences: [][]string{{"one", "two"}, {}}}
	if got := MeasureReadability(doc).AvgWordsPerSentence; !almostEqual(got, 1) {
		t.Errorf("AvgWordsPerSentence = %f, want 1", got)
	}
}

func TestCountPersonalPronouns(t *testing.T) {
	tests := []struct {
		text     string
		expected int
		desc     string
	}{
		{"The US economy grew, but we grew too.", 1, "Country acronym excluded"},
		{"I love this great product. It is amazing and wonderful.", 1, "Single I"},
		{"Let us go; they told us.", 2, "Lowercase us counted"},
		{"We, my friends and I, kept ours.", 4, "Mixed pronouns"},
		{"WE said MY name.", 2, "Uppercase pronouns other than US"},
		{"Us first.", 1, "Title case Us counted"},
		{"Items in the museum, Iowa, myth.", 0, "No partial matches"},
		{"", 0, "Empty text"},
		{"Iñaki met us.", 1, "Non-ASCII letter after I"},
		{"usé", 0, "Non-ASCII letter after us"},
		{"Weßling", 0, "Non-ASCII letter inside word"},
		{"my_var we2 I", 1, "Underscore and digits join words"},
		{"(we) [us] \"my\"", 3, "Punctuation delimits words"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := CountPersonalPronouns(tt.text); got != tt.expected {
				t.Errorf("CountPersonalPronouns(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

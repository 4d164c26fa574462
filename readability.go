package textmetrics

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Readability holds the length and complexity statistics of a document.
type Readability struct {
	WordCount           int
	SentenceCount       int
	ComplexWordCount    int
	TotalCharacters     int
	TotalSyllables      int
	AvgWordsPerSentence float64 // Also reported as the average sentence length.
	PercentComplexWords float64 // Fraction of complex words, 0..1.
	FogIndex            float64
	AvgWordLength       float64
	SyllablesPerWord    float64
}

// MeasureReadability computes readability statistics for a cleaned document.
// Sentences with no tokens still count towards the sentence total. Every
// ratio with a zero denominator is reported as 0.
func MeasureReadability(doc Document) Readability {
	words := doc.Words()
	r := Readability{
		WordCount:        len(words),
		SentenceCount:    len(doc.Sentences),
		ComplexWordCount: CountComplexWords(words),
	}
	for _, w := range words {
		r.TotalCharacters += utf8.RuneCountInString(w)
		r.TotalSyllables += CountSyllables(w)
	}

	r.AvgWordsPerSentence = ratio(r.WordCount, r.SentenceCount)
	r.PercentComplexWords = ratio(r.ComplexWordCount, r.WordCount)
	r.FogIndex = 0.4 * (r.AvgWordsPerSentence + r.PercentComplexWords)
	r.AvgWordLength = ratio(r.TotalCharacters, r.WordCount)
	r.SyllablesPerWord = ratio(r.TotalSyllables, r.WordCount)
	return r
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

var pronounRE = regexp.MustCompile(`(?i)(i|we|my|ours|us)`)

// CountPersonalPronouns counts whole-word occurrences of I, we, my, ours and
// us in raw text, ignoring case. The uppercase "US" is the country and is not
// counted.
func CountPersonalPronouns(text string) int {
	n := 0
	for _, loc := range pronounRE.FindAllStringIndex(text, -1) {
		if !atWordBoundary(text, loc[0], loc[1]) {
			continue
		}
		if text[loc[0]:loc[1]] == "US" {
			continue
		}
		n++
	}
	return n
}

// atWordBoundary reports whether text[start:end] has no word rune on either
// side. Word runes are Unicode letters, numbers and '_'.
func atWordBoundary(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

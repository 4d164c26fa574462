package textmetrics

import (
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// StopwordSet is an immutable set of lowercase words excluded from analysis.
// It is safe for concurrent use.
type StopwordSet struct {
	words map[string]struct{}
}

// NewStopwordSet builds the union of every source. Each source is a
// newline-delimited list; entries are trimmed and lowercased and blank lines
// are skipped. Any unreadable source aborts construction.
func NewStopwordSet(sources ...Source) (*StopwordSet, error) {
	set := &StopwordSet{words: make(map[string]struct{})}
	for _, src := range sources {
		lines, err := src.lines()
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			w := strings.ToLower(strings.TrimSpace(line))
			if w != "" {
				set.words[w] = struct{}{}
			}
		}
	}
	return set, nil
}

// Contains reports whether word, compared in lowercase, is a stopword.
func (s *StopwordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, found := s.words[strings.ToLower(word)]
	return found
}

// Len returns the number of distinct stopwords.
func (s *StopwordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Words returns the stopwords in sorted order.
func (s *StopwordSet) Words() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// BuiltinStopwords returns a source listing the common words that the
// bbalet/stopwords library treats as stopwords for lang.
func BuiltinStopwords(lang Language) Source {
	var b strings.Builder
	for _, w := range builtinStopwords(string(lang)) {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	return StringSource("builtin:"+string(lang), b.String())
}

// builtinStopwords probes each candidate word against the library, which
// does not export its lists directly.
func builtinStopwords(langCode string) []string {
	var out []string
	for _, word := range stopwordCandidates {
		cleaned := stopwords.CleanString(word, langCode, false)
		if strings.TrimSpace(cleaned) == "" {
			out = append(out, word)
		}
	}
	return out
}

var stopwordCandidates = []string{
	// Articles, pronouns, prepositions, conjunctions
	"a", "an", "and", "are", "as", "at", "be", "been", "by", "for", "from",
	"has", "had", "have", "he", "her", "his", "how", "i", "in", "is", "it",
	"its", "of", "on", "or", "she", "that", "the", "their", "them", "they",
	"this", "to", "was", "we", "were", "what", "when", "where", "which", "who",
	"will", "with", "would", "you", "your",
	// Common verbs and other frequent words
	"about", "after", "all", "also", "am", "any", "back", "because", "before",
	"being", "between", "both", "but", "can", "could", "did", "do", "does",
	"down", "each", "even", "first", "get", "give", "go", "going",
	"got", "here", "him", "himself", "if", "into",
	"just", "know", "last", "like", "made", "make", "many", "may", "me",
	"might", "more", "most", "much", "must", "my", "never", "new", "no",
	"not", "now", "off", "old", "only", "other", "our", "out", "over",
	"own", "said", "same", "see", "should", "since", "so", "some", "still",
	"such", "take", "than", "then", "there", "these", "thing", "think",
	"those", "through", "too", "two", "under", "up", "upon", "us",
	"use", "used", "using", "very", "want", "way", "well", "went",
	"while", "why", "work", "year", "years", "yet",
}

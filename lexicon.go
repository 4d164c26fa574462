package textmetrics

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Lexicon holds the positive and negative word sets used for sentiment
// scoring. It is immutable after construction and safe for concurrent use.
//
// The two sets are not deduplicated against each other: a word listed in
// both counts towards both scores.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// ExternalLexicon is the JSON form of a lexicon file.
type ExternalLexicon struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// NewLexicon loads the positive and negative word lists. Tabular sources are
// flattened: every comma or tab separated cell on every line is one word.
// Lines starting with ';' are comments.
func NewLexicon(positive, negative Source) (*Lexicon, error) {
	pos, err := loadWordList(positive)
	if err != nil {
		return nil, err
	}
	neg, err := loadWordList(negative)
	if err != nil {
		return nil, err
	}
	return &Lexicon{positive: pos, negative: neg}, nil
}

// NewLexiconFromWords builds a lexicon from in-memory word lists.
func NewLexiconFromWords(positive, negative []string) *Lexicon {
	return &Lexicon{positive: wordSet(positive), negative: wordSet(negative)}
}

// LoadLexiconJSON reads a lexicon encoded as ExternalLexicon.
func LoadLexiconJSON(src Source) (*Lexicon, error) {
	data, err := src.readAll()
	if err != nil {
		return nil, err
	}
	var external ExternalLexicon
	if err := json.Unmarshal(data, &external); err != nil {
		return nil, &SourceReadError{
			Source: src.Name,
			Err:    fmt.Errorf("error parsing lexicon JSON: %w", err),
		}
	}
	return NewLexiconFromWords(external.Positive, external.Negative), nil
}

// IsPositive reports whether word is in the positive set.
func (l *Lexicon) IsPositive(word string) bool {
	_, found := l.positive[strings.ToLower(word)]
	return found
}

// IsNegative reports whether word is in the negative set.
func (l *Lexicon) IsNegative(word string) bool {
	_, found := l.negative[strings.ToLower(word)]
	return found
}

// PositiveLen returns the number of distinct positive words.
func (l *Lexicon) PositiveLen() int {
	return len(l.positive)
}

// NegativeLen returns the number of distinct negative words.
func (l *Lexicon) NegativeLen() int {
	return len(l.negative)
}

func loadWordList(src Source) (map[string]struct{}, error) {
	lines, err := src.lines()
	if err != nil {
		return nil, err
	}
	var words []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), ";") {
			continue
		}
		words = append(words, flattenRow(line)...)
	}
	return wordSet(words), nil
}

// flattenRow splits one row of a word list into its cells.
func flattenRow(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '\t'
	})
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

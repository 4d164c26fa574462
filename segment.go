package textmetrics

import (
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// punktSentenceTokenizer segments text into sentences using the punkt model
// trained on English text.
type punktSentenceTokenizer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func newPunktSentenceTokenizer() (*punktSentenceTokenizer, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &punktSentenceTokenizer{tokenizer: tokenizer}, nil
}

// segment splits text into trimmed sentences. Whitespace-only text yields no
// sentences.
func (p *punktSentenceTokenizer) segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var sents []string
	for _, s := range p.tokenizer.Tokenize(text) {
		sent := strings.TrimSpace(s.Text)
		if sent == "" {
			continue
		}
		sents = append(sents, sent)
	}
	return sents
}

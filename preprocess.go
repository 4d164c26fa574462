package textmetrics

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Preprocessor turns raw article text into a cleaned Document.
//
// A Preprocessor is safe for concurrent use. Segmenters and casers are not,
// so each call borrows its own from a pool.
type Preprocessor struct {
	stopwords *StopwordSet
	tokenizer Tokenizer
	pool      sync.Pool
}

type preprocessState struct {
	segmenter *punktSentenceTokenizer
	lower     cases.Caser
}

// NewPreprocessor returns a Preprocessor that removes the given stopwords.
// A nil tokenizer selects NewIterTokenizer.
func NewPreprocessor(stop *StopwordSet, tokenizer Tokenizer) (*Preprocessor, error) {
	if tokenizer == nil {
		tokenizer = NewIterTokenizer()
	}
	// A broken model fails here rather than inside a worker.
	seg, err := newPunktSentenceTokenizer()
	if err != nil {
		return nil, err
	}
	p := &Preprocessor{stopwords: stop, tokenizer: tokenizer}
	p.pool.Put(&preprocessState{segmenter: seg, lower: cases.Lower(language.English)})
	p.pool.New = func() interface{} {
		seg, err := newPunktSentenceTokenizer()
		if err != nil {
			return nil
		}
		return &preprocessState{segmenter: seg, lower: cases.Lower(language.English)}
	}
	return p, nil
}

// Process lowercases text, splits it into sentences and words, removes
// stopwords and strips punctuation. Tokens that end up empty are dropped;
// sentences that end up empty are kept. The same text always yields the same
// Document.
func (p *Preprocessor) Process(text string) Document {
	st, _ := p.pool.Get().(*preprocessState)
	if st == nil {
		// The model loaded in NewPreprocessor; a fresh load cannot fail.
		seg, _ := newPunktSentenceTokenizer()
		st = &preprocessState{segmenter: seg, lower: cases.Lower(language.English)}
	}
	defer p.pool.Put(st)

	text = st.lower.String(normalizeText(text))

	sents := st.segmenter.segment(text)
	doc := Document{Sentences: make([][]string, 0, len(sents))}
	for _, sent := range sents {
		clean := []string{}
		for _, tok := range p.tokenizer.Tokenize(sent) {
			if p.stopwords.Contains(tok) {
				continue
			}
			if tok = stripPunctuation(tok); tok != "" {
				clean = append(clean, tok)
			}
		}
		doc.Sentences = append(doc.Sentences, clean)
	}
	return doc
}

// normalizeText replaces invalid UTF-8 and composes the text to NFC.
func normalizeText(text string) string {
	return norm.NFC.String(strings.ToValidUTF8(text, "�"))
}

// stripPunctuation removes every rune that is not a word character or
// whitespace.
func stripPunctuation(tok string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, tok)
}

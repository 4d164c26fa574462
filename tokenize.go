package textmetrics

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// A TokenTester reports whether a token must be kept whole.
type TokenTester func(string) bool

// A Tokenizer splits a sentence into word tokens.
type Tokenizer interface {
	Tokenize(string) []string
}

// iterTokenizer splits a sentence into words.
type iterTokenizer struct {
	specialRE      *regexp.Regexp
	sanitizer      *strings.Replacer
	contractions   []string
	splitCases     []string
	suffixes       []string
	prefixes       []string
	isUnsplittable TokenTester
}

// A TokenizerOptFunc changes how NewIterTokenizer splits words.
type TokenizerOptFunc func(*iterTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// Use the provided special regex for unsplittable tokens.
func UsingSpecialRE(x *regexp.Regexp) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.specialRE = x
	}
}

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.sanitizer = x
	}
}

// Use the provided suffixes.
func UsingSuffixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.suffixes = x
	}
}

// Use the provided prefixes.
func UsingPrefixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.prefixes = x
	}
}

// Use the provided contractions.
func UsingContractions(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.contractions = x
	}
}

// NewIterTokenizer returns the default treebank-style word tokenizer.
//
// Tokens are split on whitespace; leading `$ ( " [` and trailing punctuation
// are split off, and English contractions become their own tokens
// ("don't" -> [do, n't]).
func NewIterTokenizer(opts ...TokenizerOptFunc) *iterTokenizer {
	tok := new(iterTokenizer)

	tok.contractions = contractions
	tok.isUnsplittable = func(_ string) bool { return false }
	tok.prefixes = prefixes
	tok.sanitizer = sanitizer
	tok.specialRE = internalRE
	tok.suffixes = suffixes

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	tok.splitCases = append(tok.splitCases, tok.contractions...)

	return tok
}

func addToken(s string, toks []string) []string {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, s)
	}
	return toks
}

func (t *iterTokenizer) isSpecial(token string) bool {
	return t.specialRE.MatchString(token) || t.isUnsplittable(token)
}

func (t *iterTokenizer) doSplit(token string) []string {
	tokens := []string{}
	suffs := []string{}

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// Abbreviations such as "e.g." stay whole.
			tokens = addToken(token, tokens)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if hasAnyPrefix(token, t.prefixes) {
			// Remove prefixes -- e.g., $100 -> [$, 100].
			tokens = addToken(string(token[0]), tokens)
			token = token[1:]
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > -1 {
			// they'll -> [they, 'll].
			// don't -> [do, n't].
			tokens = addToken(token[:idx], tokens)
			token = token[idx:]
		} else if hasAnySuffix(token, t.suffixes) {
			// Remove suffixes -- e.g., Well) -> [Well, )].
			suffs = append([]string{token[len(token)-1:]}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = addToken(token, tokens)
			break
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits a sentence into a slice of words.
func (t *iterTokenizer) Tokenize(text string) []string {
	var tokens []string
	cache := map[string][]string{}
	for _, span := range strings.Fields(t.sanitizer.Replace(text)) {
		toks, found := cache[span]
		if !found {
			toks = t.doSplit(span)
			cache[span] = toks
		}
		tokens = append(tokens, toks...)
	}
	return tokens
}

// hasAnyPrefix reports whether s starts with one of the prefixes.
func hasAnyPrefix(s string, prefixes []string) bool {
	n := len(s)
	for _, prefix := range prefixes {
		if n > len(prefix) && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// hasAnySuffix reports whether s ends with one of the suffixes.
func hasAnySuffix(s string, suffixes []string) bool {
	n := len(s)
	for _, suffix := range suffixes {
		if n > len(suffix) && strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// hasAnyIndex returns the position of the first split case in s, or -1.
// A split case at position 0 is ignored so that "'s" alone is not split.
func hasAnyIndex(s string, suffixes []string) int {
	n := len(s)
	for _, suffix := range suffixes {
		idx := strings.Index(s, suffix)
		if idx > 0 && n > len(suffix) {
			return idx
		}
	}
	return -1
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$`)
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
var contractions = []string{"'ll", "'s", "'re", "'m", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}

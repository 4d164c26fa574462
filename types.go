package textmetrics

// An Article is a single plain-text document to be scored.
type Article struct {
	ID   string // Stable identifier, e.g. the URL_ID of the source page.
	Text string // Raw article text.
}

// A Document is the cleaned, sentence-segmented form of an article.
//
// Each sentence holds its tokens in original order. A sentence whose tokens
// were all removed during cleaning is kept as an empty slice.
type Document struct {
	Sentences [][]string
}

// Words returns every token of the document in order.
func (d Document) Words() []string {
	n := 0
	for _, s := range d.Sentences {
		n += len(s)
	}
	words := make([]string, 0, n)
	for _, s := range d.Sentences {
		words = append(words, s...)
	}
	return words
}

// Language represents supported languages
type Language string

const (
	English Language = "en"
)

// Output column names. These match the fixed destination schema and must not
// be changed.
const (
	ColPositiveScore       = "POSITIVE SCORE"
	ColNegativeScore       = "NEGATIVE SCORE"
	ColPolarityScore       = "POLARITY SCORE"
	ColSubjectivityScore   = "SUBJECTIVITY SCORE"
	ColAvgSentenceLength   = "AVG SENTENCE LENGTH"
	ColPercentComplexWords = "PERCENTAGE OF COMPLEX WORDS"
	ColFogIndex            = "FOG INDEX"
	ColAvgWordsPerSentence = "AVG NUMBER OF WORDS PER SENTENCE"
	ColComplexWordCount    = "COMPLEX WORD COUNT"
	ColWordCount           = "WORD COUNT"
	ColSyllablePerWord     = "SYLLABLE PER WORD"
	ColPersonalPronouns    = "PERSONAL PRONOUNS"
	ColAvgWordLength       = "AVG WORD LENGTH"
)

var columns = []string{
	ColPositiveScore,
	ColNegativeScore,
	ColPolarityScore,
	ColSubjectivityScore,
	ColAvgSentenceLength,
	ColPercentComplexWords,
	ColFogIndex,
	ColAvgWordsPerSentence,
	ColComplexWordCount,
	ColWordCount,
	ColSyllablePerWord,
	ColPersonalPronouns,
	ColAvgWordLength,
}

// Columns returns the metric column names in output order.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// A MetricsRecord holds every metric computed for one article.
type MetricsRecord struct {
	ArticleID string

	PositiveScore       int
	NegativeScore       int
	PolarityScore       float64
	SubjectivityScore   float64
	AvgSentenceLength   float64
	PercentComplexWords float64
	FogIndex            float64
	AvgWordsPerSentence float64
	ComplexWordCount    int
	WordCount           int
	SyllablePerWord     float64
	PersonalPronouns    int
	AvgWordLength       float64

	// Err is set when the article could not be scored. All metrics are zero
	// in that case.
	Err error
}

// Value returns the metric stored under the given output column name.
func (r MetricsRecord) Value(column string) (float64, bool) {
	switch column {
	case ColPositiveScore:
		return float64(r.PositiveScore), true
	case ColNegativeScore:
		return float64(r.NegativeScore), true
	case ColPolarityScore:
		return r.PolarityScore, true
	case ColSubjectivityScore:
		return r.SubjectivityScore, true
	case ColAvgSentenceLength:
		return r.AvgSentenceLength, true
	case ColPercentComplexWords:
		return r.PercentComplexWords, true
	case ColFogIndex:
		return r.FogIndex, true
	case ColAvgWordsPerSentence:
		return r.AvgWordsPerSentence, true
	case ColComplexWordCount:
		return float64(r.ComplexWordCount), true
	case ColWordCount:
		return float64(r.WordCount), true
	case ColSyllablePerWord:
		return r.SyllablePerWord, true
	case ColPersonalPronouns:
		return float64(r.PersonalPronouns), true
	case ColAvgWordLength:
		return r.AvgWordLength, true
	}
	return 0, false
}

// isCount reports whether the column holds an integer count.
func isCount(column string) bool {
	switch column {
	case ColPositiveScore, ColNegativeScore, ColComplexWordCount, ColWordCount, ColPersonalPronouns:
		return true
	}
	return false
}

// Map returns the record as a flat column → value mapping.
func (r MetricsRecord) Map() map[string]float64 {
	m := make(map[string]float64, len(columns))
	for _, c := range columns {
		v, _ := r.Value(c)
		m[c] = v
	}
	return m
}

package textmetrics

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// An Option changes how an Analyzer is built.
//
// For example, it might cap the number of parallel workers:
//
//	a, err := textmetrics.NewAnalyzer(stop, lex, textmetrics.WithWorkers(4))
type Option func(opts *options)

type options struct {
	tokenizer Tokenizer
	logger    zerolog.Logger
	workers   int
	maxTokens int
}

// WithTokenizer specifies the Tokenizer to use.
func WithTokenizer(t Tokenizer) Option {
	return func(opts *options) {
		opts.tokenizer = t
	}
}

// WithLogger sets the logger used for per-article diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *options) {
		opts.logger = l
	}
}

// WithWorkers sets how many articles AnalyzeBatch scores at once. Values
// below 1 select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(opts *options) {
		opts.workers = n
	}
}

// WithMaxTokens rejects articles with more raw tokens than n. Zero means no
// limit.
func WithMaxTokens(n int) Option {
	return func(opts *options) {
		opts.maxTokens = n
	}
}

// Analyzer scores articles against a fixed stopword set and lexicon. Both are
// loaded once and shared read-only, so an Analyzer is safe for concurrent
// use.
type Analyzer struct {
	lexicon *Lexicon
	pre     *Preprocessor
	opts    options
}

// NewAnalyzer creates an Analyzer according to the user-specified options.
func NewAnalyzer(stopwords *StopwordSet, lexicon *Lexicon, opts ...Option) (*Analyzer, error) {
	if stopwords == nil {
		return nil, errors.New("textmetrics: nil stopword set")
	}
	if lexicon == nil {
		return nil, errors.New("textmetrics: nil lexicon")
	}

	base := options{logger: zerolog.Nop()}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.workers < 1 {
		base.workers = runtime.NumCPU()
	}

	pre, err := NewPreprocessor(stopwords, base.tokenizer)
	if err != nil {
		return nil, fmt.Errorf("loading sentence model: %w", err)
	}

	return &Analyzer{
		lexicon: lexicon,
		pre:     pre,
		opts:    base,
	}, nil
}

// Preprocessor returns the preprocessor used by a.
func (a *Analyzer) Preprocessor() *Preprocessor {
	return a.pre
}

// Analyze computes the metrics record for one article.
func (a *Analyzer) Analyze(ctx context.Context, article Article) (rec MetricsRecord, err error) {
	rec.ArticleID = article.ID
	defer func() {
		if r := recover(); r != nil {
			rec = MetricsRecord{ArticleID: article.ID}
			err = &ArticleError{ArticleID: article.ID, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	select {
	case <-ctx.Done():
		return rec, &ArticleError{ArticleID: article.ID, Err: ctx.Err()}
	default:
	}

	if a.opts.maxTokens > 0 {
		if n := len(strings.Fields(article.Text)); n > a.opts.maxTokens {
			return rec, &ArticleError{
				ArticleID: article.ID,
				Err:       fmt.Errorf("%w: %d > %d", ErrTooManyTokens, n, a.opts.maxTokens),
			}
		}
	}

	start := time.Now()
	doc := a.pre.Process(article.Text)
	words := doc.Words()

	sent := ScoreSentiment(words, a.lexicon)
	read := MeasureReadability(doc)

	rec.PositiveScore = sent.Positive
	rec.NegativeScore = sent.Negative
	rec.PolarityScore = sent.Polarity
	rec.SubjectivityScore = sent.Subjectivity
	rec.AvgSentenceLength = read.AvgWordsPerSentence
	rec.PercentComplexWords = read.PercentComplexWords
	rec.FogIndex = read.FogIndex
	rec.AvgWordsPerSentence = read.AvgWordsPerSentence
	rec.ComplexWordCount = read.ComplexWordCount
	rec.WordCount = read.WordCount
	rec.SyllablePerWord = read.SyllablesPerWord
	rec.PersonalPronouns = CountPersonalPronouns(article.Text)
	rec.AvgWordLength = read.AvgWordLength

	a.opts.logger.Debug().
		Str("article", article.ID).
		Int("sentences", read.SentenceCount).
		Int("words", read.WordCount).
		Float64("polarity", rec.PolarityScore).
		Float64("fog_index", rec.FogIndex).
		Dur("elapsed", time.Since(start)).
		Msg("article scored")

	return rec, nil
}

// AnalyzeBatch scores every article and returns one record per article in
// input order. Articles are scored in parallel.
//
// An article that fails is logged and gets a zero-filled record with Err set;
// the rest of the batch still runs. The returned error is non-nil only when
// ctx is cancelled.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, articles []Article) ([]MetricsRecord, error) {
	records := make([]MetricsRecord, len(articles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.workers)
	for i, article := range articles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			rec, err := a.Analyze(gctx, article)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				a.opts.logger.Warn().
					Err(err).
					Str("article", article.ID).
					Msg("skipping article")
				rec = MetricsRecord{ArticleID: article.ID, Err: err}
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

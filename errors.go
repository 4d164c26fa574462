package textmetrics

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyTokens is returned when an article exceeds the configured
	// token cap.
	ErrTooManyTokens = errors.New("article exceeds token limit")

	// ErrNoColumns is returned when a destination table has no header.
	ErrNoColumns = errors.New("table has no columns")
)

// SourceReadError reports a stopword or lexicon source that could not be
// read. It is always fatal for the run.
type SourceReadError struct {
	Source string
	Err    error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("reading source %q: %v", e.Source, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError reports a destination table whose row count differs
// from the number of processed articles.
type SchemaMismatchError struct {
	Rows    int
	Records int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("destination has %d rows but %d articles were processed", e.Rows, e.Records)
}

// ArticleError wraps a failure that happened while scoring one article.
type ArticleError struct {
	ArticleID string
	Err       error
}

func (e *ArticleError) Error() string {
	return fmt.Sprintf("article %s: %v", e.ArticleID, e.Err)
}

func (e *ArticleError) Unwrap() error {
	return e.Err
}

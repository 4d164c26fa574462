package textmetrics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"
)

func testAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	stop := testStopwords(t, "this\nit\nis\nand\nthe\n")
	lex := NewLexiconFromWords(
		[]string{"love", "great", "amazing", "wonderful"},
		[]string{"awful", "terrible"},
	)
	a, err := NewAnalyzer(stop, lex, opts...)
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}
	return a
}

func TestAnalyze(t *testing.T) {
	a := testAnalyzer(t)
	rec, err := a.Analyze(context.Background(), Article{
		ID:   "37",
		Text: "I love this great product. It is amazing and wonderful.",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if rec.ArticleID != "37" || rec.Err != nil {
		t.Errorf("record = %+v", rec)
	}
	ints := []struct {
		name     string
		got      int
		expected int
	}{
		{ColPositiveScore, rec.PositiveScore, 4},
		{ColNegativeScore, rec.NegativeScore, 0},
		{ColComplexWordCount, rec.ComplexWordCount, 2},
		{ColWordCount, rec.WordCount, 6},
		{ColPersonalPronouns, rec.PersonalPronouns, 1},
	}
	for _, c := range ints {
		if c.got != c.expected {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.expected)
		}
	}

	floats := []struct {
		name     string
		got      float64
		expected float64
	}{
		{ColPolarityScore, rec.PolarityScore, 1},
		{ColSubjectivityScore, rec.SubjectivityScore, 4.0 / 6.0},
		{ColAvgSentenceLength, rec.AvgSentenceLength, 3},
		{ColAvgWordsPerSentence, rec.AvgWordsPerSentence, 3},
		{ColPercentComplexWords, rec.PercentComplexWords, 2.0 / 6.0},
		{ColFogIndex, rec.FogIndex, 0.4 * (3 + 2.0/6.0)},
		{ColSyllablePerWord, rec.SyllablePerWord, 2},
		{ColAvgWordLength, rec.AvgWordLength, 5.5},
	}
	for _, c := range floats {
		if math.Abs(c.got-c.expected) > 1e-5 {
			t.Errorf("%s = %f, want %f", c.name, c.got, c.expected)
		}
	}
}

func TestAnalyzerPreprocessor(t *testing.T) {
	doc := testAnalyzer(t).Preprocessor().Process("It is the end.")
	if len(doc.Sentences) != 1 || !reflect.DeepEqual(doc.Sentences[0], []string{"end"}) {
		t.Errorf("Process = %q, want [[end]]", doc.Sentences)
	}
}

func TestAnalyzeEmptyArticle(t *testing.T) {
	a := testAnalyzer(t)
	rec, err := a.Analyze(context.Background(), Article{ID: "empty"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for c, v := range rec.Map() {
		if v != 0 {
			t.Errorf("%s = %f, want 0", c, v)
		}
	}
}

func TestAnalyzeMaxTokens(t *testing.T) {
	a := testAnalyzer(t, WithMaxTokens(3))
	_, err := a.Analyze(context.Background(), Article{ID: "long", Text: "one two three four"})
	if !errors.Is(err, ErrTooManyTokens) {
		t.Fatalf("error = %v, want ErrTooManyTokens", err)
	}
	var artErr *ArticleError
	if !errors.As(err, &artErr) || artErr.ArticleID != "long" {
		t.Errorf("error = %v, want *ArticleError for long", err)
	}

	if _, err := a.Analyze(context.Background(), Article{ID: "short", Text: "one two three"}); err != nil {
		t.Errorf("article at the limit failed: %v", err)
	}
}

func TestAnalyzeBatch(t *testing.T) {
	a := testAnalyzer(t, WithWorkers(4), WithMaxTokens(20))

	var articles []Article
	for i := 0; i < 12; i++ {
		articles = append(articles, Article{
			ID:   fmt.Sprintf("%d", i),
			Text: fmt.Sprintf("I love it. %s", repeatWord("great", i)),
		})
	}
	articles[5].Text = repeatWord("awful", 30)

	records, err := a.AnalyzeBatch(context.Background(), articles)
	if err != nil {
		t.Fatalf("AnalyzeBatch: %v", err)
	}
	if len(records) != len(articles) {
		t.Fatalf("got %d records, want %d", len(records), len(articles))
	}

	for i, rec := range records {
		if rec.ArticleID != articles[i].ID {
			t.Errorf("record %d has ID %q, want %q", i, rec.ArticleID, articles[i].ID)
		}
		if i == 5 {
			if !errors.Is(rec.Err, ErrTooManyTokens) {
				t.Errorf("record 5 Err = %v, want ErrTooManyTokens", rec.Err)
			}
			if rec.WordCount != 0 || rec.NegativeScore != 0 {
				t.Errorf("failed record is not zero-filled: %+v", rec)
			}
			continue
		}
		if rec.Err != nil {
			t.Errorf("record %d Err = %v", i, rec.Err)
		}
		if rec.PositiveScore != i+1 {
			t.Errorf("record %d PositiveScore = %d, want %d", i, rec.PositiveScore, i+1)
		}
	}
}

func TestAnalyzeBatchCancelled(t *testing.T) {
	a := testAnalyzer(t, WithWorkers(2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := a.AnalyzeBatch(ctx, []Article{{ID: "1", Text: "I love it."}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if records != nil {
		t.Errorf("records = %v, want nil", records)
	}
}

func TestAnalyzeBatchEmpty(t *testing.T) {
	records, err := testAnalyzer(t).AnalyzeBatch(context.Background(), nil)
	if err != nil || len(records) != 0 {
		t.Errorf("AnalyzeBatch(nil) = (%v, %v), want empty result", records, err)
	}
}

func TestNewAnalyzerRequiresResources(t *testing.T) {
	lex := NewLexiconFromWords(nil, nil)
	if _, err := NewAnalyzer(nil, lex); err == nil {
		t.Error("expected error for nil stopword set")
	}
	if _, err := NewAnalyzer(testStopwords(t, ""), nil); err == nil {
		t.Error("expected error for nil lexicon")
	}
}

func repeatWord(w string, n int) string {
	return strings.TrimSpace(strings.Repeat(w+" ", n))
}

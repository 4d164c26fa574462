// Command textmetrics scores a directory of article text files and merges the
// metrics into a destination spreadsheet.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tsawler/textmetrics"
	"github.com/tsawler/textmetrics/internal/config"
	"github.com/tsawler/textmetrics/internal/corpus"
	"github.com/tsawler/textmetrics/internal/sheet"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	articles := flag.String("articles", "", "directory of article .txt files")
	schema := flag.String("schema", "", "destination table (.xlsx or .csv); a new table is written when empty")
	output := flag.String("output", "", "output table path")
	workers := flag.Int("workers", 0, "parallel workers (0 = number of CPUs)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *articles != "" {
		cfg.ArticlesDir = *articles
	}
	if *schema != "" {
		cfg.SchemaPath = *schema
	}
	if *output != "" {
		cfg.OutputPath = *output
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}

	log := newLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	start := time.Now()

	stop, err := loadStopwords(cfg)
	if err != nil {
		return err
	}
	lex, err := loadLexicon(cfg)
	if err != nil {
		return err
	}
	log.Info().
		Int("stopwords", stop.Len()).
		Int("positive", lex.PositiveLen()).
		Int("negative", lex.NegativeLen()).
		Msg("lexicon loaded")

	analyzer, err := textmetrics.NewAnalyzer(stop, lex,
		textmetrics.WithLogger(log),
		textmetrics.WithWorkers(cfg.Workers),
		textmetrics.WithMaxTokens(cfg.MaxTokens),
	)
	if err != nil {
		return err
	}

	articles, err := corpus.ReadArticles(cfg.ArticlesDir)
	if err != nil {
		return err
	}
	log.Info().Int("articles", len(articles)).Str("dir", cfg.ArticlesDir).Msg("articles read")

	records, err := analyzer.AnalyzeBatch(ctx, articles)
	if err != nil {
		return err
	}

	table, err := mergeRecords(cfg, records)
	if err != nil {
		return err
	}
	if err := sheet.Write(cfg.OutputPath, table); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputPath, err)
	}

	summary := textmetrics.Summarize(records)
	for _, m := range summary.Metrics {
		log.Debug().
			Str("metric", m.Column).
			Float64("mean", m.Mean).
			Float64("stddev", m.StdDev).
			Float64("median", m.Median).
			Float64("min", m.Min).
			Float64("max", m.Max).
			Msg("metric summary")
	}
	ev := log.Info().
		Int("articles", summary.Articles).
		Int("failed", summary.Failed).
		Str("output", cfg.OutputPath).
		Dur("elapsed", time.Since(start))
	if fog, ok := summary.Metric(textmetrics.ColFogIndex); ok {
		ev = ev.Float64("mean_fog_index", fog.Mean)
	}
	ev.Msg("done")
	return nil
}

func loadStopwords(cfg *config.Config) (*textmetrics.StopwordSet, error) {
	var sources []textmetrics.Source
	if cfg.StopwordsDir != "" {
		dirSources, err := textmetrics.DirSources(cfg.StopwordsDir, ".txt")
		if err != nil {
			return nil, err
		}
		sources = append(sources, dirSources...)
	}
	if cfg.BuiltinStopwords {
		sources = append(sources, textmetrics.BuiltinStopwords(textmetrics.English))
	}
	return textmetrics.NewStopwordSet(sources...)
}

func loadLexicon(cfg *config.Config) (*textmetrics.Lexicon, error) {
	enc, ok := textmetrics.EncodingByName(cfg.LexiconEncoding)
	if !ok {
		return nil, &config.ConfigError{Field: "lexicon_encoding", Message: "unknown encoding " + cfg.LexiconEncoding}
	}
	if cfg.LexiconJSON != "" {
		return textmetrics.LoadLexiconJSON(textmetrics.FileSource(cfg.LexiconJSON))
	}
	return textmetrics.NewLexicon(
		textmetrics.FileSource(cfg.PositivePath).WithEncoding(enc),
		textmetrics.FileSource(cfg.NegativePath).WithEncoding(enc),
	)
}

// mergeRecords merges into the configured schema, or builds a fresh table
// when no schema is configured.
func mergeRecords(cfg *config.Config, records []textmetrics.MetricsRecord) (*textmetrics.Table, error) {
	if cfg.SchemaPath == "" {
		id := cfg.KeyColumn
		if id == "" {
			id = "URL_ID"
		}
		return textmetrics.FromRecords(id, records), nil
	}

	table, err := sheet.Read(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}
	if cfg.KeyColumn != "" {
		err = table.MergeByKey(cfg.KeyColumn, records)
	} else {
		err = table.Merge(records)
	}
	if err != nil {
		return nil, fmt.Errorf("merging into %s: %w", cfg.SchemaPath, err)
	}
	return table, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

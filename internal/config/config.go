package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all settings for a scoring run.
type Config struct {
	// Inputs
	ArticlesDir      string `yaml:"articles_dir"`
	StopwordsDir     string `yaml:"stopwords_dir"`
	BuiltinStopwords bool   `yaml:"builtin_stopwords"` // add the bundled English list
	PositivePath     string `yaml:"positive_words"`
	NegativePath     string `yaml:"negative_words"`
	LexiconJSON      string `yaml:"lexicon_json"` // replaces the two word lists when set
	LexiconEncoding  string `yaml:"lexicon_encoding"`

	// Destination
	SchemaPath string `yaml:"schema"`
	OutputPath string `yaml:"output"`
	KeyColumn  string `yaml:"key_column"` // match rows by ID instead of position

	// Processing
	Workers   int    `yaml:"workers"`
	MaxTokens int    `yaml:"max_tokens"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		StopwordsDir:    "StopWords",
		LexiconEncoding: "latin-1",
		OutputPath:      "output.xlsx",
		LogLevel:        "info",
	}
}

// Load reads the optional YAML file at path on top of the defaults, then
// applies TEXTMETRICS_* environment variables. A .env file in the working
// directory is loaded first if it exists.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.ArticlesDir = getEnvOrDefault("TEXTMETRICS_ARTICLES_DIR", cfg.ArticlesDir)
	cfg.StopwordsDir = getEnvOrDefault("TEXTMETRICS_STOPWORDS_DIR", cfg.StopwordsDir)
	cfg.BuiltinStopwords = getEnvOrDefaultBool("TEXTMETRICS_BUILTIN_STOPWORDS", cfg.BuiltinStopwords)
	cfg.PositivePath = getEnvOrDefault("TEXTMETRICS_POSITIVE_WORDS", cfg.PositivePath)
	cfg.NegativePath = getEnvOrDefault("TEXTMETRICS_NEGATIVE_WORDS", cfg.NegativePath)
	cfg.LexiconJSON = getEnvOrDefault("TEXTMETRICS_LEXICON_JSON", cfg.LexiconJSON)
	cfg.LexiconEncoding = getEnvOrDefault("TEXTMETRICS_LEXICON_ENCODING", cfg.LexiconEncoding)
	cfg.SchemaPath = getEnvOrDefault("TEXTMETRICS_SCHEMA", cfg.SchemaPath)
	cfg.OutputPath = getEnvOrDefault("TEXTMETRICS_OUTPUT", cfg.OutputPath)
	cfg.KeyColumn = getEnvOrDefault("TEXTMETRICS_KEY_COLUMN", cfg.KeyColumn)
	cfg.Workers = getEnvOrDefaultInt("TEXTMETRICS_WORKERS", cfg.Workers)
	cfg.MaxTokens = getEnvOrDefaultInt("TEXTMETRICS_MAX_TOKENS", cfg.MaxTokens)
	cfg.LogLevel = getEnvOrDefault("TEXTMETRICS_LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

// Validate checks that every required setting is present.
func (c *Config) Validate() error {
	if c.ArticlesDir == "" {
		return &ConfigError{Field: "articles_dir", Message: "articles directory is required"}
	}
	if c.StopwordsDir == "" && !c.BuiltinStopwords {
		return &ConfigError{Field: "stopwords_dir", Message: "a stopwords directory or builtin_stopwords is required"}
	}
	if c.LexiconJSON == "" && (c.PositivePath == "" || c.NegativePath == "") {
		return &ConfigError{Field: "positive_words", Message: "both word lists or lexicon_json are required"}
	}
	if c.OutputPath == "" {
		return &ConfigError{Field: "output", Message: "output path is required"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "workers", Message: "must not be negative"}
	}
	if c.MaxTokens < 0 {
		return &ConfigError{Field: "max_tokens", Message: "must not be negative"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvOrDefaultBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// Package corpus reads the article files written by the scraping step.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tsawler/textmetrics"
)

// ReadArticles returns one Article per .txt file in dir, ordered by file
// name. The article ID is the file name without its extension. Bytes that are
// not valid UTF-8 are replaced with U+FFFD.
func ReadArticles(dir string) ([]textmetrics.Article, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	articles := make([]textmetrics.Article, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading article %s: %w", name, err)
		}
		articles = append(articles, textmetrics.Article{
			ID:   strings.TrimSuffix(name, filepath.Ext(name)),
			Text: strings.ToValidUTF8(string(data), "�"),
		})
	}
	return articles, nil
}

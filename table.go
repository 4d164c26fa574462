package textmetrics

import (
	"fmt"
	"strconv"
)

// Table is an ordered destination schema: a header of column names and one
// row of cells per article.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Merge writes records into the table by position: record i fills row i.
// Only columns named after a metric are overwritten; every other column is
// left as is. When the number of rows differs from the number of records the
// table is not modified and a *SchemaMismatchError is returned.
func (t *Table) Merge(records []MetricsRecord) error {
	if len(t.Header) == 0 {
		return ErrNoColumns
	}
	if len(t.Rows) != len(records) {
		return &SchemaMismatchError{Rows: len(t.Rows), Records: len(records)}
	}
	targets := t.metricColumns()
	for i, rec := range records {
		t.fillRow(i, rec, targets)
	}
	return nil
}

// MergeByKey writes each record into the row whose key column equals the
// record's ArticleID. Every record must match exactly one row and every row
// must be matched; otherwise the table is not modified.
func (t *Table) MergeByKey(key string, records []MetricsRecord) error {
	if len(t.Header) == 0 {
		return ErrNoColumns
	}
	col := t.ColumnIndex(key)
	if col < 0 {
		return fmt.Errorf("key column %q not found", key)
	}
	if len(t.Rows) != len(records) {
		return &SchemaMismatchError{Rows: len(t.Rows), Records: len(records)}
	}

	rowByID := make(map[string]int, len(t.Rows))
	for i, row := range t.Rows {
		if col >= len(row) {
			return fmt.Errorf("row %d has no %q cell", i+1, key)
		}
		if _, dup := rowByID[row[col]]; dup {
			return fmt.Errorf("duplicate key %q in column %q", row[col], key)
		}
		rowByID[row[col]] = i
	}

	order := make([]int, len(records))
	for i, rec := range records {
		row, found := rowByID[rec.ArticleID]
		if !found {
			return fmt.Errorf("no row with %s %q", key, rec.ArticleID)
		}
		order[i] = row
	}

	targets := t.metricColumns()
	for i, rec := range records {
		t.fillRow(order[i], rec, targets)
	}
	return nil
}

// metricColumns maps header positions to metric names for every header cell
// that names a metric.
func (t *Table) metricColumns() map[int]string {
	targets := make(map[int]string)
	for i, h := range t.Header {
		if _, ok := (MetricsRecord{}).Value(h); ok {
			targets[i] = h
		}
	}
	return targets
}

func (t *Table) fillRow(i int, rec MetricsRecord, targets map[int]string) {
	row := t.Rows[i]
	if len(row) < len(t.Header) {
		row = append(row, make([]string, len(t.Header)-len(row))...)
	}
	for col, name := range targets {
		v, _ := rec.Value(name)
		row[col] = formatValue(name, v)
	}
	t.Rows[i] = row
}

// formatValue renders counts as integers and everything else with the
// shortest representation that round-trips.
func formatValue(column string, v float64) string {
	if isCount(column) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FromRecords builds a new table with an ID column followed by every metric
// column, one row per record.
func FromRecords(idColumn string, records []MetricsRecord) *Table {
	t := &Table{Header: append([]string{idColumn}, columns...)}
	for _, rec := range records {
		row := make([]string, 0, len(t.Header))
		row = append(row, rec.ArticleID)
		for _, c := range columns {
			v, _ := rec.Value(c)
			row = append(row, formatValue(c, v))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

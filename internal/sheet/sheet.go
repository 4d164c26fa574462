// Package sheet reads and writes destination tables as .xlsx or .csv files.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/textmetrics"
)

// ErrUnsupportedFormat is returned for file extensions other than .xlsx and
// .csv.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// Read loads the table at path. For workbooks the first sheet is used. The
// first row is the header; shorter rows are padded to the header width.
func Read(path string) (*textmetrics.Table, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, textmetrics.ErrNoColumns)
	}

	t := &textmetrics.Table{Header: rows[0]}
	for _, row := range rows[1:] {
		if len(row) < len(t.Header) {
			row = append(row, make([]string, len(t.Header)-len(row))...)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Write saves t to path in the format given by its extension. Metric columns
// are stored as numbers in workbooks.
func Write(path string, t *textmetrics.Table) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeXLSX(path, t)
	case ".csv":
		return writeCSV(path, t)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func writeXLSX(path string, t *textmetrics.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	numeric := make(map[int]bool)
	for i, h := range t.Header {
		if _, ok := (textmetrics.MetricsRecord{}).Value(h); ok {
			numeric[i] = true
		}
	}

	header := make([]interface{}, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for r, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for c, v := range row {
			cells[c] = v
			if numeric[c] {
				if n, err := strconv.ParseFloat(v, 64); err == nil {
					cells[c] = n
				}
			}
		}
		axis, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv %s: %w", path, err)
	}
	return rows, nil
}

func writeCSV(path string, t *textmetrics.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

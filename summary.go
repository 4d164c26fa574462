package textmetrics

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MetricSummary describes the distribution of one metric across a batch.
type MetricSummary struct {
	Column string
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

// Summary describes a scored batch.
type Summary struct {
	Articles int // Records in the batch.
	Failed   int // Records with Err set; excluded from the metrics.
	Metrics  []MetricSummary
}

// Summarize computes per-metric statistics over every successful record, in
// column order. A batch with no successful records has an empty Metrics.
func Summarize(records []MetricsRecord) Summary {
	s := Summary{Articles: len(records)}
	ok := make([]MetricsRecord, 0, len(records))
	for _, r := range records {
		if r.Err != nil {
			s.Failed++
			continue
		}
		ok = append(ok, r)
	}
	if len(ok) == 0 {
		return s
	}

	values := make([]float64, len(ok))
	for _, c := range columns {
		for i, r := range ok {
			values[i], _ = r.Value(c)
		}
		m := MetricSummary{
			Column: c,
			Min:    floats.Min(values),
			Max:    floats.Max(values),
		}
		if len(values) > 1 {
			m.Mean, m.StdDev = stat.MeanStdDev(values, nil)
		} else {
			m.Mean = values[0]
		}
		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)
		m.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		s.Metrics = append(s.Metrics, m)
	}
	return s
}

// Metric returns the summary for the named column.
func (s Summary) Metric(column string) (MetricSummary, bool) {
	for _, m := range s.Metrics {
		if m.Column == column {
			return m, true
		}
	}
	return MetricSummary{}, false
}

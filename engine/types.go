package engine

import (
	"math"
	"strconv"
)

// ============================================================================
// NYAYA ENGINE TYPES: Tabular Aggregation over Immutable Datasets
// ============================================================================
// Rows are read through RecordView (see view.go). Results are plain values:
// callers own them and may serialize them however they like.
// ============================================================================

// ============================================================================
// GROUP: one partition of an aggregation
// ============================================================================

// Group is one (GroupKey, sum) pair.
type Group struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Count int     `json:"count"`

	ordinal float64 // numeric key, used for timeline ordering
}

// AggregateResult is an ordered sequence of groups.
// Region results are descending by Value; year results ascending by year.
type AggregateResult struct {
	KeyColumn   string  `json:"keyColumn"`
	ValueColumn string  `json:"valueColumn"`
	NumericKey  bool    `json:"numericKey,omitempty"`
	Groups      []Group `json:"groups"`
}

// Len returns the number of groups.
func (r AggregateResult) Len() int { return len(r.Groups) }

// Total sums Value across all groups.
func (r AggregateResult) Total() float64 {
	var total float64
	for _, g := range r.Groups {
		total += g.Value
	}
	return total
}

// Records returns the result as row maps keyed by the original column names,
// e.g. [{"STATE/UT": "Kerala", "TOTAL IPC CRIMES": 1234}].
// Whole numbers are emitted as int64 so JSON stays integral.
func (r AggregateResult) Records() []map[string]any {
	out := make([]map[string]any, 0, len(r.Groups))
	for _, g := range r.Groups {
		var key any = g.Key
		if r.NumericKey {
			key = wholeOrFloat(g.ordinal)
		}
		out = append(out, map[string]any{
			r.KeyColumn:   key,
			r.ValueColumn: wholeOrFloat(g.Value),
		})
	}
	return out
}

// ============================================================================
// COLUMN TOTALS: per-column sums for category breakdowns
// ============================================================================

// ColumnTotal is the sum of one column over the rows surviving the filters.
type ColumnTotal struct {
	Column string  `json:"column"`
	Total  float64 `json:"total"`
}

// Totals keeps column totals in dataset column order.
type Totals []ColumnTotal

// Map returns the totals keyed by column name.
func (t Totals) Map() map[string]float64 {
	m := make(map[string]float64, len(t))
	for _, ct := range t {
		m[ct.Column] = ct.Total
	}
	return m
}

// Ints returns the totals truncated to integers, keyed by column name.
// Non-finite totals read as 0 and out-of-range totals saturate.
func (t Totals) Ints() map[string]int64 {
	m := make(map[string]int64, len(t))
	for _, ct := range t {
		m[ct.Column] = toInt64(ct.Total)
	}
	return m
}

func toInt64(v float64) int64 {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

// Sum adds up every column total.
func (t Totals) Sum() float64 {
	var s float64
	for _, ct := range t {
		s += ct.Total
	}
	return s
}

// ============================================================================
// RESULT: executor output
// ============================================================================

// Result is the executor's output. Exactly one of Aggregate or Totals is set.
type Result struct {
	Kind      string           `json:"kind"`
	Matched   int              `json:"matched"`
	Aggregate *AggregateResult `json:"aggregate,omitempty"`
	Totals    Totals           `json:"totals,omitempty"`
}

// ============================================================================
// RENDER TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// TextData is a one-line answer for text output.
type TextData struct {
	Value    string  `json:"value"`
	RawValue float64 `json:"rawValue"`
	Count    int     `json:"count"`
	Top      string  `json:"top,omitempty"`
	TopValue float64 `json:"topValue,omitempty"`
	Reply    string  `json:"reply"`
}

func wholeOrFloat(v float64) any {
	if v == float64(int64(v)) {
		return int64(v)
	}
	return v
}

func formatKey(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package engine

import (
	"fmt"
	"log/slog"
)

// ============================================================================
// EXECUTOR: Typed query dispatch
// ============================================================================
// Entry point: Execute(query, view)
//
// Pipeline:
//   1. Validate the query kind and its columns
//   2. Dispatch to AggregateByRegion / AggregateByYear / ColumnTotals
//   3. Apply Top-N when Limit > 0
//   4. Return Result
//
// Callers hand over already-typed values; the executor never parses text.
// ============================================================================

// Query kinds.
const (
	KindRegion = "region"
	KindYear   = "year"
	KindTotals = "totals"
)

// Query describes one aggregation over a dataset.
type Query struct {
	Kind         string   `json:"kind" yaml:"kind"`
	ValueColumn  string   `json:"valueColumn,omitempty" yaml:"value_column"`
	GroupColumn  string   `json:"groupColumn,omitempty" yaml:"group_column"`
	YearColumn   string   `json:"yearColumn,omitempty" yaml:"year_column"`
	Year         *int     `json:"year,omitempty" yaml:"year"`
	RegionColumn string   `json:"regionColumn,omitempty" yaml:"region_column"`
	Region       *string  `json:"region,omitempty" yaml:"region"`
	Exclude      []string `json:"exclude,omitempty" yaml:"exclude"`
	Limit        int      `json:"limit,omitempty" yaml:"limit"` // 0 = all
}

// Options converts the query's filters into engine options.
func (q Query) Options() []Option {
	var opts []Option
	if q.Year != nil {
		opts = append(opts, WithYear(q.YearColumn, *q.Year))
	}
	if q.Region != nil {
		opts = append(opts, WithRegion(q.RegionColumn, *q.Region))
	}
	return opts
}

// Execute runs a Query against a RecordView.
func Execute(q Query, view RecordView) (*Result, error) {
	if q.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidArgument, q.Limit)
	}

	slog.Debug("executing query",
		"kind", q.Kind, "rows", view.Len(), "value", q.ValueColumn, "group", q.GroupColumn)

	result := &Result{Kind: q.Kind}

	switch q.Kind {
	case KindRegion:
		agg, err := AggregateByRegion(view, q.ValueColumn, q.GroupColumn, q.Options()...)
		if err != nil {
			return nil, err
		}
		result.Matched = countRows(agg)
		if agg, err = limit(agg, q.Limit); err != nil {
			return nil, err
		}
		result.Aggregate = &agg

	case KindYear:
		// Timelines span the whole dataset; filters narrow it first.
		filtered, err := ApplyFilters(view, applyOptions(q.Options()))
		if err != nil {
			return nil, err
		}
		agg, err := AggregateByYear(filtered, q.ValueColumn, q.YearColumn)
		if err != nil {
			return nil, err
		}
		result.Matched = countRows(agg)
		if agg, err = limit(agg, q.Limit); err != nil {
			return nil, err
		}
		result.Aggregate = &agg

	case KindTotals:
		filtered, err := ApplyFilters(view, applyOptions(q.Options()))
		if err != nil {
			return nil, err
		}
		totals, err := ColumnTotals(filtered, q.Exclude)
		if err != nil {
			return nil, err
		}
		result.Totals = totals
		result.Matched = filtered.Len()

	default:
		return nil, fmt.Errorf("%w: unknown query kind %q", ErrInvalidArgument, q.Kind)
	}

	return result, nil
}

func countRows(agg AggregateResult) int {
	n := 0
	for _, g := range agg.Groups {
		n += g.Count
	}
	return n
}

func limit(agg AggregateResult, n int) (AggregateResult, error) {
	if n == 0 {
		return agg, nil
	}
	return TopN(agg, n)
}

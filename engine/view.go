package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ============================================================================
// RECORD VIEW: Zero-Copy Data Access Interface
// ============================================================================
// The engine never mutates loaded data. It reads through this interface.
//
// Implementations:
//   Dataset  : columnar storage built once at load time
//   SubView  : filtered subset (indices into parent, zero-copy)
//
// Every column is readable both ways: Dimension returns the cell's text,
// Measure returns its numeric coercion (non-numeric → 0).
// ============================================================================

// RecordView provides indexed access to a dataset.
// The engine calls Dimension/Measure in tight loops so keep implementations fast.
type RecordView interface {
	Len() int
	Dimension(index int, column string) string
	Measure(index int, column string) float64
	Columns() []string
	HasColumn(column string) bool
}

// ============================================================================
// DATASET: columnar, immutable after construction
// ============================================================================

// Dataset stores rows column-wise: text[c][r] and nums[c][r].
// There is no mutation API; derived columns produce a new Dataset that
// shares the parent's column storage.
type Dataset struct {
	columns []string
	index   map[string]int
	text    [][]string
	nums    [][]float64
	rows    int
}

// NewDataset builds a Dataset from row-major cells.
// Cells may be string, integer or float values. A nil cell is missing and is
// filled with zero ("0" as text, 0 as number). Cells that cannot be coerced to
// a finite number read as 0 through Measure. Short rows are padded with missing cells.
func NewDataset(columns []string, rows [][]any) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: dataset has no columns", ErrInvalidArgument)
	}

	ds := &Dataset{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		text:    make([][]string, len(columns)),
		nums:    make([][]float64, len(columns)),
		rows:    len(rows),
	}
	for c, name := range ds.columns {
		if _, dup := ds.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidArgument, name)
		}
		ds.index[name] = c
		ds.text[c] = make([]string, len(rows))
		ds.nums[c] = make([]float64, len(rows))
	}

	for r, row := range rows {
		for c := range ds.columns {
			var cell any
			if c < len(row) {
				cell = row[c]
			}
			ds.text[c][r], ds.nums[c][r] = coerceCell(cell)
		}
	}
	return ds, nil
}

// coerceCell returns the text and numeric forms of a single cell.
func coerceCell(cell any) (string, float64) {
	if cell == nil {
		return "0", 0
	}
	text := cast.ToString(cell)
	if s, ok := cell.(string); ok {
		cell = strings.TrimSpace(s)
	}
	num, err := cast.ToFloat64E(cell)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		num = 0
	}
	return text, num
}

func (d *Dataset) Len() int { return d.rows }

func (d *Dataset) Dimension(i int, column string) string {
	c, ok := d.index[column]
	if !ok || i < 0 || i >= d.rows {
		return ""
	}
	return d.text[c][i]
}

func (d *Dataset) Measure(i int, column string) float64 {
	c, ok := d.index[column]
	if !ok || i < 0 || i >= d.rows {
		return 0
	}
	return d.nums[c][i]
}

// Columns returns column names in source order. Callers must not modify it.
func (d *Dataset) Columns() []string { return d.columns }

func (d *Dataset) HasColumn(column string) bool {
	_, ok := d.index[column]
	return ok
}

// WithSumColumn returns a new Dataset with an extra column holding the
// per-row sum of the given columns. An existing column with the same name is
// replaced in the new Dataset; the receiver is left untouched.
func (d *Dataset) WithSumColumn(name string, columns ...string) (*Dataset, error) {
	if err := requireColumns(d, columns...); err != nil {
		return nil, err
	}

	sums := make([]float64, d.rows)
	for _, col := range columns {
		src := d.nums[d.index[col]]
		for r := range sums {
			sums[r] += src[r]
		}
	}
	texts := make([]string, d.rows)
	for r, v := range sums {
		texts[r] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	out := &Dataset{
		columns: append([]string(nil), d.columns...),
		index:   make(map[string]int, len(d.columns)+1),
		text:    append([][]string(nil), d.text...),
		nums:    append([][]float64(nil), d.nums...),
		rows:    d.rows,
	}
	for k, v := range d.index {
		out.index[k] = v
	}

	if c, exists := out.index[name]; exists {
		out.text[c] = texts
		out.nums[c] = sums
		return out, nil
	}
	out.index[name] = len(out.columns)
	out.columns = append(out.columns, name)
	out.text = append(out.text, texts)
	out.nums = append(out.nums, sums)
	return out, nil
}

// ============================================================================
// SUB VIEW: filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent RecordView.
// Holds indices into the parent, with no data copy.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Dimension(i int, column string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Dimension(v.indices[i], column)
}

func (v *SubView) Measure(i int, column string) float64 {
	if i < 0 || i >= len(v.indices) {
		return 0
	}
	return v.parent.Measure(v.indices[i], column)
}

func (v *SubView) Columns() []string            { return v.parent.Columns() }
func (v *SubView) HasColumn(column string) bool { return v.parent.HasColumn(column) }

package engine

import (
	"fmt"
	"sort"
	"strings"
)

// ============================================================================
// AGGREGATORS: Grouping, Summing, and Sorting via RecordView
// ============================================================================
// Pipeline: validate → filter → group → sum → sort.
// All functions read through RecordView and never touch the source rows.
// ============================================================================

// AggregateByRegion sums valueColumn per distinct regionColumn value,
// over the rows surviving the filters, sorted descending by sum.
// Ties keep first-encountered order.
//
// A region filter with no column filters on regionColumn itself;
// WithRegion("STATE/UT", s) on a DISTRICT grouping gives a state's
// district leaderboard.
func AggregateByRegion(view RecordView, valueColumn, regionColumn string, opts ...Option) (AggregateResult, error) {
	result := AggregateResult{KeyColumn: regionColumn, ValueColumn: valueColumn, Groups: []Group{}}

	if err := requireColumns(view, valueColumn, regionColumn); err != nil {
		return result, err
	}

	filters := applyOptions(opts)
	if filters.Region != nil && filters.RegionColumn == "" {
		filters.RegionColumn = regionColumn
	}
	filtered, err := ApplyFilters(view, filters)
	if err != nil {
		return result, err
	}
	if filtered.Len() == 0 {
		return result, nil
	}

	result.Groups = groupAndSum(filtered, valueColumn, func(i int) (string, float64) {
		return filtered.Dimension(i, regionColumn), 0
	})
	SortGroups(result.Groups, "value_desc")
	return result, nil
}

// AggregateByYear sums valueColumn per distinct year across the whole view,
// sorted ascending by year to form a timeline.
func AggregateByYear(view RecordView, valueColumn, yearColumn string) (AggregateResult, error) {
	result := AggregateResult{KeyColumn: yearColumn, ValueColumn: valueColumn, NumericKey: true, Groups: []Group{}}

	if err := requireColumns(view, valueColumn, yearColumn); err != nil {
		return result, err
	}
	if view.Len() == 0 {
		return result, nil
	}

	result.Groups = groupAndSum(view, valueColumn, func(i int) (string, float64) {
		year := view.Measure(i, yearColumn)
		return formatKey(year), year
	})
	SortGroups(result.Groups, "chronological")
	return result, nil
}

// ColumnTotals sums every column not in excluded over the rows surviving the
// filters. Every remaining column is present, in dataset order, even when its
// total is zero.
func ColumnTotals(view RecordView, excluded []string, opts ...Option) (Totals, error) {
	filters := applyOptions(opts)
	filtered, err := ApplyFilters(view, filters)
	if err != nil {
		return nil, err
	}

	skip := make(map[string]bool, len(excluded))
	for _, col := range excluded {
		skip[col] = true
	}

	totals := Totals{}
	for _, col := range view.Columns() {
		if skip[col] {
			continue
		}
		totals = append(totals, ColumnTotal{Column: col, Total: SumMeasure(filtered, col)})
	}
	return totals, nil
}

// ============================================================================
// GROUPING
// ============================================================================

// groupAndSum partitions the view by keyOf and sums valueColumn per group.
// Groups come back in first-encountered order.
func groupAndSum(view RecordView, valueColumn string, keyOf func(i int) (string, float64)) []Group {
	positions := make(map[string]int)
	groups := make([]Group, 0)

	for i := 0; i < view.Len(); i++ {
		key, ordinal := keyOf(i)
		pos, exists := positions[key]
		if !exists {
			pos = len(groups)
			positions[key] = pos
			groups = append(groups, Group{Key: key, ordinal: ordinal})
		}
		groups[pos].Value += view.Measure(i, valueColumn)
		groups[pos].Count++
	}
	return groups
}

// SumMeasure sums a named column across a view.
func SumMeasure(view RecordView, column string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += view.Measure(i, column)
	}
	return total
}

// ============================================================================
// SORTING
// ============================================================================

// SortGroups stably sorts groups by the specified sort mode.
// Unknown modes preserve grouping order.
func SortGroups(groups []Group, sortBy string) {
	switch sortBy {
	case "value_desc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	case "value_asc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value < groups[j].Value })
	case "chronological":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].ordinal < groups[j].ordinal })
	case "reverse_chronological":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].ordinal > groups[j].ordinal })
	case "label_asc":
		sort.SliceStable(groups, func(i, j int) bool { return strings.ToLower(groups[i].Key) < strings.ToLower(groups[j].Key) })
	default:
		// preserve grouping order
	}
}

// ============================================================================
// DISTINCT VALUES
// ============================================================================

// DistinctValues returns the sorted distinct text values of a column.
func DistinctValues(view RecordView, column string) ([]string, error) {
	if err := requireColumns(view, column); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	result := []string{}
	for i := 0; i < view.Len(); i++ {
		val := view.Dimension(i, column)
		if !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	sort.Strings(result)
	return result, nil
}

// DistinctYears returns the distinct values of a numeric column, ascending.
func DistinctYears(view RecordView, column string) ([]int, error) {
	if err := requireColumns(view, column); err != nil {
		return nil, err
	}
	seen := make(map[int]bool)
	result := []int{}
	for i := 0; i < view.Len(); i++ {
		year := int(view.Measure(i, column))
		if !seen[year] {
			seen[year] = true
			result = append(result, year)
		}
	}
	sort.Ints(result)
	return result, nil
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatNumber formats a value with comma separators and at most two decimals.
func FormatNumber(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	intPart := int64(v)
	decPart := int64((v-float64(intPart))*100 + 0.5)
	if decPart >= 100 {
		intPart++
		decPart -= 100
	}

	result := FormatInt(int(intPart))
	if decPart > 0 {
		result = fmt.Sprintf("%s.%02d", result, decPart)
	}
	if negative {
		result = "-" + result
	}
	return result
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// LabelForColumn returns a display label for a raw column name.
// "TOTAL IPC CRIMES" → "Total Ipc Crimes"; mixed-case names pass through.
func LabelForColumn(column string) string {
	if column == "" || column != strings.ToUpper(column) {
		return column
	}
	words := strings.Fields(strings.ToLower(column))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

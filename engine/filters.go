package engine

import (
	"fmt"
)

// ============================================================================
// FILTERS: Year/Region Equality Filtering via RecordView
// ============================================================================
// Year filter runs before the region filter. Both are equality predicates,
// so the order never changes the result; an empty intermediate view
// short-circuits to an empty view.
// Returns a SubView (index list into parent) with zero data copy.
// ============================================================================

// ApplyFilters returns a view of the rows matching every set filter.
// Filter columns must exist in the view.
// Empty filter = no restriction (returns original view).
func ApplyFilters(view RecordView, filters Filters) (RecordView, error) {
	if err := validateFilters(view, filters); err != nil {
		return nil, err
	}
	if filters.IsEmpty() {
		return view, nil
	}

	filtered := view
	if filters.Year != nil {
		want := float64(*filters.Year)
		filtered = selectRows(view, func(i int) bool {
			return view.Measure(i, filters.YearColumn) == want
		})
	}
	if filters.Region != nil && filtered.Len() > 0 {
		want := *filters.Region
		src := filtered
		filtered = selectRows(src, func(i int) bool {
			return src.Dimension(i, filters.RegionColumn) == want
		})
	}
	return filtered, nil
}

// selectRows keeps the rows of view for which keep returns true.
func selectRows(view RecordView, keep func(i int) bool) RecordView {
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if keep(i) {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}

func validateFilters(view RecordView, filters Filters) error {
	if filters.Year != nil {
		if filters.YearColumn == "" {
			return fmt.Errorf("%w: year filter without a year column", ErrInvalidArgument)
		}
		if err := requireColumns(view, filters.YearColumn); err != nil {
			return err
		}
	}
	if filters.Region != nil {
		if filters.RegionColumn == "" {
			return fmt.Errorf("%w: region filter without a region column", ErrInvalidArgument)
		}
		if err := requireColumns(view, filters.RegionColumn); err != nil {
			return err
		}
	}
	return nil
}

package engine

// ============================================================================
// FILTER OPTIONS: Functional options for the aggregation entry points
// ============================================================================

// Option configures which rows an aggregation reads.
type Option func(*Filters)

// Filters are independent equality predicates. A nil pointer means "no filter".
type Filters struct {
	YearColumn   string
	Year         *int
	RegionColumn string // empty → the aggregation's group column
	Region       *string
}

// WithYear keeps rows whose year column equals year numerically.
func WithYear(column string, year int) Option {
	return func(f *Filters) {
		f.YearColumn = column
		f.Year = &year
	}
}

// WithRegion keeps rows whose column is exactly value.
// No trimming and no case folding.
func WithRegion(column, value string) Option {
	return func(f *Filters) {
		f.RegionColumn = column
		f.Region = &value
	}
}

// IsEmpty returns true if no filter is set.
func (f Filters) IsEmpty() bool {
	return f.Year == nil && f.Region == nil
}

// applyOptions creates Filters from functional options.
func applyOptions(opts []Option) Filters {
	var f Filters
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

package schema

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spektr-org/nyaya/engine"
)

// ============================================================================
// INFERENCE: Heuristic column profiling for `nyaya describe`
// ============================================================================
// Classification pipeline per column:
//   1. Sample values → detect type (numeric or string)
//   2. Type + cardinality → classify role (dimension, measure, skip)
//   3. Year pattern → temporal flag
//   4. Dimension pairs → parent/child hierarchy (STATE/UT → DISTRICT)
//
// Loaded datasets are zero-filled, so "0" is treated as empty here.
// ============================================================================

// Role classifies what a column is useful for.
type Role string

const (
	RoleDimension Role = "dimension"
	RoleMeasure   Role = "measure"
	RoleSkipped   Role = "skipped"
)

// Profile describes the inferred shape of a dataset.
type Profile struct {
	Name    string          `json:"name"`
	Rows    int             `json:"rows"`
	Columns []ColumnProfile `json:"columns"`
}

// ColumnProfile is the inferred role and statistics of one column.
type ColumnProfile struct {
	Column          string   `json:"column"`
	DisplayName     string   `json:"displayName"`
	Role            Role     `json:"role"`
	SkipReason      string   `json:"skipReason,omitempty"`
	UniqueCount     int      `json:"uniqueCount"`
	EmptyCount      int      `json:"emptyCount"`
	SampleValues    []string `json:"sampleValues,omitempty"`
	IsTemporal      bool     `json:"isTemporal,omitempty"`
	Parent          string   `json:"parent,omitempty"`
	CardinalityHint string   `json:"cardinalityHint,omitempty"` // "low", "medium", "high"
	Total           float64  `json:"total,omitempty"`
}

// DescribeOptions controls inference.
type DescribeOptions struct {
	SampleSize int    // Max rows to inspect (0 = all). Default: 1000
	Name       string // Dataset name in the profile
}

// DefaultDescribeOptions returns sensible defaults.
func DefaultDescribeOptions() DescribeOptions {
	return DescribeOptions{SampleSize: 1000}
}

// Dimensions returns the columns classified as dimensions.
func (p Profile) Dimensions() []string { return p.columnsWithRole(RoleDimension) }

// Measures returns the columns classified as measures.
func (p Profile) Measures() []string { return p.columnsWithRole(RoleMeasure) }

func (p Profile) columnsWithRole(role Role) []string {
	var cols []string
	for _, c := range p.Columns {
		if c.Role == role {
			cols = append(cols, c.Column)
		}
	}
	return cols
}

// Describe profiles every column of view.
func Describe(view engine.RecordView, opts ...DescribeOptions) Profile {
	opt := DefaultDescribeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	rows := view.Len()
	if opt.SampleSize > 0 && opt.SampleSize < rows {
		rows = opt.SampleSize
	}

	profile := Profile{Name: opt.Name, Rows: view.Len()}
	for _, col := range view.Columns() {
		profile.Columns = append(profile.Columns, analyzeColumn(view, col, rows))
	}
	detectHierarchies(view, rows, profile.Columns)
	return profile
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

func analyzeColumn(view engine.RecordView, column string, rows int) ColumnProfile {
	col := ColumnProfile{
		Column:      column,
		DisplayName: engine.LabelForColumn(column),
	}

	unique := make(map[string]bool)
	numeric := 0
	decimals := false
	for i := 0; i < rows; i++ {
		val := view.Dimension(i, column)
		if val == "" || val == "0" {
			col.EmptyCount++
			continue
		}
		unique[val] = true
		if isNumeric(val) {
			numeric++
			if strings.Contains(val, ".") {
				decimals = true
			}
		}
	}
	col.UniqueCount = len(unique)

	filled := rows - col.EmptyCount
	if filled == 0 {
		col.Role = RoleSkipped
		col.SkipReason = "All values are empty or zero"
		return col
	}

	col.SampleValues = collectSamples(unique, 5)
	isNum := numeric >= int(float64(filled)*0.8)
	col.IsTemporal = isNum && !decimals && matchesAll(yearPattern, col.SampleValues)

	switch {
	case col.IsTemporal:
		col.Role = RoleDimension
	case isNum:
		col.Role = RoleMeasure
		col.Total = engine.SumMeasure(view, column)
	case col.UniqueCount == filled && filled > 10:
		col.Role = RoleSkipped
		col.SkipReason = "Unique per row, likely an identifier"
	default:
		col.Role = RoleDimension
	}

	switch {
	case col.UniqueCount <= 10:
		col.CardinalityHint = "low"
	case col.UniqueCount <= 100:
		col.CardinalityHint = "medium"
	default:
		col.CardinalityHint = "high"
	}
	return col
}

var yearPattern = regexp.MustCompile(`^(19|20)\d{2}$`)

func matchesAll(re *regexp.Regexp, values []string) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if !re.MatchString(v) {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// collectSamples picks up to maxSamples values in sorted order.
func collectSamples(unique map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(unique))
	for v := range unique {
		samples = append(samples, v)
	}
	sort.Strings(samples)
	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}

// ============================================================================
// HIERARCHY DETECTION
// ============================================================================

// detectHierarchies marks dimension A as parent of B when every value of B
// maps to exactly one value of A and A has fewer unique values. Among valid
// parents the one with the highest cardinality wins.
func detectHierarchies(view engine.RecordView, rows int, columns []ColumnProfile) {
	for i := range columns {
		child := &columns[i]
		if child.Role != RoleDimension || child.IsTemporal {
			continue
		}

		best, bestUnique := "", 0
		for j := range columns {
			parent := columns[j]
			if i == j || parent.Role != RoleDimension || parent.IsTemporal {
				continue
			}
			if parent.UniqueCount >= child.UniqueCount {
				continue
			}
			if maps, ok := functionalDependency(view, rows, child.Column, parent.Column); ok && maps > 1 {
				if parent.UniqueCount > bestUnique {
					best, bestUnique = parent.Column, parent.UniqueCount
				}
			}
		}
		child.Parent = best
	}
}

func functionalDependency(view engine.RecordView, rows int, child, parent string) (int, bool) {
	childToParent := make(map[string]string)
	for r := 0; r < rows; r++ {
		c, p := view.Dimension(r, child), view.Dimension(r, parent)
		if c == "" || c == "0" || p == "" || p == "0" {
			continue
		}
		if existing, ok := childToParent[c]; ok {
			if existing != p {
				return 0, false
			}
			continue
		}
		childToParent[c] = p
	}
	return len(childToParent), true
}

// String renders a profile as aligned plain text.
func (p Profile) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d rows, %d columns\n", p.Name, p.Rows, len(p.Columns))
	for _, c := range p.Columns {
		fmt.Fprintf(&b, "  %-40s %-9s unique=%-5d", c.Column, c.Role, c.UniqueCount)
		if c.Parent != "" {
			fmt.Fprintf(&b, " parent=%s", c.Parent)
		}
		if c.IsTemporal {
			b.WriteString(" temporal")
		}
		if c.Role == RoleMeasure {
			fmt.Fprintf(&b, " total=%s", engine.FormatNumber(c.Total))
		}
		if c.SkipReason != "" {
			fmt.Fprintf(&b, " (%s)", c.SkipReason)
		}
		b.WriteString("\n")
	}
	return b.String()
}

package schema

import (
	"fmt"

	"github.com/spektr-org/nyaya/engine"
)

// ============================================================================
// SCHEMA: Column contracts for the two crime datasets
// ============================================================================
// A Contract names the columns the HTTP shell and CLI rely on. Bind checks
// a loaded Dataset against it and adds the derived total column when the
// source file does not carry one.
// ============================================================================

// Contract describes the columns of one fixed dataset.
type Contract struct {
	Name           string   `json:"name"`
	YearColumn     string   `json:"yearColumn"`
	RegionColumn   string   `json:"regionColumn"`
	DistrictColumn string   `json:"districtColumn,omitempty"`
	ValueColumn    string   `json:"valueColumn"`
	Categories     []string `json:"categories,omitempty"` // summed into ValueColumn when set
	Excluded       []string `json:"excluded,omitempty"`   // skipped by category breakdowns
}

// IPCCrime is the district-level IPC crime dataset.
var IPCCrime = Contract{
	Name:           "ipc_crime",
	YearColumn:     "YEAR",
	RegionColumn:   "STATE/UT",
	DistrictColumn: "DISTRICT",
	ValueColumn:    "TOTAL IPC CRIMES",
	Excluded:       []string{"STATE/UT", "DISTRICT", "YEAR", "TOTAL IPC CRIMES"},
}

// WomenCrime is the state-level crimes against women dataset. Its total is
// derived from the seven category columns.
var WomenCrime = Contract{
	Name:         "women_crime",
	YearColumn:   "Year",
	RegionColumn: "State",
	ValueColumn:  "TOTAL WOMEN CRIMES",
	Categories: []string{
		"No. of Rape cases",
		"Kidnap And Assault",
		"Dowry Deaths",
		"Assault against women",
		"Assault against modesty of women",
		"Domestic violence",
		"Women Trafficking",
	},
	Excluded: []string{"State", "Year", "TOTAL WOMEN CRIMES"},
}

// Required returns every source column the contract reads.
func (c Contract) Required() []string {
	cols := []string{c.YearColumn, c.RegionColumn}
	if c.DistrictColumn != "" {
		cols = append(cols, c.DistrictColumn)
	}
	if len(c.Categories) > 0 {
		return append(cols, c.Categories...)
	}
	return append(cols, c.ValueColumn)
}

// Validate reports the first required column missing from view.
func (c Contract) Validate(view engine.RecordView) error {
	for _, col := range c.Required() {
		if !view.HasColumn(col) {
			return fmt.Errorf("%s: %w: %q", c.Name, engine.ErrUnknownColumn, col)
		}
	}
	return nil
}

// Bind validates ds and returns it with the derived total column added.
// Contracts without categories return ds unchanged.
func (c Contract) Bind(ds *engine.Dataset) (*engine.Dataset, error) {
	if err := c.Validate(ds); err != nil {
		return nil, err
	}
	if len(c.Categories) == 0 {
		return ds, nil
	}
	derived, err := ds.WithSumColumn(c.ValueColumn, c.Categories...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	return derived, nil
}

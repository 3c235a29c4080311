package engine

// ============================================================================
// TABLE BUILDER: Produces TableData from an aggregation or column totals
// ============================================================================

// BuildTable produces a two-column table (group key, value) with a total row.
func BuildTable(result AggregateResult, title string) *TableData {
	keyLabel := LabelForColumn(result.KeyColumn)
	valueLabel := LabelForColumn(result.ValueColumn)

	table := &TableData{
		Title: title,
		Columns: []Column{
			{Key: result.KeyColumn, Label: keyLabel, Type: keyType(result), Align: "left"},
			{Key: result.ValueColumn, Label: valueLabel, Type: "number", Align: "right"},
		},
		Rows: make([][]string, 0, len(result.Groups)),
	}

	for _, g := range result.Groups {
		table.Rows = append(table.Rows, []string{g.Key, FormatNumber(g.Value)})
	}

	if len(result.Groups) > 0 {
		table.Summary = &Summary{
			Label: "Total",
			Values: map[string]string{
				result.ValueColumn: FormatNumber(result.Total()),
			},
		}
	}
	return table
}

// BuildTotalsTable produces a (column, total) table for a category breakdown.
func BuildTotalsTable(totals Totals, title string) *TableData {
	table := &TableData{
		Title: title,
		Columns: []Column{
			{Key: "column", Label: "Crime", Type: "text", Align: "left"},
			{Key: "total", Label: "Total", Type: "number", Align: "right"},
		},
		Rows: make([][]string, 0, len(totals)),
	}
	for _, ct := range totals {
		table.Rows = append(table.Rows, []string{ct.Column, FormatNumber(ct.Total)})
	}
	if len(totals) > 0 {
		table.Summary = &Summary{
			Label:  "Total",
			Values: map[string]string{"total": FormatNumber(totals.Sum())},
		}
	}
	return table
}

func keyType(result AggregateResult) string {
	if result.NumericKey {
		return "number"
	}
	return "text"
}

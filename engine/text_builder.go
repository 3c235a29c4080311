package engine

import (
	"fmt"
	"math"
)

// ============================================================================
// TEXT BUILDER: One-line summaries for terminal output
// ============================================================================

// BuildText summarizes an aggregation: grand total, group count, and the
// leading group. For timelines the leading group is the latest year.
func BuildText(result AggregateResult) *TextData {
	if len(result.Groups) == 0 {
		return &TextData{
			Value: "0",
			Reply: "No records match your query filters.",
		}
	}

	total := result.Total()
	text := &TextData{
		Value:    FormatNumber(total),
		RawValue: total,
		Count:    len(result.Groups),
	}

	lead := result.Groups[0]
	if result.NumericKey {
		lead = result.Groups[len(result.Groups)-1]
		text.Reply = fmt.Sprintf("%s totals %s across %d years; %s %s had %s.",
			LabelForColumn(result.ValueColumn), text.Value, text.Count,
			LabelForColumn(result.KeyColumn), lead.Key, FormatNumber(lead.Value))
	} else {
		text.Reply = fmt.Sprintf("%s totals %s across %d groups; highest is %s with %s.",
			LabelForColumn(result.ValueColumn), text.Value, text.Count, lead.Key, FormatNumber(lead.Value))
	}
	text.Top = lead.Key
	text.TopValue = lead.Value
	return text
}

// BuildTotalsText summarizes a category breakdown by its largest column.
func BuildTotalsText(totals Totals) *TextData {
	if len(totals) == 0 {
		return &TextData{Value: "0", Reply: "No columns to total."}
	}
	top := totals[0]
	for _, ct := range totals[1:] {
		if ct.Total > top.Total {
			top = ct
		}
	}
	sum := totals.Sum()
	return &TextData{
		Value:    FormatNumber(sum),
		RawValue: sum,
		Count:    len(totals),
		Top:      top.Column,
		TopValue: top.Total,
		Reply: fmt.Sprintf("%d categories total %s; largest is %s with %s.",
			len(totals), FormatNumber(sum), top.Column, FormatNumber(top.Total)),
	}
}

// roundTo2 rounds to 2 decimal places.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

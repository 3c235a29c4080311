package engine

// ============================================================================
// CHART BUILDER: Produces ChartConfig from an aggregation
// ============================================================================
// Region leaderboards render as bars, year timelines as lines.
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildChart produces a single-series ChartConfig.
// Returns nil for an empty result.
func BuildChart(result AggregateResult, title string) *ChartConfig {
	if len(result.Groups) == 0 {
		return nil
	}

	chartType := "bar"
	if result.NumericKey {
		chartType = "line"
	}

	seriesName := title
	if seriesName == "" {
		seriesName = LabelForColumn(result.ValueColumn)
	}

	points := make([]ChartPoint, 0, len(result.Groups))
	for _, g := range result.Groups {
		points = append(points, ChartPoint{
			Label: g.Key,
			Value: roundTo2(g.Value),
		})
	}

	return &ChartConfig{
		ChartType:  chartType,
		Title:      title,
		XAxis:      LabelForColumn(result.KeyColumn),
		YAxis:      LabelForColumn(result.ValueColumn),
		Series:     []ChartSeries{{Name: seriesName, Data: points, Color: defaultColors[0]}},
		Colors:     assignColors(1),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

// BuildTotalsChart renders a category breakdown as a pie.
func BuildTotalsChart(totals Totals, title string) *ChartConfig {
	if len(totals) == 0 {
		return nil
	}
	points := make([]ChartPoint, 0, len(totals))
	for _, ct := range totals {
		points = append(points, ChartPoint{Label: ct.Column, Value: roundTo2(ct.Total)})
	}
	return &ChartConfig{
		ChartType:  "pie",
		Title:      title,
		Series:     []ChartSeries{{Name: title, Data: points}},
		Colors:     assignColors(len(points)),
		ShowLegend: true,
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}

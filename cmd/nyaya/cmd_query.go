package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spektr-org/nyaya/engine"
	"github.com/spektr-org/nyaya/helpers"
	"github.com/spektr-org/nyaya/schema"
)

// ============================================================================
// QUERY: dataset aggregation from the command line
// ============================================================================

func runQuery(cmd *cobra.Command, args []string) error {
	contract, file, err := datasetContract(datasetName)
	if err != nil {
		return err
	}
	ds, err := helpers.LoadCSV(filepath.Join(cfg.Data.Dir, file))
	if err != nil {
		return err
	}
	if ds, err = contract.Bind(ds); err != nil {
		return err
	}
	slog.Info("dataset loaded", "dataset", contract.Name, "rows", ds.Len())

	q := buildQuery(contract, cmd)
	result, err := engine.Execute(q, ds)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(outFile)
	if err != nil {
		return err
	}
	defer closeOut()
	return writeResult(w, result, contract.Name, format)
}

func datasetContract(name string) (schema.Contract, string, error) {
	switch name {
	case "ipc":
		return schema.IPCCrime, cfg.Data.IPCCrime, nil
	case "women":
		return schema.WomenCrime, cfg.Data.WomenCrime, nil
	default:
		return schema.Contract{}, "", fmt.Errorf("%w: unknown dataset %q (want ipc or women)", engine.ErrInvalidArgument, name)
	}
}

// buildQuery fills unset columns from the contract. Filters apply only when
// their flags were given.
func buildQuery(contract schema.Contract, cmd *cobra.Command) engine.Query {
	q := engine.Query{
		Kind:         queryKind,
		ValueColumn:  valueColumn,
		GroupColumn:  groupColumn,
		YearColumn:   contract.YearColumn,
		RegionColumn: contract.RegionColumn,
		Exclude:      contract.Excluded,
		Limit:        queryLimit,
	}
	if q.ValueColumn == "" {
		q.ValueColumn = contract.ValueColumn
	}
	if q.GroupColumn == "" {
		q.GroupColumn = contract.RegionColumn
	}
	if cmd.Flags().Changed("year") {
		year := queryYear
		q.Year = &year
	}
	if cmd.Flags().Changed("state") {
		state := queryState
		q.Region = &state
	}
	return q
}

func runDescribe(cmd *cobra.Command, args []string) error {
	ds, err := helpers.LoadCSV(args[0])
	if err != nil {
		return err
	}
	opts := schema.DefaultDescribeOptions()
	opts.Name = filepath.Base(args[0])
	profile := schema.Describe(ds, opts)

	w, closeOut, err := openOutput(outFile)
	if err != nil {
		return err
	}
	defer closeOut()

	if format == "text" {
		_, err := fmt.Fprintln(w, profile.String())
		return err
	}
	return writeJSON(w, profile, format)
}

// ============================================================================
// OUTPUT
// ============================================================================

type queryOutput struct {
	Result *engine.Result      `json:"result"`
	Table  *engine.TableData   `json:"table"`
	Chart  *engine.ChartConfig `json:"chart,omitempty"`
	Text   *engine.TextData    `json:"text"`
}

// openOutput returns stdout, or a created file when path is set.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			slog.Warn("closing output file failed", "path", path, "error", err)
		}
	}, nil
}

func writeResult(w io.Writer, result *engine.Result, title, format string) error {
	out := queryOutput{Result: result}
	if result.Aggregate != nil {
		out.Table = engine.BuildTable(*result.Aggregate, title)
		out.Chart = engine.BuildChart(*result.Aggregate, title)
		out.Text = engine.BuildText(*result.Aggregate)
	} else {
		out.Table = engine.BuildTotalsTable(result.Totals, title)
		out.Chart = engine.BuildTotalsChart(result.Totals, title)
		out.Text = engine.BuildTotalsText(result.Totals)
	}

	switch format {
	case "csv":
		return writeCSV(w, out.Table)
	case "text":
		_, err := fmt.Fprintln(w, out.Text.Reply)
		return err
	default:
		return writeJSON(w, out, format)
	}
}

// writeCSV writes the table with its labels as the header row and the
// summary, if any, as the last row.
func writeCSV(w io.Writer, table *engine.TableData) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		headers[i] = col.Label
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	if table.Summary != nil && len(table.Columns) > 0 {
		row := []string{table.Summary.Label}
		for _, col := range table.Columns[1:] {
			row = append(row, table.Summary.Values[col.Key])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, v any, format string) error {
	var (
		out []byte
		err error
	)
	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

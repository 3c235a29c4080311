package helpers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spektr-org/nyaya/engine"
)

// ============================================================================
// CSV HELPER: Parses tabular files into a columnar engine.Dataset
// ============================================================================
// Header names are trimmed; data cells are kept exactly as written. Empty
// cells and the usual NA markers ("NaN", "NULL", "N/A", ...) are missing, and
// every missing cell is filled with zero regardless of the column's type, so
// text columns may contain "0". Short rows are padded with the fill value,
// long rows are cut to the header width.
// ============================================================================

// naTokens are the cell values read as missing, matching the markers that
// pandas read_csv recognizes by default.
var naTokens = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true,
	"-1.#IND": true, "-1.#QNAN": true, "-NaN": true, "-nan": true,
	"1.#IND": true, "1.#QNAN": true, "<NA>": true, "N/A": true,
	"NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// ErrDataLoad is returned when a dataset cannot be read or has no columns.
var ErrDataLoad = errors.New("data load failed")

// LoadCSV reads the file at path into a Dataset.
func LoadCSV(path string) (*engine.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	ds, err := ParseCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// ParseCSV parses CSV from r. The first record is the header.
func ParseCSV(r io.Reader) (*engine.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrDataLoad)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV headers: %v", ErrDataLoad, err)
	}

	columns := make([]string, len(headers))
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		columns[i] = strings.TrimSpace(h)
	}
	if len(columns) == 0 || (len(columns) == 1 && columns[0] == "") {
		return nil, fmt.Errorf("%w: zero columns", ErrDataLoad)
	}

	var rows [][]any
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
		}

		row := make([]any, len(columns))
		for i := range columns {
			if i >= len(record) {
				break
			}
			if val := record[i]; !naTokens[val] {
				row[i] = val
			}
		}
		rows = append(rows, row)
	}

	ds, err := engine.NewDataset(columns, rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	return ds, nil
}

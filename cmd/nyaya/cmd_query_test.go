package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/nyaya/config"
	"github.com/spektr-org/nyaya/engine"
	"github.com/spektr-org/nyaya/schema"
)

func regionResult() *engine.Result {
	return &engine.Result{
		Kind:    engine.KindRegion,
		Matched: 3,
		Aggregate: &engine.AggregateResult{
			KeyColumn:   "STATE/UT",
			ValueColumn: "TOTAL IPC CRIMES",
			Groups: []engine.Group{
				{Key: "KERALA", Value: 1200, Count: 2},
				{Key: "GOA", Value: 3, Count: 1},
			},
		},
	}
}

func TestWriteResult_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, regionResult(), "ipc_crime", "csv"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, "KERALA,\"1,200\"", string(lines[1]))
	assert.Equal(t, "GOA,3", string(lines[2]))
	assert.Equal(t, "Total,\"1,203\"", string(lines[3]))
}

func TestWriteResult_TotalsCSV(t *testing.T) {
	result := &engine.Result{
		Kind:   engine.KindTotals,
		Totals: engine.Totals{{Column: "MURDER", Total: 17}, {Column: "THEFT", Total: 63}},
	}
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, result, "ipc_crime", "csv"))
	assert.Equal(t, "Crime,Total\nMURDER,17\nTHEFT,63\nTotal,80\n", buf.String())
}

func TestWriteResult_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, regionResult(), "ipc_crime", "text"))
	assert.Contains(t, buf.String(), "highest is KERALA")
}

func TestWriteResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, regionResult(), "ipc_crime", "json"))

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Contains(t, out, "result")
	assert.Contains(t, out, "table")
	assert.Contains(t, out, "chart")
	assert.Contains(t, out, "text")
}

func TestDatasetContract(t *testing.T) {
	cfg = config.Default()

	c, file, err := datasetContract("women")
	require.NoError(t, err)
	assert.Equal(t, schema.WomenCrime.Name, c.Name)
	assert.Equal(t, "women_crime.csv", file)

	_, _, err = datasetContract("traffic")
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
}

func TestBuildQuery(t *testing.T) {
	cmd := &cobra.Command{Use: "query"}
	cmd.Flags().IntVar(&queryYear, "year", 0, "")
	cmd.Flags().StringVar(&queryState, "state", "", "")
	queryKind, groupColumn, valueColumn, queryLimit = engine.KindRegion, "", "", 5

	q := buildQuery(schema.IPCCrime, cmd)
	assert.Equal(t, "TOTAL IPC CRIMES", q.ValueColumn)
	assert.Equal(t, "STATE/UT", q.GroupColumn)
	assert.Nil(t, q.Year)
	assert.Nil(t, q.Region)
	assert.Equal(t, 5, q.Limit)

	require.NoError(t, cmd.Flags().Set("year", "2012"))
	require.NoError(t, cmd.Flags().Set("state", "KERALA"))
	q = buildQuery(schema.IPCCrime, cmd)
	require.NotNil(t, q.Year)
	assert.Equal(t, 2012, *q.Year)
	require.NotNil(t, q.Region)
	assert.Equal(t, "KERALA", *q.Region)
}

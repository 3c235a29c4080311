package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaderboard() AggregateResult {
	return AggregateResult{
		KeyColumn:   "DISTRICT",
		ValueColumn: "TOTAL IPC CRIMES",
		Groups: []Group{
			{Key: "a", Value: 30, Count: 1},
			{Key: "b", Value: 20, Count: 1},
			{Key: "c", Value: 10, Count: 1},
		},
	}
}

func TestTopN(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"truncates", 2, []string{"a", "b"}},
		{"exact size", 3, []string{"a", "b", "c"}},
		{"oversized", 10, []string{"a", "b", "c"}},
		{"one", 1, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TopN(leaderboard(), tt.n)
			require.NoError(t, err)
			keys := []string{}
			for _, g := range got.Groups {
				keys = append(keys, g.Key)
			}
			assert.Equal(t, tt.want, keys)
			assert.Equal(t, "DISTRICT", got.KeyColumn)
		})
	}
}

func TestTopN_OversizedIsIdentity(t *testing.T) {
	in := leaderboard()
	got, err := TopN(in, len(in.Groups)+5)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestTopN_RejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := TopN(leaderboard(), n)
		assert.ErrorIs(t, err, ErrInvalidArgument, "n=%d", n)
	}
}

func TestTopN_DoesNotAliasInput(t *testing.T) {
	in := leaderboard()
	got, err := TopN(in, 2)
	require.NoError(t, err)

	got.Groups[0].Key = "changed"
	assert.Equal(t, "a", in.Groups[0].Key)
}

func TestTopN_Empty(t *testing.T) {
	got, err := TopN(AggregateResult{Groups: []Group{}}, 10)
	require.NoError(t, err)
	assert.Empty(t, got.Groups)
}

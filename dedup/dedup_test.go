package dedup_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/dedupath/dedup"
	"github.com/katalvlaran/dedupath/record"
	"github.com/katalvlaran/dedupath/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exact(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	return 0
}

// Trivial exact match: one cluster {0,1}; singleton 2 omitted.
func TestTrivialExactMatch(t *testing.T) {
	recs := []record.Record{{"n": "a"}, {"n": "a"}, {"n": "b"}}

	cfg, err := dedup.NewConfig(
		[]scoring.NamedComparator{{Attribute: "n", Compare: exact}},
		dedup.WithBlockingAttributes("n"),
	)
	require.NoError(t, err)

	engine, err := dedup.New(cfg)
	require.NoError(t, err)

	clusters, stats, err := engine.Run(context.Background(), recs)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Members, 2)
	assert.NotEmpty(t, clusters[0].ID)
	assert.Equal(t, 2, stats.NumBlocks)
}

func TestNewConfig_Validation(t *testing.T) {
	_, err := dedup.NewConfig(nil)
	require.Error(t, err)

	_, err = dedup.NewConfig([]scoring.NamedComparator{{Attribute: "n", Compare: exact}})
	require.Error(t, err) // neither blocking_attributes nor blocking_rule given
}

func TestEngine_EmptyInput(t *testing.T) {
	cfg, err := dedup.NewConfig(
		[]scoring.NamedComparator{{Attribute: "n", Compare: exact}},
		dedup.WithBlockingAttributes("n"),
	)
	require.NoError(t, err)
	engine, err := dedup.New(cfg)
	require.NoError(t, err)

	_, _, err = engine.Run(context.Background(), nil)
	require.ErrorIs(t, err, dedup.ErrEmptyInput)
}

func TestMergeClusterizations(t *testing.T) {
	// Two overlapping groups from adjacent sliding-window sub-blocks.
	groups := [][]int{{0, 1, 2}, {1, 2, 3}}
	merged := dedup.MergeClusterizations(5, groups)
	assert.Equal(t, merged[0], merged[3]) // transitively joined via shared members
	assert.NotEqual(t, merged[0], merged[4])
}

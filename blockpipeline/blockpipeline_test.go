package blockpipeline_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dedupath/blockpipeline"
	"github.com/katalvlaran/dedupath/blockrule"
	"github.com/katalvlaran/dedupath/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dobRecords(n int) []record.Record {
	out := make([]record.Record, n)
	for i := 0; i < n; i++ {
		out[i] = record.Record{"dob": fmt.Sprintf("1990-01-%02d", i+1)}
	}

	return out
}

// A block of 10 records sorted by dob, window 3, step 1, yields 8
// overlapping sub-blocks each of size 3.
func TestSortedNeighborhoodSplitter(t *testing.T) {
	data := dobRecords(10)

	splitter := blockpipeline.NewSortedNeighborhoodSplitter(1 /* force split */, 3, 1, "dob")
	pipe := blockpipeline.New(blockrule.Cartesian(), blockpipeline.WithSplitter(splitter))

	blocks, stats, err := pipe.Run(data)
	require.NoError(t, err)
	require.Len(t, blocks, 8)
	for _, b := range blocks {
		assert.Len(t, b.Records, 3)
	}
	assert.Equal(t, 8, stats.NumBlocks)
}

func TestOperationCounters(t *testing.T) {
	data := []record.Record{
		{"a": "x"}, {"a": "x"}, {"a": "x"}, // block of 3
		{"a": "y"}, {"a": "y"}, // block of 2
		{"a": "z"}, // singleton block
	}

	pipe := blockpipeline.New(blockrule.Leaf("a"))
	blocks, stats, err := pipe.Run(data)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.EqualValues(t, 15, stats.OperationsBeforeBlocking) // C(6,2)
	assert.EqualValues(t, 3+1+0, stats.OperationsAfterBlocking) // C(3,2)+C(2,2... )
}

func TestCardinalityFilter_DropsOutOfRange(t *testing.T) {
	data := []record.Record{
		{"a": "x"}, {"a": "x"}, {"a": "x"},
		{"a": "y"}, {"a": "y"},
		{"a": "z"},
	}

	pipe := blockpipeline.New(
		blockrule.Leaf("a"),
		blockpipeline.WithFilters(blockpipeline.CardinalityFilter{MinSize: 2, MaxSize: 0}),
	)
	blocks, _, err := pipe.Run(data)
	require.NoError(t, err)
	require.Len(t, blocks, 2) // the singleton "z" block is dropped
	for _, b := range blocks {
		assert.GreaterOrEqual(t, len(b.Records), 2)
	}
}

func TestEmptyInput(t *testing.T) {
	pipe := blockpipeline.New(blockrule.Leaf("a"))
	_, _, err := pipe.Run(nil)
	require.ErrorIs(t, err, blockpipeline.ErrEmptyInput)
}

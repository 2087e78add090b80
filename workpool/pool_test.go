package workpool_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/dedupath/blockpipeline"
	"github.com/katalvlaran/dedupath/record"
	"github.com/katalvlaran/dedupath/scoring"
	"github.com/katalvlaran/dedupath/workpool"
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

func TestPool_Run_MixedBlocks(t *testing.T) {
	scorer, err := scoring.New([]scoring.NamedComparator{{Attribute: "n", Compare: exact}}, scoring.Mean, 0.8)
	require.NoError(t, err)

	pool, err := workpool.New(2, scorer, 0.2, 2, nil)
	require.NoError(t, err)

	blocks := []blockpipeline.Block{
		{
			ID:         0,
			MentionIds: []int{0, 1},
			Records:    []record.Record{{"n": "a"}, {"n": "a"}},
		},
		{
			ID:         1,
			MentionIds: []int{2},
			Records:    []record.Record{{"n": "z"}},
		},
	}

	results, err := pool.Run(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byID := map[int]workpool.BlockResult{}
	for _, r := range results {
		byID[r.BlockID] = r
	}

	assert.Equal(t, byID[0].Labels[0], byID[0].Labels[1])
	assert.Equal(t, 0, byID[1].Labels[0])
}

func TestPool_Run_CancelledContextHaltsDispatch(t *testing.T) {
	scorer, err := scoring.New([]scoring.NamedComparator{{Attribute: "n", Compare: exact}}, scoring.Mean, 0.8)
	require.NoError(t, err)
	pool, err := workpool.New(1, scorer, 0.2, 2, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocks := []blockpipeline.Block{
		{ID: 0, MentionIds: []int{0}, Records: []record.Record{{"n": "a"}}},
	}
	results, err := pool.Run(ctx, blocks)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNew_Validation(t *testing.T) {
	_, err := workpool.New(0, nil, 0.2, 2, nil)
	require.ErrorIs(t, err, workpool.ErrNoWorkers)
}

func TestDefaultWorkerCount_NeverExceedsN(t *testing.T) {
	assert.Equal(t, 1, workpool.DefaultWorkerCount(1))
	assert.LessOrEqual(t, workpool.DefaultWorkerCount(3), 3)
	assert.GreaterOrEqual(t, workpool.DefaultWorkerCount(100), 1)
}

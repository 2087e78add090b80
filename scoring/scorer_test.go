package scoring_test

import (
	"testing"

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

// jaro is a minimal Jaro string-similarity stand-in (not a production
// comparator) used only to exercise S2's clustering behavior.
func jaro(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	matchDist := len(a)
	if len(b) > matchDist {
		matchDist = len(b)
	}
	matchDist = matchDist/2 - 1
	if matchDist < 0 {
		matchDist = 0
	}

	aMatched := make([]bool, len(a))
	bMatched := make([]bool, len(b))
	matches := 0
	for i := range a {
		lo := i - matchDist
		if lo < 0 {
			lo = 0
		}
		hi := i + matchDist + 1
		if hi > len(b) {
			hi = len(b)
		}
		for j := lo; j < hi; j++ {
			if bMatched[j] || a[i] != b[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++

			break
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	k := 0
	for i := range a {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if a[i] != b[k] {
			transpositions++
		}
		k++
	}
	t := float64(transpositions / 2)
	m := float64(matches)

	return (m/float64(len(a)) + m/float64(len(b)) + (m-t)/m) / 3
}

func TestPairScorer_ExactMatch(t *testing.T) {
	recs := []record.Record{{"n": "a"}, {"n": "a"}, {"n": "b"}}
	scorer, err := scoring.New([]scoring.NamedComparator{{Attribute: "n", Compare: exact}}, scoring.Mean, 0.8)
	require.NoError(t, err)

	m := scorer.Score(recs)
	assert.Equal(t, 1.0, m[0][1])
	assert.Equal(t, 0.0, m[0][2])
	assert.Equal(t, 1.0, m[0][0]) // diagonal
}

// Jaro comparator, threshold 0.8: {abcd,abce} score above threshold,
// zzzz scores 0 against both.
func TestPairScorer_ThresholdCutoff(t *testing.T) {
	recs := []record.Record{{"n": "abcd"}, {"n": "abce"}, {"n": "zzzz"}}
	scorer, err := scoring.New([]scoring.NamedComparator{{Attribute: "n", Compare: jaro}}, scoring.Mean, 0.8)
	require.NoError(t, err)

	m := scorer.Score(recs)
	assert.Greater(t, m[0][1], 0.8)
	assert.Equal(t, 0.0, m[0][2])
	assert.Equal(t, 0.0, m[1][2])
}

func TestPairScorer_EmptyAndSingleton(t *testing.T) {
	scorer, err := scoring.New([]scoring.NamedComparator{{Attribute: "n", Compare: exact}}, scoring.Mean, 0.8)
	require.NoError(t, err)

	empty := scorer.Score(nil)
	assert.Equal(t, 0, empty.N())

	single := scorer.Score([]record.Record{{"n": "a"}})
	require.Equal(t, 1, single.N())
	assert.Equal(t, 1.0, single[0][0])
}

func TestPairScorer_AggregationStrategies(t *testing.T) {
	recs := []record.Record{{"x": "1", "y": "1"}, {"x": "1", "y": "0"}}
	comparators := []scoring.NamedComparator{
		{Attribute: "x", Compare: exact},
		{Attribute: "y", Compare: exact},
	}

	max, err := scoring.New(comparators, scoring.Max, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, max.Score(recs)[0][1])

	min, err := scoring.New(comparators, scoring.Min, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, min.Score(recs)[0][1])

	mean, err := scoring.New(comparators, scoring.Mean, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, mean.Score(recs)[0][1])
}

func TestNew_Validation(t *testing.T) {
	_, err := scoring.New(nil, scoring.Mean, 0.8)
	require.ErrorIs(t, err, scoring.ErrNoComparators)

	_, err = scoring.New([]scoring.NamedComparator{{Attribute: "n", Compare: exact}}, scoring.Aggregation(99), 0.8)
	require.ErrorIs(t, err, scoring.ErrUnknownAggregation)
}

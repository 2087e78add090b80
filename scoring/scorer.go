package scoring

import (
	"sort"

	"github.com/katalvlaran/dedupath/record"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PairScorer enumerates all C(n,2) pairs of a block in lexicographic
// (i<j) order, scores each pair across a set of NamedComparators,
// aggregates the score vector to a scalar, and assembles an n×n
// similarity Matrix with a below-threshold cutoff.
type PairScorer struct {
	Comparators []NamedComparator
	Aggregation Aggregation
	Threshold   float64
}

// New builds a PairScorer. comparators must be non-empty.
func New(comparators []NamedComparator, agg Aggregation, threshold float64) (*PairScorer, error) {
	if len(comparators) == 0 {
		return nil, ErrNoComparators
	}
	switch agg {
	case Mean, Median, Max, Min:
	default:
		return nil, ErrUnknownAggregation
	}

	return &PairScorer{Comparators: comparators, Aggregation: agg, Threshold: threshold}, nil
}

// Score builds the similarity matrix for recs. n=0 returns an empty
// Matrix; n=1 returns a 1x1 matrix with diagonal 1. (workpool gives a
// singleton block label 0 without scoring or clustering it, since
// DBSCAN with min_samples>=2 would label it noise.)
func (s *PairScorer) Score(recs []record.Record) Matrix {
	n := len(recs)
	m := NewMatrix(n)
	if n == 0 {
		return m
	}
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}

	vec := make([]float64, len(s.Comparators))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k, nc := range s.Comparators {
				vec[k] = nc.Compare(recs[i].Get(nc.Attribute), recs[j].Get(nc.Attribute))
			}
			score := s.aggregate(vec)
			if score < s.Threshold {
				score = 0
			}
			m[i][j] = score
			m[j][i] = score
		}
	}

	return m
}

func (s *PairScorer) aggregate(vec []float64) float64 {
	switch s.Aggregation {
	case Median:
		sorted := append([]float64(nil), vec...)
		sort.Float64s(sorted)

		mid := len(sorted) / 2
		if len(sorted)%2 == 1 {
			return sorted[mid]
		}

		// Even length: average the two central values, matching
		// np.median rather than gonum's non-interpolating Empirical
		// quantile (which would just return sorted[mid-1]).
		return (sorted[mid-1] + sorted[mid]) / 2
	case Max:
		return floats.Max(vec)
	case Min:
		return floats.Min(vec)
	default: // Mean
		return stat.Mean(vec, nil)
	}
}

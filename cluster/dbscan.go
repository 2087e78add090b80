package cluster

import (
	"github.com/katalvlaran/dedupath/labelalgebra"
	"github.com/katalvlaran/dedupath/scoring"
)

const unvisited = -2

// DBSCAN takes a similarity matrix S (n×n, symmetric, diagonal 1),
// computes D = 1 - S and runs density-based clustering with
// metric=precomputed. A point is core if it has at
// least minSamples neighbors (including itself) within eps. Clusters
// grow by density-reachability from core points; points reachable from
// no core point are labeled labelalgebra.NoiseLabel.
//
// Output is deterministic for identical inputs: points are visited in
// index order and each cluster's frontier is expanded in the order
// neighbors were discovered, so two runs over the same matrix always
// yield the same labels up to the dense [0,K) label identity DBSCAN
// constructs them in — no renumbering ambiguity remains.
func DBSCAN(sim scoring.Matrix, eps float64, minSamples int) (labelalgebra.LabelVector, error) {
	n := sim.N()
	for _, row := range sim {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}
	if eps <= 0 || eps > 1 {
		return nil, ErrInvalidEps
	}
	if minSamples < 2 {
		return nil, ErrInvalidMinSamples
	}
	if n == 0 {
		return labelalgebra.LabelVector{}, nil
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = unvisited
	}

	regionQuery := func(i int) []int {
		var neighbors []int
		for j := 0; j < n; j++ {
			if 1-sim[i][j] <= eps {
				neighbors = append(neighbors, j)
			}
		}

		return neighbors
	}

	nextCluster := 0
	for i := 0; i < n; i++ {
		if labels[i] != unvisited {
			continue
		}

		neighbors := regionQuery(i)
		if len(neighbors) < minSamples {
			labels[i] = labelalgebra.NoiseLabel

			continue
		}

		labels[i] = nextCluster
		seeds := append([]int(nil), neighbors...)
		for head := 0; head < len(seeds); head++ {
			p := seeds[head]
			if labels[p] == labelalgebra.NoiseLabel {
				labels[p] = nextCluster
			}
			if labels[p] != unvisited {
				continue
			}
			labels[p] = nextCluster

			pNeighbors := regionQuery(p)
			if len(pNeighbors) >= minSamples {
				seeds = append(seeds, pNeighbors...)
			}
		}
		nextCluster++
	}

	return labelalgebra.LabelVector(labels), nil
}

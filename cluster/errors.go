// Package cluster implements DBSCAN over a precomputed distance matrix.
// No library in the example pack or wider ecosystem implements
// metric=precomputed DBSCAN directly usable here (gonum has no
// clustering package); this is grounded in the teacher's queue-draining
// traversal idiom (bfs.BFS's frontier/visited-set loop), generalized
// from graph-adjacency expansion to epsilon-neighborhood expansion over
// a dense distance matrix.
package cluster

import "errors"

// ErrDimensionMismatch indicates a non-square or jagged distance matrix.
var ErrDimensionMismatch = errors.New("cluster: distance matrix must be square")

// ErrInvalidEps indicates eps outside (0,1].
var ErrInvalidEps = errors.New("cluster: eps must be in (0,1]")

// ErrInvalidMinSamples indicates min_samples < 2.
var ErrInvalidMinSamples = errors.New("cluster: min_samples must be >= 2")

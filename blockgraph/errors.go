// Package blockgraph represents a blocking as either a LabelVector
// (disjoint groups) or an undirected graph, converting lazily between
// the two. The graph representation is backed by
// gonum.org/v1/gonum/graph/simple.UndirectedGraph rather than a
// hand-rolled adjacency structure, and connected-components extraction
// from the graph side uses gonum.org/v1/gonum/graph/topo — the same
// graph/simple/topo trio exercised in the example pack's
// beadwork dependency analyzer.
package blockgraph

import "errors"

// ErrNegativeN indicates a Graph or BlockGraph was asked to operate
// over a negative vertex count.
var ErrNegativeN = errors.New("blockgraph: n must be non-negative")

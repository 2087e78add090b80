package blockgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/dedupath/labelalgebra"
)

// Graph is an undirected simple graph over vertex set [0, N), backed by
// gonum's simple.UndirectedGraph. Every vertex 0..N-1 is always present,
// even if isolated, so that Labels() below always returns one entry per
// original record.
type Graph struct {
	n int
	g *simple.UndirectedGraph
}

// NewEmptyGraph returns a Graph over n isolated vertices.
func NewEmptyGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeN
	}
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	return &Graph{n: n, g: g}, nil
}

// N returns the vertex count.
func (gr *Graph) N() int { return gr.n }

// AddEdge inserts an undirected edge {u,v}. A loop (u==v) is a no-op:
// it can never change connectivity and blocking graphs never need it.
func (gr *Graph) AddEdge(u, v int) {
	if u == v {
		return
	}
	gr.g.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
}

// HasEdge reports whether {u,v} is connected directly (not transitively).
func (gr *Graph) HasEdge(u, v int) bool {
	return gr.g.HasEdgeBetween(int64(u), int64(v))
}

// Underlying exposes the gonum graph for algorithms that want it directly
// (e.g. topo.ConnectedComponents, or a caller wiring in more gonum/graph
// analyses later).
func (gr *Graph) Underlying() *simple.UndirectedGraph { return gr.g }

// Labels computes the connected-components LabelVector of gr via
// gonum/graph/topo.ConnectedComponents. Component order (and therefore
// label assignment) follows topo's own node-visitation order; callers
// that need a canonical order should rely only on equivalence, not on
// specific label values.
func (gr *Graph) Labels() labelalgebra.LabelVector {
	components := topo.ConnectedComponents(gr.g)
	out := make(labelalgebra.LabelVector, gr.n)
	for label, comp := range components {
		for _, node := range comp {
			out[node.ID()] = label
		}
	}

	return out
}

// CliqueGraph builds the "complete subgraph per group" encoding of a
// LabelVector: every intra-group pair is connected. Used to implement
// AND exactly (the meet of equivalence relations is exact no matter
// how densely it's materialized, but AND's level=graph path uses
// cliques so that Intersection below can test edge presence directly).
func CliqueGraph(v labelalgebra.LabelVector) (*Graph, error) {
	gr, err := NewEmptyGraph(len(v))
	if err != nil {
		return nil, err
	}
	for _, group := range v.Groups() {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				gr.AddEdge(group[i], group[j])
			}
		}
	}

	return gr, nil
}

// PathGraph builds the "spanning path per group" encoding of a
// LabelVector: members of a group are connected as a path in input
// (MentionId) order. This preserves the same transitive closure as
// CliqueGraph (same connected components) with only O(|group|) edges
// instead of O(|group|^2) — the asymptotic win OR relies on.
func PathGraph(v labelalgebra.LabelVector) (*Graph, error) {
	gr, err := NewEmptyGraph(len(v))
	if err != nil {
		return nil, err
	}
	for _, group := range v.Groups() {
		for i := 1; i < len(group); i++ {
			gr.AddEdge(group[i-1], group[i])
		}
	}

	return gr, nil
}

// Intersection returns a Graph whose edges are exactly those present in
// every graph in gs — the operational form of AND over rules. All
// graphs must share the same N. Returns ErrNegativeN if gs is empty.
func Intersection(gs ...*Graph) (*Graph, error) {
	if len(gs) == 0 {
		return nil, ErrNegativeN
	}
	n := gs[0].n
	out, err := NewEmptyGraph(n)
	if err != nil {
		return nil, err
	}

	first := gs[0]
	nodes := graph.NodesOf(first.g.Nodes())
	for _, fromNode := range nodes {
		u := fromNode.ID()
		to := graph.NodesOf(first.g.From(u))
		for _, toNode := range to {
			v := toNode.ID()
			if v <= u {
				continue // visit each undirected edge once
			}
			inAll := true
			for _, other := range gs[1:] {
				if !other.HasEdge(int(u), int(v)) {
					inAll = false

					break
				}
			}
			if inAll {
				out.AddEdge(int(u), int(v))
			}
		}
	}

	return out, nil
}

// Union returns a Graph whose edges are those present in any graph in
// gs — the operational form of OR over rules.
func Union(gs ...*Graph) (*Graph, error) {
	if len(gs) == 0 {
		return nil, ErrNegativeN
	}
	n := gs[0].n
	out, err := NewEmptyGraph(n)
	if err != nil {
		return nil, err
	}
	for _, gr := range gs {
		nodes := graph.NodesOf(gr.g.Nodes())
		for _, fromNode := range nodes {
			u := fromNode.ID()
			to := graph.NodesOf(gr.g.From(u))
			for _, toNode := range to {
				v := toNode.ID()
				if v <= u {
					continue
				}
				out.AddEdge(int(u), int(v))
			}
		}
	}

	return out, nil
}

package blockgraph

import "github.com/katalvlaran/dedupath/labelalgebra"

// Kind selects which graph encoding a BlockGraph materializes when it
// converts a LabelVector into a Graph: Clique for exact AND semantics,
// Path for the asymptotically cheaper OR semantics.
type Kind int

const (
	// Clique connects every intra-group pair (used for AND).
	Clique Kind = iota
	// Path connects group members as a path in MentionId order (used for OR).
	Path
)

// BlockGraph holds either a LabelVector or a Graph, converting lazily
// and caching both forms once computed. The two dirty
// bits track which side needs to be rebuilt; both conversions are
// idempotent, so rebuilding never changes an already-authoritative
// representation.
//
// This mirrors the teacher's AdjacencyMatrix/core.Graph round-trip
// idiom (matrix.AdjacencyMatrix.ToGraph / NewAdjacencyMatrix), but with
// an explicit cache instead of recomputing on every call.
type BlockGraph struct {
	n    int
	kind Kind // which encoding to use when labels -> graph

	labels labelalgebra.LabelVector
	graph  *Graph

	needsGraph  bool // labels are authoritative; graph must be rebuilt
	needsLabels bool // graph is authoritative; labels must be rebuilt
}

// FromLabels constructs a BlockGraph whose authoritative representation
// is v. kind determines how Graph() will materialize edges.
func FromLabels(v labelalgebra.LabelVector, kind Kind) *BlockGraph {
	return &BlockGraph{
		n:           len(v),
		kind:        kind,
		labels:      v,
		needsGraph:  true,
		needsLabels: false,
	}
}

// FromGraph constructs a BlockGraph whose authoritative representation
// is g. kind only affects a later re-materialization should the caller
// mutate labels and ask for Graph() again (not exercised by this
// constructor itself).
func FromGraph(g *Graph, kind Kind) *BlockGraph {
	return &BlockGraph{
		n:           g.N(),
		kind:        kind,
		graph:       g,
		needsGraph:  false,
		needsLabels: true,
	}
}

// Labels returns the LabelVector form, rebuilding via connected
// components of the cached Graph if needed.
func (b *BlockGraph) Labels() labelalgebra.LabelVector {
	if b.needsLabels {
		b.labels = b.graph.Labels()
		b.needsLabels = false
	}

	return b.labels
}

// Graph returns the Graph form, rebuilding from the cached LabelVector
// (per b.kind) if needed.
func (b *BlockGraph) Graph() (*Graph, error) {
	if b.needsGraph {
		var g *Graph
		var err error
		switch b.kind {
		case Path:
			g, err = PathGraph(b.labels)
		default:
			g, err = CliqueGraph(b.labels)
		}
		if err != nil {
			return nil, err
		}
		b.graph = g
		b.needsGraph = false
	}

	return b.graph, nil
}

// N returns the number of records this BlockGraph partitions.
func (b *BlockGraph) N() int { return b.n }

package blockrule

import (
	"fmt"

	"github.com/katalvlaran/dedupath/blockgraph"
	"github.com/katalvlaran/dedupath/labelalgebra"
	"github.com/katalvlaran/dedupath/record"
)

// Fit memoizes the rule's label vector/graph against recs. Fit is
// idempotent but not incremental — each call recomputes from scratch,
// matching the single-invocation lifecycle of a deduplication run.
func (r *Rule) Fit(recs []record.Record) error {
	n := len(recs)

	switch r.kind {
	case kindLeaf:
		values := record.ColumnStrings(recs, r.column)
		if r.encoder != nil {
			for i, v := range values {
				values[i] = r.encoder(v)
			}
		}
		labels := labelalgebra.FactorizeStrings(values)
		r.bgraph = blockgraph.FromLabels(labels, blockgraph.Clique)

	case kindCartesian:
		labels := make(labelalgebra.LabelVector, n) // all zero: one block
		r.bgraph = blockgraph.FromLabels(labels, blockgraph.Clique)

	case kindAnd:
		if len(r.children) == 0 {
			return ErrEmptyChildren
		}
		if err := fitChildren(r.children, recs); err != nil {
			return err
		}
		bg, err := combineAnd(r.children, r.level)
		if err != nil {
			return err
		}
		r.bgraph = bg

	case kindOr:
		if len(r.children) == 0 {
			return ErrEmptyChildren
		}
		if err := fitChildren(r.children, recs); err != nil {
			return err
		}
		bg, err := combineOr(r.children, r.level)
		if err != nil {
			return err
		}
		r.bgraph = bg

	case kindExceptK:
		if len(r.children) == 0 {
			return ErrEmptyChildren
		}
		if r.k < 0 || r.k >= len(r.children) {
			return ErrInvalidExceptK
		}
		r.expanded = expandExceptK(r.k, r.children).WithLevel(r.level)
		if err := r.expanded.Fit(recs); err != nil {
			return err
		}
		r.bgraph = r.expanded.bgraph

	default:
		return fmt.Errorf("blockrule: unknown rule kind %d", r.kind)
	}

	r.n = n
	r.fit = true

	return nil
}

func fitChildren(children []*Rule, recs []record.Record) error {
	for i, c := range children {
		if err := c.Fit(recs); err != nil {
			return fmt.Errorf("blockrule: child %d: %w", i, err)
		}
	}

	return nil
}

// combineAnd implements the AND node: at LevelGroups, a re-factorization
// of the row-wise tuple of children's label vectors (the meet, without
// materializing edges); at LevelGraph, connected components of the
// intersection of children's clique graphs.
func combineAnd(children []*Rule, level Level) (*blockgraph.BlockGraph, error) {
	if level == LevelGroups {
		cols := make([]labelalgebra.LabelVector, len(children))
		for i, c := range children {
			cols[i] = c.bgraph.Labels()
		}
		labels := labelalgebra.FactorizeTuples(cols...)

		return blockgraph.FromLabels(labels, blockgraph.Clique), nil
	}

	cliques := make([]*blockgraph.Graph, len(children))
	for i, c := range children {
		g, err := blockgraph.CliqueGraph(c.bgraph.Labels())
		if err != nil {
			return nil, err
		}
		cliques[i] = g
	}
	inter, err := blockgraph.Intersection(cliques...)
	if err != nil {
		return nil, err
	}

	return blockgraph.FromGraph(inter, blockgraph.Clique), nil
}

// combineOr implements the OR node: at LevelGroups, connected
// components of the union of children's path graphs (asymptotically
// cheaper, same closure); at LevelGraph, connected components of the
// union of children's clique graphs.
func combineOr(children []*Rule, level Level) (*blockgraph.BlockGraph, error) {
	kind := blockgraph.Path
	if level == LevelGraph {
		kind = blockgraph.Clique
	}

	graphs := make([]*blockgraph.Graph, len(children))
	for i, c := range children {
		labels := c.bgraph.Labels()
		var g *blockgraph.Graph
		var err error
		if kind == blockgraph.Path {
			g, err = blockgraph.PathGraph(labels)
		} else {
			g, err = blockgraph.CliqueGraph(labels)
		}
		if err != nil {
			return nil, err
		}
		graphs[i] = g
	}
	union, err := blockgraph.Union(graphs...)
	if err != nil {
		return nil, err
	}

	return blockgraph.FromGraph(union, kind), nil
}

// expandExceptK expands CombinationsExceptK(k, children) into an OR
// over every (n-k)-sized subset of children, each wrapped in AND, where
// n = len(children).
func expandExceptK(k int, children []*Rule) *Rule {
	size := len(children) - k
	subsets := combinations(len(children), size)

	ands := make([]*Rule, 0, len(subsets))
	for _, subset := range subsets {
		picked := make([]*Rule, len(subset))
		for i, idx := range subset {
			picked[i] = children[idx]
		}
		ands = append(ands, And(picked...))
	}

	return Or(ands...)
}

// combinations returns every size-length subset of {0,...,n-1} as
// ascending index slices, in lexicographic order.
func combinations(n, size int) [][]int {
	if size <= 0 || size > n {
		return nil
	}
	var out [][]int
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, size)
		copy(combo, idx)
		out = append(out, combo)

		// advance to the next combination
		pos := size - 1
		for pos >= 0 && idx[pos] == n-size+pos {
			pos--
		}
		if pos < 0 {
			break
		}
		idx[pos]++
		for i := pos + 1; i < size; i++ {
			idx[i] = idx[i-1] + 1
		}
	}

	return out
}

package labelalgebra

import "fmt"

// LabelsToPairs expands a LabelVector into the list of canonical
// LinkedPairs implied by its groups: one pair per unordered in-cluster
// pair. Records labeled NoiseLabel contribute no pairs — noise is never
// paired with anything.
//
// Complexity: O(sum of C(|group|,2)).
func LabelsToPairs(v LabelVector) []LinkedPair {
	groups := v.Groups()
	var out []LinkedPair
	for _, g := range groups {
		for i := 0; i < len(g); i++ {
			for j := i + 1; j < len(g); j++ {
				out = append(out, LinkedPair{A: g[i], B: g[j]})
			}
		}
	}

	return out
}

// PairsToLabels reconstructs a LabelVector from a list of LinkedPairs
// over N elements via union-find. Every pair unions its
// two MentionIds; any MentionId with N unvisited (i.e. never mentioned,
// and in its own singleton set after all unions) is a singleton: it
// gets a fresh label, unless dropSingletons is set, in which case it
// becomes NoiseLabel.
//
// Returns ErrNegativeN if N < 0, ErrInvalidPair if any pair references
// a MentionId outside [0, N).
func PairsToLabels(pairs []LinkedPair, n int, dropSingletons bool) (LabelVector, error) {
	if n < 0 {
		return nil, ErrNegativeN
	}
	d := newDSU(n)
	for _, p := range pairs {
		if p.A < 0 || p.A >= n || p.B < 0 || p.B >= n || p.A == p.B {
			return nil, fmt.Errorf("labelalgebra: pair (%d,%d) out of range [0,%d): %w", p.A, p.B, n, ErrInvalidPair)
		}
		d.union(p.A, p.B)
	}

	return d.labels(dropSingletons), nil
}

// ClustersToLabels converts an explicit partition (clusters, each a
// slice of MentionIds) into a LabelVector over n elements. Returns
// ErrDuplicateMembership if any MentionId appears in more than one
// cluster. MentionIds absent from every cluster are singletons: fresh
// label, or NoiseLabel if dropSingletons.
func ClustersToLabels(clusters [][]int, n int, dropSingletons bool) (LabelVector, error) {
	if n < 0 {
		return nil, ErrNegativeN
	}
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}
	out := make(LabelVector, n)
	for i := range out {
		out[i] = NoiseLabel
	}

	nextLabel := 0
	for clusterIdx, members := range clusters {
		for _, id := range members {
			if id < 0 || id >= n {
				return nil, fmt.Errorf("labelalgebra: mention id %d out of range [0,%d)", id, n)
			}
			if owner[id] != -1 {
				return nil, fmt.Errorf("labelalgebra: mention id %d in clusters %d and %d: %w", id, owner[id], clusterIdx, ErrDuplicateMembership)
			}
			owner[id] = clusterIdx
		}
		if len(members) == 1 && dropSingletons {
			continue // stays NoiseLabel
		}
		if len(members) == 0 {
			continue
		}
		for _, id := range members {
			out[id] = nextLabel
		}
		nextLabel++
	}

	// Any MentionId untouched by any cluster is itself a singleton.
	for id, o := range owner {
		if o != -1 {
			continue
		}
		if dropSingletons {
			out[id] = NoiseLabel

			continue
		}
		out[id] = nextLabel
		nextLabel++
	}

	return out, nil
}

// ConnectedComponents computes the connected-components LabelVector of
// an undirected graph given as an edge list over n vertices (0..n-1),
// via the same DSU used by PairsToLabels. This is the pure, library-
// free primitive; blockgraph additionally exposes a gonum-backed
// equivalent for its own cached Graph representation.
func ConnectedComponents(n int, edges []LinkedPair) LabelVector {
	d := newDSU(n)
	for _, e := range edges {
		d.union(e.A, e.B)
	}

	return d.labels(false)
}

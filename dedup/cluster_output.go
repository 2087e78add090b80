package dedup

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/dedupath/labelalgebra"
	"github.com/katalvlaran/dedupath/record"
)

// Cluster is the engine's output unit: a UUIDv4 cluster_id and its
// member records. Singletons are omitted from Engine output by default.
type Cluster struct {
	ID      string
	Members []record.Record
}

// clustersFromLabels builds Clusters from a LabelVector over recs,
// assigning a fresh UUIDv4 to each non-singleton group and dropping
// singletons.
func clustersFromLabels(labels labelalgebra.LabelVector, recs []record.Record) []Cluster {
	var out []Cluster
	for _, group := range labels.Groups() {
		if len(group) < 2 {
			continue
		}
		members := make([]record.Record, len(group))
		for i, id := range group {
			members[i] = recs[id]
		}
		out = append(out, Cluster{ID: uuid.NewString(), Members: members})
	}

	return out
}

// MergeClusterizations combines potentially-overlapping cluster groups
// (e.g. produced by different, possibly overlapping blocks from a
// Splitter) over a shared universe of n MentionIds into one merged
// LabelVector, by union-find over each group's members — a caller-level
// merge across blocks. Records untouched by any group get their own
// label.
func MergeClusterizations(n int, groups [][]int) labelalgebra.LabelVector {
	var edges []labelalgebra.LinkedPair
	for _, g := range groups {
		for i := 1; i < len(g); i++ {
			pair, err := labelalgebra.NewLinkedPair(g[0], g[i])
			if err != nil {
				continue // degenerate self-pair from a duplicate id in the group
			}
			edges = append(edges, pair)
		}
	}

	return labelalgebra.ConnectedComponents(n, edges)
}

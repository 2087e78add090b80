// Package dedupath is a record-deduplication (entity-resolution)
// engine for Go.
//
// 🚀 What is dedupath?
//
//	A composable toolkit that turns a stream of loosely structured
//	records into clusters of mentions that refer to the same
//	real-world entity, built from three layers:
//
//	  • Blocking: composable AND/OR/ExceptK rule trees over factorized
//	    label vectors and graph-theoretic block representations, so
//	    candidate pairs stay sub-quadratic on large inputs.
//	  • Scoring + clustering: per-attribute comparators reduced to a
//	    similarity matrix, then DBSCAN over the induced distance matrix.
//	  • Metrics: pair-counting confusion matrices, Adjusted Rand Index,
//	    homogeneity/completeness/V-measure, and blocking-efficiency
//	    reporting.
//
// ✨ Design
//
//   - Composable    — rule trees, splitters, and filters are built from
//     small, combinable pieces, not one monolithic pass.
//   - Concurrent    — blocks are scored and clustered on a bounded
//     worker pool; a slow or failing block never blocks its siblings.
//   - Deterministic — identical inputs yield identical partitions,
//     independent of worker count or scheduling order.
//
// Under the hood, everything is organized under a handful of
// subpackages:
//
//	record/        — flat/nested record representation and attribute access
//	labelalgebra/  — label vectors, pair/cluster conversions, union-find
//	blockgraph/    — clique/path graph encodings of blocking equivalence
//	blockrule/     — composable blocking rule trees (Leaf/And/Or/ExceptK)
//	blockpipeline/ — grouping, sliding-window splitting, cardinality filtering
//	scoring/       — per-attribute comparators, aggregation, similarity matrix
//	cluster/       — DBSCAN over a precomputed distance matrix
//	workpool/      — bounded concurrent block execution
//	metrics/       — pair and cluster-structural evaluation metrics
//	dedup/         — engine wiring: config, blocking, scoring, clustering
//
//	go get github.com/katalvlaran/dedupath
package dedupath

// Package scoring implements PairScorer: per-block candidate-pair
// generation, per-attribute comparison, aggregation to a scalar, and
// assembly of a thresholded n×n similarity matrix.
package scoring

import "errors"

// ErrNoComparators indicates an empty comparator list.
var ErrNoComparators = errors.New("scoring: at least one comparator is required")

// ErrUnknownAggregation indicates an aggregation strategy outside
// {mean, median, max, min}.
var ErrUnknownAggregation = errors.New("scoring: unknown aggregation strategy")

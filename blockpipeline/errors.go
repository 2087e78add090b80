// Package blockpipeline implements the BlockingPipeline: it fits a
// blockrule.Rule to a record sequence, groups records by the resulting
// label vector, optionally splits oversized groups with a sliding
// window and filters groups by cardinality, and reports before/after
// operation counts.
package blockpipeline

import "errors"

// ErrEmptyInput indicates zero records were passed to Run.
var ErrEmptyInput = errors.New("blockpipeline: zero records")

// Package labelalgebra provides pure functions over label vectors and
// pair lists: factorizing columns, and converting between the three
// equivalent representations of a partition — label vectors, pair
// lists, and clusters — plus connected-component extraction.
//
// Error policy (teacher idiom, see lvlath/builder/errors.go):
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.
package labelalgebra

import "errors"

// ErrDuplicateMembership indicates a MentionId appeared in more than one
// cluster passed to ClustersToLabels.
var ErrDuplicateMembership = errors.New("labelalgebra: mention id appears in multiple clusters")

// ErrInvalidPair indicates a LinkedPair referenced a MentionId outside [0,N)
// or had a == b.
var ErrInvalidPair = errors.New("labelalgebra: invalid pair")

// ErrNegativeN indicates N < 0 was passed to a function expecting a
// record count.
var ErrNegativeN = errors.New("labelalgebra: N must be non-negative")

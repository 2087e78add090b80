// Package blockrule implements the BlockingRule tree: a composable rule
// tree (leaf = column name with optional Encoder; internal =
// AND/OR/CombinationsExceptK) that produces a LabelVector for a
// dataset.
//
// Tree shape follows the teacher's variadic-functional-constructor
// idiom (core.GraphOption, core.NewGraph(opts...)) generalized into a
// recursive sum type.
package blockrule

import "errors"

// ErrEmptyChildren indicates And/Or/CombinationsExceptK was built with
// zero child rules.
var ErrEmptyChildren = errors.New("blockrule: internal node requires at least one child")

// ErrInvalidExceptK indicates k was out of range for
// CombinationsExceptK (must satisfy 0 <= k < number of children).
var ErrInvalidExceptK = errors.New("blockrule: k out of range for CombinationsExceptK")

// ErrNotFit indicates Labels() or Graph() was called before Fit().
var ErrNotFit = errors.New("blockrule: rule has not been fit to data")

// ErrUnknownColumn indicates a Leaf referenced a column absent from
// every record passed to Fit (it is still tolerated — such a column is
// all-missing — but an empty record set can't even determine N).
var ErrUnknownColumn = errors.New("blockrule: column not present in any record")

package blockrule

import (
	"github.com/katalvlaran/dedupath/blockgraph"
	"github.com/katalvlaran/dedupath/labelalgebra"
)

// Level selects how an internal (And/Or) node combines its children's
// equivalence relations.
type Level int

const (
	// LevelGroups (default, recommended) computes AND as a
	// re-factorization of the row-wise tuple of children's label
	// vectors, and OR as connected components of the union of
	// children's path graphs. Never materializes full clique graphs.
	LevelGroups Level = iota
	// LevelGraph operates directly on full clique graphs for both AND
	// (intersection) and OR (union).
	LevelGraph
)

// Encoder normalizes a raw attribute value before factorization. The
// core treats Encoder as an opaque, pluggable string -> string
// function; it never inspects or depends on its algorithm. See
// encoders.go for the handful of generic structural
// encoders this package owns directly (Identity, FirstNChars) — actual
// phonetic/date/phone/geohash normalization is supplied by the caller.
type Encoder func(string) string

// kind tags which case of the BlockingRule sum type a Rule node is.
type kind int

const (
	kindLeaf kind = iota
	kindAnd
	kindOr
	kindExceptK
	kindCartesian
)

// Rule is a node in a BlockingRule tree. It is built via
// the Leaf/LeafEncoded/And/Or/CombinationsExceptK/Cartesian
// constructors below, configured with WithLevel, and evaluated with
// Fit. Accessing Labels/Graph before Fit returns ErrNotFit.
type Rule struct {
	kind    kind
	level   Level
	column  string
	encoder Encoder
	k       int // for kindExceptK
	children []*Rule

	expanded *Rule // kindExceptK caches its OR-of-ANDs expansion here

	fit    bool
	n      int
	bgraph *blockgraph.BlockGraph
}

// Leaf builds a rule that factorizes column directly (no encoder).
func Leaf(column string) *Rule {
	return &Rule{kind: kindLeaf, column: column, level: LevelGroups}
}

// LeafEncoded builds a rule that applies enc to column's values,
// row-wise, before factorization.
func LeafEncoded(column string, enc Encoder) *Rule {
	return &Rule{kind: kindLeaf, column: column, encoder: enc, level: LevelGroups}
}

// And builds the conjunction (meet) of its children's equivalence
// relations. Returns a Rule that errors from Fit if children is empty;
// the error is deferred to Fit (not the constructor) so tree-building
// code can stay error-free, matching the teacher's functional-option
// style where malformed options are validated on application.
func And(children ...*Rule) *Rule {
	return &Rule{kind: kindAnd, children: children, level: LevelGroups}
}

// Or builds the disjunction (join) of its children's equivalence relations.
func Or(children ...*Rule) *Rule {
	return &Rule{kind: kindOr, children: children, level: LevelGroups}
}

// CombinationsExceptK expands to an OR over every (n-k)-sized subset of
// children, each wrapped in AND, where n = len(children).
func CombinationsExceptK(k int, children ...*Rule) *Rule {
	return &Rule{kind: kindExceptK, k: k, children: children, level: LevelGroups}
}

// Cartesian returns the degenerate baseline rule that places every
// record into a single block.
func Cartesian() *Rule {
	return &Rule{kind: kindCartesian, level: LevelGroups}
}

// WithLevel sets the combination level for this node and returns it for
// chaining (e.g. And(a, b).WithLevel(blockrule.LevelGraph)).
func (r *Rule) WithLevel(l Level) *Rule {
	r.level = l

	return r
}

// Labels returns the rule's LabelVector. Requires a prior Fit call.
func (r *Rule) Labels() (labelalgebra.LabelVector, error) {
	if !r.fit {
		return nil, ErrNotFit
	}

	return r.bgraph.Labels(), nil
}

// Graph returns the rule's Graph form. Requires a prior Fit call.
func (r *Rule) Graph() (*blockgraph.Graph, error) {
	if !r.fit {
		return nil, ErrNotFit
	}

	return r.bgraph.Graph()
}

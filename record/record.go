// Package record defines the input data model shared by every dedupath
// component: a Record is a flat attribute map keyed by dotted path,
// identified only by its position in the input sequence (its MentionId).
//
// Records are read-only once ingested. Flatten is the only mutation the
// package performs, and it always produces a fresh map — callers' input
// records are never modified in place.
package record

import (
	"fmt"
	"sort"
)

// MentionId identifies a Record by its 0-based position in the input
// sequence. It is the identity used throughout blocking, scoring, and
// clustering — two records are "the same mention" iff their MentionId
// matches.
type MentionId = int

// DefaultSeparator joins nested attribute paths on Flatten, e.g.
// {addr:{city:X}} -> "addr.city"="X".
const DefaultSeparator = "."

// Record is a mapping from attribute name to a scalar value (string,
// number, or bool) or a nested Record. Raw records may be nested;
// Flatten resolves nesting before any other component sees the data.
type Record map[string]interface{}

// Get returns the string form of attribute name, coercing a missing or
// nil attribute to "". Non-string scalars are formatted with fmt.Sprint.
func (r Record) Get(name string) string {
	v, ok := r[name]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Flatten resolves nested Record/map[string]interface{} values into a
// single-level Record, joining path segments with sep. An empty sep
// defaults to DefaultSeparator. Flatten never mutates r.
//
// Complexity: O(total number of leaf attributes).
func Flatten(r Record, sep string) Record {
	if sep == "" {
		sep = DefaultSeparator
	}
	out := make(Record, len(r))
	flattenInto(r, "", sep, out)

	return out
}

// FlattenAll applies Flatten to every record in recs, preserving order
// (and therefore MentionId assignment: recs[i] becomes mention i).
func FlattenAll(recs []Record, sep string) []Record {
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = Flatten(r, sep)
	}

	return out
}

func flattenInto(r Record, prefix, sep string, out Record) {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic key order; irrelevant to the map itself but keeps nested-walk order reproducible

	for _, k := range keys {
		full := k
		if prefix != "" {
			full = prefix + sep + k
		}
		switch v := r[k].(type) {
		case Record:
			flattenInto(v, full, sep, out)
		case map[string]interface{}:
			flattenInto(Record(v), full, sep, out)
		default:
			out[full] = v
		}
	}
}

// ColumnStrings extracts attribute name across recs as a parallel
// slice of strings, via Record.Get (missing attributes become "").
func ColumnStrings(recs []Record, name string) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Get(name)
	}

	return out
}

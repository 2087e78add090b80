package blockpipeline

import (
	"sort"
	"strings"

	"github.com/katalvlaran/dedupath/record"
)

// SortedNeighborhoodSplitter: if a block's size is at most MaxBlockSize
// it is emitted unchanged; otherwise the
// block is sorted by KeyFunc and a window of size Window slides by Step
// over the sorted sequence, each window becoming its own sub-block that
// shares the parent block's ID. The last window may be short; windows
// overlap when Step < Window.
type SortedNeighborhoodSplitter struct {
	MaxBlockSize int
	Window       int
	Step         int
	KeyFunc      func(record.Record) string
}

// NewSortedNeighborhoodSplitter builds a splitter whose key function is
// the tuple of fields' values joined in order.
func NewSortedNeighborhoodSplitter(maxBlockSize, window, step int, fields ...string) *SortedNeighborhoodSplitter {
	return &SortedNeighborhoodSplitter{
		MaxBlockSize: maxBlockSize,
		Window:       window,
		Step:         step,
		KeyFunc: func(r record.Record) string {
			parts := make([]string, len(fields))
			for i, f := range fields {
				parts[i] = r.Get(f)
			}

			return strings.Join(parts, "\x1f") // unit-separator: avoids accidental collisions between field boundaries
		},
	}
}

// Split implements Splitter.
func (s *SortedNeighborhoodSplitter) Split(b Block) []Block {
	if len(b.Records) <= s.MaxBlockSize {
		return []Block{b}
	}

	order := make([]int, len(b.Records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return s.KeyFunc(b.Records[order[i]]) < s.KeyFunc(b.Records[order[j]])
	})

	var out []Block
	for start := 0; start < len(order); start += s.Step {
		end := start + s.Window
		if end > len(order) {
			end = len(order)
		}
		ids := make([]int, 0, end-start)
		recs := make([]record.Record, 0, end-start)
		for _, pos := range order[start:end] {
			ids = append(ids, b.MentionIds[pos])
			recs = append(recs, b.Records[pos])
		}
		out = append(out, Block{ID: b.ID, MentionIds: ids, Records: recs})

		if end == len(order) {
			break // last (possibly short) window emitted; stop
		}
	}

	return out
}

// CardinalityFilter drops a block if its size is below MinSize or
// above MaxSize. MaxSize <= 0 means unbounded.
type CardinalityFilter struct {
	MinSize int
	MaxSize int
}

// Keep implements Filter.
func (f CardinalityFilter) Keep(b Block) bool {
	n := len(b.Records)
	if n < f.MinSize {
		return false
	}
	if f.MaxSize > 0 && n > f.MaxSize {
		return false
	}

	return true
}

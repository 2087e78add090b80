package blockpipeline

import "github.com/katalvlaran/dedupath/record"

// Block is a candidate group of records emitted by the pipeline,
// carrying the parent block's ID and its member MentionIds. Blocks are
// disjoint iff no Splitter is configured; with a Splitter they may
// overlap.
type Block struct {
	ID         int
	MentionIds []int
	Records    []record.Record
}

// Splitter optionally breaks an oversized Block into overlapping
// sub-blocks.
type Splitter interface {
	Split(b Block) []Block
}

// Filter optionally drops a (sub-)Block entirely.
type Filter interface {
	Keep(b Block) bool
}

// Stats reports the blocking-efficiency counters: num_blocks,
// operations_before_blocking = C(N,2), operations_after_blocking =
// sum C(|B_i|,2).
type Stats struct {
	NumBlocks                int
	OperationsBeforeBlocking int64
	OperationsAfterBlocking  int64
}

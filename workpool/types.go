package workpool

import (
	"fmt"

	"github.com/katalvlaran/dedupath/labelalgebra"
)

// BlockTaskError reports a single block's failure (comparator panic or
// scoring/clustering error) without affecting sibling blocks.
type BlockTaskError struct {
	BlockID int
	Err     error
}

func (e *BlockTaskError) Error() string {
	return fmt.Sprintf("workpool: block %d failed: %v", e.BlockID, e.Err)
}

func (e *BlockTaskError) Unwrap() error { return e.Err }

// BlockResult is the per-block outcome emitted by the pool: local
// cluster labels over the block's own record indices (not global
// MentionIds — the caller maps back via MentionIds, copied from the
// originating Block).
type BlockResult struct {
	BlockID    int
	MentionIds []int
	Labels     labelalgebra.LabelVector
}

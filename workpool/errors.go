// Package workpool implements a bounded concurrent executor that pulls
// (block_id, records) tasks, runs PairScorer + DBSCAN per block, and
// returns the per-block cluster labels together once every dispatched
// block has finished; results are not streamed out while other blocks
// are still running. It is a bounded worker
// pool built on golang.org/x/sync/errgroup, cooperative cancellation
// via context.Context, and per-block failure isolation.
package workpool

import "errors"

// ErrNoWorkers indicates a non-positive configured worker count.
var ErrNoWorkers = errors.New("workpool: worker count must be positive")

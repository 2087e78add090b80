package workpool

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/dedupath/blockpipeline"
	"github.com/katalvlaran/dedupath/cluster"
	"github.com/katalvlaran/dedupath/labelalgebra"
	"github.com/katalvlaran/dedupath/scoring"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkerCount returns max(1, min(floor(cores/2), n)) — the
// worker count used when num_threads is unset.
func DefaultWorkerCount(n int) int {
	w := runtime.NumCPU() / 2
	if w < 1 {
		w = 1
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}

	return w
}

// Pool runs PairScorer + DBSCAN over a stream of Blocks, bounded to a
// fixed worker count, with cooperative cancellation and per-block
// failure isolation.
type Pool struct {
	Workers    int
	Scorer     *scoring.PairScorer
	Eps        float64
	MinSamples int
	Logger     *logrus.Logger
}

// New builds a Pool. workers must be positive.
func New(workers int, scorer *scoring.PairScorer, eps float64, minSamples int, logger *logrus.Logger) (*Pool, error) {
	if workers <= 0 {
		return nil, ErrNoWorkers
	}

	return &Pool{Workers: workers, Scorer: scorer, Eps: eps, MinSamples: minSamples, Logger: logger}, nil
}

// Run dispatches blocks to at most p.Workers concurrent goroutines and
// collects their results. Cancelling ctx halts dispatch of new blocks;
// in-flight blocks run to completion and are discarded from the
// result set. A block that panics or errors is reported via p.Logger
// (if set) and skipped rather than failing its siblings.
func (p *Pool) Run(ctx context.Context, blocks []blockpipeline.Block) ([]BlockResult, error) {
	in := make(chan blockpipeline.Block)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(in)
		for _, b := range blocks {
			if gctx.Err() != nil {
				return nil
			}
			select {
			case <-gctx.Done():
				return nil
			case in <- b:
			}
		}

		return nil
	})

	var mu sync.Mutex
	var results []BlockResult

	for i := 0; i < p.Workers; i++ {
		g.Go(func() error {
			for b := range in {
				res, err := p.processBlock(b)
				if err != nil {
					if p.Logger != nil {
						p.Logger.WithFields(logrus.Fields{"block_id": b.ID, "error": err}).Warn("block failed, skipping")
					}

					continue
				}
				if gctx.Err() != nil {
					continue // cancelled: discard the in-flight block's result
				}

				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (p *Pool) processBlock(b blockpipeline.Block) (res BlockResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &BlockTaskError{BlockID: b.ID, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	n := len(b.Records)
	if n == 1 {
		// A singleton block forms its own one-record cluster directly;
		// DBSCAN with min_samples>=2 would always label it noise.
		return BlockResult{BlockID: b.ID, MentionIds: b.MentionIds, Labels: labelalgebra.LabelVector{0}}, nil
	}

	sim := p.Scorer.Score(b.Records)
	labels, derr := cluster.DBSCAN(sim, p.Eps, p.MinSamples)
	if derr != nil {
		return BlockResult{}, &BlockTaskError{BlockID: b.ID, Err: derr}
	}

	return BlockResult{BlockID: b.ID, MentionIds: b.MentionIds, Labels: labels}, nil
}

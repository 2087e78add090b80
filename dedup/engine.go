package dedup

import (
	"context"

	"github.com/katalvlaran/dedupath/blockpipeline"
	"github.com/katalvlaran/dedupath/record"
	"github.com/katalvlaran/dedupath/scoring"
	"github.com/katalvlaran/dedupath/workpool"
)

// Engine wires record -> BlockingPipeline -> BlockWorkPool into a
// single deduplication entry point.
type Engine struct {
	cfg    *Config
	pipe   *blockpipeline.Pipeline
	scorer *scoring.PairScorer
}

// New builds an Engine from a validated Config.
func New(cfg *Config) (*Engine, error) {
	scorer, err := scoring.New(cfg.Comparators, cfg.Aggregation, cfg.SimilarityThreshold)
	if err != nil {
		return nil, &ConfigError{Reason: "building scorer", Err: err}
	}

	var pipeOpts []blockpipeline.Option
	if cfg.BlockingSplitter != nil {
		pipeOpts = append(pipeOpts, blockpipeline.WithSplitter(cfg.BlockingSplitter))
	}
	if len(cfg.BlockingFilters) > 0 {
		pipeOpts = append(pipeOpts, blockpipeline.WithFilters(cfg.BlockingFilters...))
	}

	pipe := blockpipeline.New(cfg.rule(), pipeOpts...)

	return &Engine{cfg: cfg, pipe: pipe, scorer: scorer}, nil
}

// Run executes one deduplicate() invocation over recs: blocking, then
// per-block scoring + clustering, returning the engine's clusters
// (singletons omitted) plus the blocking-efficiency Stats.
func (e *Engine) Run(ctx context.Context, recs []record.Record) ([]Cluster, blockpipeline.Stats, error) {
	if len(recs) == 0 {
		return nil, blockpipeline.Stats{}, ErrEmptyInput
	}

	blocks, stats, err := e.pipe.Run(recs)
	if err != nil {
		return nil, blockpipeline.Stats{}, err
	}

	workers := e.cfg.NumThreads
	if workers <= 0 {
		workers = workpool.DefaultWorkerCount(len(recs))
	}
	pool, err := workpool.New(workers, e.scorer, e.cfg.Eps, e.cfg.MinSamples, e.cfg.Logger)
	if err != nil {
		return nil, blockpipeline.Stats{}, err
	}

	results, err := pool.Run(ctx, blocks)
	if err != nil {
		return nil, blockpipeline.Stats{}, err
	}

	var clusters []Cluster
	for _, res := range results {
		members := make([]record.Record, len(res.MentionIds))
		for i, id := range res.MentionIds {
			members[i] = recs[id]
		}
		clusters = append(clusters, clustersFromLabels(res.Labels, members)...)
	}

	return clusters, stats, nil
}

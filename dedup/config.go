package dedup

import (
	"github.com/katalvlaran/dedupath/blockpipeline"
	"github.com/katalvlaran/dedupath/blockrule"
	"github.com/katalvlaran/dedupath/scoring"
	"github.com/sirupsen/logrus"
)

// Default cluster/threshold parameters.
const (
	DefaultEps                 = 0.5
	DefaultMinSamples          = 2
	DefaultSimilarityThreshold = 0.8
)

// Config holds the engine construction options.
type Config struct {
	Comparators         []scoring.NamedComparator
	Aggregation         scoring.Aggregation
	BlockingAttributes  []string
	BlockingRule        *blockrule.Rule
	BlockingSplitter    blockpipeline.Splitter
	BlockingFilters     []blockpipeline.Filter
	Eps                 float64
	MinSamples          int
	SimilarityThreshold float64
	NumThreads          int // 0 means auto (workpool.DefaultWorkerCount)
	Logger              *logrus.Logger
}

// Option configures a Config.
type Option func(*Config)

func WithAggregation(a scoring.Aggregation) Option {
	return func(c *Config) { c.Aggregation = a }
}

func WithBlockingAttributes(attrs ...string) Option {
	return func(c *Config) { c.BlockingAttributes = attrs }
}

func WithBlockingRule(r *blockrule.Rule) Option {
	return func(c *Config) { c.BlockingRule = r }
}

func WithBlockingSplitter(s blockpipeline.Splitter) Option {
	return func(c *Config) { c.BlockingSplitter = s }
}

func WithBlockingFilters(fs ...blockpipeline.Filter) Option {
	return func(c *Config) { c.BlockingFilters = fs }
}

func WithCluster(eps float64, minSamples int) Option {
	return func(c *Config) { c.Eps = eps; c.MinSamples = minSamples }
}

func WithSimilarityThreshold(t float64) Option {
	return func(c *Config) { c.SimilarityThreshold = t }
}

func WithNumThreads(n int) Option {
	return func(c *Config) { c.NumThreads = n }
}

func WithLogger(l *logrus.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// NewConfig builds a validated Config. comparators must be non-empty;
// at least one of BlockingAttributes/BlockingRule must be set
// (BlockingRule, if set, overrides BlockingAttributes).
func NewConfig(comparators []scoring.NamedComparator, opts ...Option) (*Config, error) {
	c := &Config{
		Comparators:         comparators,
		Aggregation:         scoring.Mean,
		Eps:                 DefaultEps,
		MinSamples:          DefaultMinSamples,
		SimilarityThreshold: DefaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(c.Comparators) == 0 {
		return nil, &ConfigError{Reason: "comparators must be non-empty"}
	}
	if c.BlockingRule == nil && len(c.BlockingAttributes) == 0 {
		return nil, &ConfigError{Reason: "one of blocking_attributes or blocking_rule is required"}
	}

	return c, nil
}

// rule resolves the effective blocking rule: BlockingRule if set,
// otherwise an AND-of-exact-match rule over BlockingAttributes.
func (c *Config) rule() *blockrule.Rule {
	if c.BlockingRule != nil {
		return c.BlockingRule
	}

	leaves := make([]*blockrule.Rule, len(c.BlockingAttributes))
	for i, attr := range c.BlockingAttributes {
		leaves[i] = blockrule.Leaf(attr)
	}
	if len(leaves) == 1 {
		return leaves[0]
	}

	return blockrule.And(leaves...)
}

package blockpipeline

import (
	"github.com/katalvlaran/dedupath/blockrule"
	"github.com/katalvlaran/dedupath/labelalgebra"
	"github.com/katalvlaran/dedupath/record"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSplitter installs a Splitter applied to every group the rule
// produces before filtering.
func WithSplitter(s Splitter) Option {
	return func(p *Pipeline) { p.splitter = s }
}

// WithFilters installs a chain of Filters; a (sub-)Block is kept only
// if every Filter in the chain keeps it.
func WithFilters(fs ...Filter) Option {
	return func(p *Pipeline) { p.filters = append(p.filters, fs...) }
}

// WithSeparator overrides the nested-attribute flatten separator
// (record.DefaultSeparator by default).
func WithSeparator(sep string) Option {
	return func(p *Pipeline) { p.separator = sep }
}

// Pipeline fits a blockrule.Rule to a record sequence, groups records
// by the resulting label vector, optionally splits oversized groups
// and filters groups by cardinality, and emits the resulting Blocks
// alongside before/after operation counts.
type Pipeline struct {
	rule      *blockrule.Rule
	splitter  Splitter
	filters   []Filter
	separator string
}

// New builds a Pipeline around rule.
func New(rule *blockrule.Rule, opts ...Option) *Pipeline {
	p := &Pipeline{rule: rule, separator: record.DefaultSeparator}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run executes the pipeline over recs, returning the emitted Blocks in
// ascending parent-group order and the resulting Stats.
func (p *Pipeline) Run(recs []record.Record) ([]Block, Stats, error) {
	if len(recs) == 0 {
		return nil, Stats{}, ErrEmptyInput
	}

	flat := record.FlattenAll(recs, p.separator)
	if err := p.rule.Fit(flat); err != nil {
		return nil, Stats{}, err
	}

	labels, err := p.rule.Labels()
	if err != nil {
		return nil, Stats{}, err
	}

	groups := labels.Groups()

	var blocks []Block
	var opsAfter int64
	for blockID, group := range groups {
		if len(group) == 0 {
			// Factorize assigns each record a dense label, but distinct
			// missing-value records each get their own unique label too
			// (factorize.go), leaving unused gaps in the dense [0,K) range
			// that Groups() still allocates a slot for.
			continue
		}

		parent := Block{
			ID:         blockID,
			MentionIds: group,
			Records:    gather(flat, group),
		}

		var subBlocks []Block
		if p.splitter != nil {
			subBlocks = p.splitter.Split(parent)
		} else {
			subBlocks = []Block{parent}
		}

		for _, sb := range subBlocks {
			if !p.keep(sb) {
				continue
			}
			blocks = append(blocks, sb)
			opsAfter += labelalgebra.Combinations2(int64(len(sb.Records)))
		}
	}

	stats := Stats{
		NumBlocks:                len(blocks),
		OperationsBeforeBlocking: labelalgebra.Combinations2(int64(len(recs))),
		OperationsAfterBlocking:  opsAfter,
	}

	return blocks, stats, nil
}

func (p *Pipeline) keep(b Block) bool {
	for _, f := range p.filters {
		if !f.Keep(b) {
			return false
		}
	}

	return true
}

func gather(recs []record.Record, ids []int) []record.Record {
	out := make([]record.Record, len(ids))
	for i, id := range ids {
		out[i] = recs[id]
	}

	return out
}

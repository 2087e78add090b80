package dedup

import (
	"os"

	"github.com/katalvlaran/dedupath/scoring"
	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors the scalar subset of Config that can live in a
// checked-in YAML file; comparators, a custom BlockingRule, a Splitter
// and Filters are Go values and stay programmatic.
type yamlConfig struct {
	AggregationStrategy string   `yaml:"aggregation_strategy,omitempty"`
	BlockingAttributes  []string `yaml:"blocking_attributes,omitempty"`
	ClusterEps          float64  `yaml:"cluster_eps,omitempty"`
	ClusterMinSamples   int      `yaml:"cluster_min_samples,omitempty"`
	SimilarityThreshold float64  `yaml:"similarity_threshold,omitempty"`
	NumThreads          int      `yaml:"num_threads,omitempty"`
}

var aggregationNames = map[string]scoring.Aggregation{
	"mean":   scoring.Mean,
	"median": scoring.Median,
	"max":    scoring.Max,
	"min":    scoring.Min,
}

// LoadYAMLOptions reads a YAML config file and returns the Options it
// describes, to be combined with programmatic options (comparators,
// rule, splitter, filters) when calling NewConfig.
func LoadYAMLOptions(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Reason: "reading yaml config", Err: err}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, &ConfigError{Reason: "parsing yaml config", Err: err}
	}

	var opts []Option
	if y.AggregationStrategy != "" {
		agg, ok := aggregationNames[y.AggregationStrategy]
		if !ok {
			return nil, &ConfigError{Reason: "unknown aggregation_strategy: " + y.AggregationStrategy}
		}
		opts = append(opts, WithAggregation(agg))
	}
	if len(y.BlockingAttributes) > 0 {
		opts = append(opts, WithBlockingAttributes(y.BlockingAttributes...))
	}
	if y.ClusterEps > 0 || y.ClusterMinSamples > 0 {
		eps, minSamples := y.ClusterEps, y.ClusterMinSamples
		if eps == 0 {
			eps = DefaultEps
		}
		if minSamples == 0 {
			minSamples = DefaultMinSamples
		}
		opts = append(opts, WithCluster(eps, minSamples))
	}
	if y.SimilarityThreshold > 0 {
		opts = append(opts, WithSimilarityThreshold(y.SimilarityThreshold))
	}
	if y.NumThreads > 0 {
		opts = append(opts, WithNumThreads(y.NumThreads))
	}

	return opts, nil
}

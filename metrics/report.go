package metrics

import (
	"math"

	"github.com/katalvlaran/dedupath/blockpipeline"
	"github.com/katalvlaran/dedupath/labelalgebra"
)

// Report assembles every pair-counting, cluster-structural, and
// blocking-efficiency metric in a single pass over trueLabels/predLabels
// plus optional blocking stats.
type Report struct {
	AdjustedRandIndex                float64
	Precision                        float64
	Recall                           float64
	F1Measure                        float64
	Completeness                     float64
	Homogeneity                      float64
	VMeasure                         float64
	RandIndex                        float64
	TP                               int64
	FP                               int64
	FN                               int64
	TN                               int64
	NumPredictedPairs                int64
	NumTruePairs                     int64
	NumPredictedNonSingletonClusters int
	NumTrueNonSingletonClusters      int

	// Blocking metrics, present only when block stats were supplied to Build.
	HasBlockingMetrics       bool
	ReductionRatio           float64
	ComparisonEfficiency     float64
	OperationsBeforeBlocking int64
	OperationsAfterBlocking  int64
	NumBlocks                int
}

// NonSingletonClusters counts clusters with 2 or more members.
func NonSingletonClusters(labels labelalgebra.LabelVector) int {
	count := 0
	for _, g := range labels.Groups() {
		if len(g) >= 2 {
			count++
		}
	}

	return count
}

// Build assembles the full Report for trueLabels vs predLabels. When
// blockStats is non-nil, blocking-efficiency metrics are added — this
// package takes the already-computed Stats directly, the caller is
// responsible for having run the BlockingPipeline.
func Build(trueLabels, predLabels labelalgebra.LabelVector, blockStats *blockpipeline.Stats) (Report, error) {
	cm, err := BuildConfusionMatrix(trueLabels, predLabels)
	if err != nil {
		return Report{}, err
	}
	ari, err := AdjustedRandIndex(trueLabels, predLabels)
	if err != nil {
		return Report{}, err
	}
	hom, err := Homogeneity(trueLabels, predLabels)
	if err != nil {
		return Report{}, err
	}
	comp, err := Completeness(trueLabels, predLabels)
	if err != nil {
		return Report{}, err
	}
	vm, err := VMeasure(trueLabels, predLabels)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		AdjustedRandIndex:                ari,
		Precision:                        cm.Precision(),
		Recall:                           cm.Recall(),
		F1Measure:                        cm.F1(),
		Completeness:                     comp,
		Homogeneity:                      hom,
		VMeasure:                         vm,
		RandIndex:                        cm.RandIndex(),
		TP:                               cm.TP,
		FP:                               cm.FP,
		FN:                               cm.FN,
		TN:                               cm.TN,
		NumPredictedPairs:                cm.P,
		NumTruePairs:                     cm.T,
		NumPredictedNonSingletonClusters: NonSingletonClusters(predLabels),
		NumTrueNonSingletonClusters:      NonSingletonClusters(trueLabels),
	}

	if blockStats != nil {
		r.HasBlockingMetrics = true
		r.ReductionRatio = ReductionRatio(blockStats.OperationsBeforeBlocking, blockStats.OperationsAfterBlocking)
		r.ComparisonEfficiency = ComparisonEfficiency(blockStats.OperationsBeforeBlocking, blockStats.OperationsAfterBlocking)
		r.OperationsBeforeBlocking = blockStats.OperationsBeforeBlocking
		r.OperationsAfterBlocking = blockStats.OperationsAfterBlocking
		r.NumBlocks = blockStats.NumBlocks
	}

	return r, nil
}

// ReductionRatio returns (1 - after/before)*100, or 0 if before is 0.
func ReductionRatio(before, after int64) float64 {
	if before == 0 {
		return 0
	}

	return (1 - float64(after)/float64(before)) * 100
}

// ComparisonEfficiency returns before/after, or +Inf if after is 0.
func ComparisonEfficiency(before, after int64) float64 {
	if after == 0 {
		return math.Inf(1)
	}

	return float64(before) / float64(after)
}

// ToMap renders the Report as a key->value mapping suitable for
// serialization. Blocking keys are omitted unless HasBlockingMetrics
// is set.
func (r Report) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"AdjustedRandomIndex":              r.AdjustedRandIndex,
		"Precision":                        r.Precision,
		"Recall":                           r.Recall,
		"F1-measure":                       r.F1Measure,
		"Completeness":                     r.Completeness,
		"Homogeneity":                      r.Homogeneity,
		"V-measure":                        r.VMeasure,
		"RandIndex":                        r.RandIndex,
		"TP":                               r.TP,
		"FP":                               r.FP,
		"FN":                               r.FN,
		"TN":                               r.TN,
		"NumPredictedPairs":                r.NumPredictedPairs,
		"NumTruePairs":                     r.NumTruePairs,
		"NumPredictedNonSingletonClusters": r.NumPredictedNonSingletonClusters,
		"NumTrueNonSingletonClusters":      r.NumTrueNonSingletonClusters,
	}

	if r.HasBlockingMetrics {
		m["ReductionRatio"] = r.ReductionRatio
		m["ComparisonEfficiency"] = r.ComparisonEfficiency
		m["OperationsBeforeBlocking"] = r.OperationsBeforeBlocking
		m["OperationsAfterBlocking"] = r.OperationsAfterBlocking
		m["NumBlocks"] = r.NumBlocks
	}

	return m
}

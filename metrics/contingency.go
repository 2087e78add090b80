package metrics

import "github.com/katalvlaran/dedupath/labelalgebra"

// contingency builds the true×pred contingency table plus marginal
// counts, following the teacher's dense-matrix construction idiom
// (matrix.AdjacencyMatrix) generalized to a sparse map keyed by label
// pair since cluster counts are typically far smaller than N².
type contingency struct {
	n         int
	cells     map[[2]int]int64 // (trueLabel, predLabel) -> count
	trueSizes map[int]int64
	predSizes map[int]int64
}

func buildContingency(trueLabels, predLabels labelalgebra.LabelVector) (*contingency, error) {
	if len(trueLabels) != len(predLabels) {
		return nil, ErrLengthMismatch
	}
	for _, l := range trueLabels {
		if l == labelalgebra.NoiseLabel {
			return nil, ErrNoiseLabel
		}
	}
	for _, l := range predLabels {
		if l == labelalgebra.NoiseLabel {
			return nil, ErrNoiseLabel
		}
	}

	c := &contingency{
		n:         len(trueLabels),
		cells:     make(map[[2]int]int64),
		trueSizes: make(map[int]int64),
		predSizes: make(map[int]int64),
	}
	for i := range trueLabels {
		t, p := trueLabels[i], predLabels[i]
		c.cells[[2]int{t, p}]++
		c.trueSizes[t]++
		c.predSizes[p]++
	}

	return c, nil
}

func sumPairs(sizes map[int]int64) int64 {
	var total int64
	for _, n := range sizes {
		total += labelalgebra.Combinations2(n)
	}

	return total
}

package metrics

import (
	"math"

	"github.com/katalvlaran/dedupath/labelalgebra"
)

// AdjustedRandIndex computes the Hubert–Arabie Adjusted Rand Index
// between trueLabels and predLabels, as a percentage in roughly
// [-100,100]. Inputs must contain no labelalgebra.NoiseLabel entries.
func AdjustedRandIndex(trueLabels, predLabels labelalgebra.LabelVector) (float64, error) {
	c, err := buildContingency(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}

	var sumCombCells int64
	for _, n := range c.cells {
		sumCombCells += labelalgebra.Combinations2(n)
	}
	sumA := sumPairs(c.trueSizes)
	sumB := sumPairs(c.predSizes)
	total := labelalgebra.Combinations2(int64(c.n))

	if total == 0 {
		return 100.0, nil
	}

	expectedIndex := float64(sumA) * float64(sumB) / float64(total)
	maxIndex := 0.5 * (float64(sumA) + float64(sumB))
	denom := maxIndex - expectedIndex
	if denom == 0 {
		// Perfect agreement or degenerate (all-singleton / all-one-cluster)
		// partitions: ARI is conventionally 1 in this case.
		return 100.0, nil
	}

	return 100 * (float64(sumCombCells) - expectedIndex) / denom, nil
}

// Homogeneity, Completeness and VMeasure implement the entropy-based
// cluster-structural metrics of Rosenberg & Hirschberg, parameterized
// at β=1 for V-measure. Inputs must contain no labelalgebra.NoiseLabel
// entries.
func Homogeneity(trueLabels, predLabels labelalgebra.LabelVector) (float64, error) {
	c, err := buildContingency(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}
	hc := entropy(c.trueSizes, c.n)
	if hc == 0 {
		return 100.0, nil
	}
	hcGivenK := conditionalEntropy(c, c.predSizes, true)

	return 100 * (1 - hcGivenK/hc), nil
}

func Completeness(trueLabels, predLabels labelalgebra.LabelVector) (float64, error) {
	c, err := buildContingency(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}
	hk := entropy(c.predSizes, c.n)
	if hk == 0 {
		return 100.0, nil
	}
	hkGivenC := conditionalEntropy(c, c.trueSizes, false)

	return 100 * (1 - hkGivenC/hk), nil
}

func VMeasure(trueLabels, predLabels labelalgebra.LabelVector) (float64, error) {
	h, err := Homogeneity(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}
	c, err := Completeness(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}
	if h+c == 0 {
		return 0, nil
	}

	return 2 * h * c / (h + c), nil
}

func entropy(sizes map[int]int64, n int) float64 {
	if n == 0 {
		return 0
	}
	var h float64
	for _, cnt := range sizes {
		if cnt == 0 {
			continue
		}
		p := float64(cnt) / float64(n)
		h -= p * math.Log(p)
	}

	return h
}

// conditionalEntropy computes H(true|pred) when byPred=true (grouping
// cells by predicted label to get the conditional distribution of true
// labels within each predicted cluster), or H(pred|true) when
// byPred=false.
func conditionalEntropy(c *contingency, outerSizes map[int]int64, byPred bool) float64 {
	var h float64
	for key, nij := range c.cells {
		if nij == 0 {
			continue
		}
		var outerLabel int
		if byPred {
			outerLabel = key[1]
		} else {
			outerLabel = key[0]
		}
		outerSize := outerSizes[outerLabel]
		if outerSize == 0 {
			continue
		}
		pJoint := float64(nij) / float64(c.n)
		pConditional := float64(nij) / float64(outerSize)
		h -= pJoint * math.Log(pConditional)
	}

	return h
}

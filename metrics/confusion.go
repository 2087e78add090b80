package metrics

import "github.com/katalvlaran/dedupath/labelalgebra"

// ConfusionMatrix is the pair-counting confusion matrix: TP/FP/FN/TN
// over all C(N,2) record pairs, classified by same-predicted-cluster
// vs same-true-cluster membership.
type ConfusionMatrix struct {
	TP    int64
	FP    int64
	FN    int64
	TN    int64
	P     int64 // same-predicted pairs
	T     int64 // same-true pairs
	Total int64 // C(N,2)
}

// BuildConfusionMatrix computes the confusion matrix for trueLabels vs
// predLabels, both length N. Noise (-1) entries are rejected — callers
// must drop or relabel noise before calling.
func BuildConfusionMatrix(trueLabels, predLabels labelalgebra.LabelVector) (ConfusionMatrix, error) {
	c, err := buildContingency(trueLabels, predLabels)
	if err != nil {
		return ConfusionMatrix{}, err
	}

	var tp int64
	for _, n := range c.cells {
		tp += labelalgebra.Combinations2(n)
	}

	p := sumPairs(c.predSizes)
	t := sumPairs(c.trueSizes)
	total := labelalgebra.Combinations2(int64(c.n))

	fp := p - tp
	fn := t - tp
	tn := total - p - fn

	return ConfusionMatrix{TP: tp, FP: fp, FN: fn, TN: tn, P: p, T: t, Total: total}, nil
}

const epsilon = 1e-12

// Precision returns 100·TP/P, defined as 100 when P=0.
func (m ConfusionMatrix) Precision() float64 {
	if m.P == 0 {
		return 100.0
	}

	return 100 * float64(m.TP) / float64(m.P)
}

// Recall returns 100·TP/T.
func (m ConfusionMatrix) Recall() float64 {
	if m.T == 0 {
		return 100.0
	}

	return 100 * float64(m.TP) / float64(m.T)
}

// F1 returns the harmonic mean of Precision and Recall, with a small
// epsilon guarding against 0/0 when both are 0.
func (m ConfusionMatrix) F1() float64 {
	p, r := m.Precision(), m.Recall()

	return 2 * p * r / (p + r + epsilon)
}

// RandIndex returns 100·(TP+TN)/Total.
func (m ConfusionMatrix) RandIndex() float64 {
	if m.Total == 0 {
		return 100.0
	}

	return 100 * float64(m.TP+m.TN) / float64(m.Total)
}

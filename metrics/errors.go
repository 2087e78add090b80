// Package metrics computes pair-counting confusion matrices, derived
// pair metrics, cluster-structural metrics (homogeneity/completeness/
// V-measure, Rand Index, Adjusted Rand Index), blocking-efficiency
// metrics, and Report assembly.
package metrics

import "errors"

// ErrNoiseLabel indicates a label vector contains labelalgebra.NoiseLabel
// where the metric requires every record assigned to some cluster.
var ErrNoiseLabel = errors.New("metrics: label vector contains noise (-1) entries; drop or relabel first")

// ErrLengthMismatch indicates two label vectors being compared have
// different lengths.
var ErrLengthMismatch = errors.New("metrics: label vectors must have equal length")

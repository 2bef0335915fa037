package scorer

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Aggregate sums score vectors elementwise across positions, yielding one
// total per payload candidate. An empty score list aggregates to nil,
// which callers treat as a score of zero.
func Aggregate(lists [][]float64) []float64 {
	if len(lists) == 0 {
		return nil
	}

	out := make([]float64, len(lists[0]))
	for _, l := range lists {
		for i := range out {
			out[i] += l[i]
		}
	}
	return out
}

// Threshold returns the detection threshold for a text with n scored
// positions at false-positive rate alpha.
//
// Texts with n <= ngram return +Inf: they are too short to ever be called
// watermarked, by policy rather than by error. Otherwise the aggregated
// score under the null hypothesis is a sum of unit-exponential
// contributions, i.e. Gamma distributed with shape n-ngram and scale 1,
// and the threshold is its (1-alpha) quantile.
func Threshold(n, ngram int, alpha float64) float64 {
	if n <= ngram {
		return math.Inf(1)
	}

	g := distuv.Gamma{
		Alpha: float64(n - ngram),
		Beta:  1,
	}
	return g.Quantile(1 - alpha)
}

// Decide reports whether an aggregated score exceeds the threshold.
// One-sided test: watermarked generation biases contributions upward.
func Decide(score, threshold float64) bool {
	return score > threshold
}

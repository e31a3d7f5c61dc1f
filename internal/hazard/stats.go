// SPDX-License-Identifier: Apache-2.0

package hazard

import "sort"

// MeanCurve computes the weighted arithmetic mean of the realization
// PoE curves, level by level. poes is one row per realization. Zero
// realizations yield nil.
func MeanCurve(weights []float64, poes [][]float64) []float64 {
	if len(poes) == 0 {
		return nil
	}
	totalWeight := 0.0
	for _, w := range weights {
		totalWeight += w
	}
	out := make([]float64, len(poes[0]))
	for r, row := range poes {
		for i, v := range row {
			out[i] += weights[r] * v
		}
	}
	for i := range out {
		out[i] /= totalWeight
	}
	return out
}

// QuantileCurve computes the weighted quantile of the realization PoE
// curves, level by level: the per-level values are ranked ascending and
// the quantile is interpolated on the cumulative weights. The ranking
// is a total order, so the result does not depend on realization order.
// Zero realizations yield nil.
func QuantileCurve(weights []float64, poes [][]float64, quantile float64) []float64 {
	if len(poes) == 0 {
		return nil
	}
	numLevels := len(poes[0])
	out := make([]float64, numLevels)
	idx := make([]int, len(poes))
	values := make([]float64, len(poes))
	cumWeights := make([]float64, len(poes))

	for level := 0; level < numLevels; level++ {
		for r := range idx {
			idx[r] = r
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return poes[idx[a]][level] < poes[idx[b]][level]
		})
		cum := 0.0
		for r, ri := range idx {
			values[r] = poes[ri][level]
			cum += weights[ri]
			cumWeights[r] = cum
		}
		out[level] = interp(quantile, cumWeights, values)
	}
	return out
}

// interp linearly interpolates y at x over the (xs, ys) polyline,
// clamping to the end values outside the range.
func interp(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if x >= xs[last] {
		return ys[last]
	}
	j := sort.SearchFloat64s(xs, x) - 1
	if xs[j+1] == xs[j] {
		return ys[j+1]
	}
	frac := (x - xs[j]) / (xs[j+1] - xs[j])
	return ys[j] + frac*(ys[j+1]-ys[j])
}

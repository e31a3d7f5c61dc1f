// SPDX-License-Identifier: Apache-2.0

package domain

import "math"

// Tolerances used to consider two risk outputs (almost) equal across
// independently executed runs.
const (
	RiskRtol = 0.05
	RiskAtol = 0.01
)

// RiskAlmostEqual compares two vectors element-wise with the standard
// relative+absolute risk tolerance.
func RiskAlmostEqual(got, expected []float64) bool {
	return allClose(got, expected, RiskRtol, RiskAtol)
}

func allClose(got, expected []float64, rtol, atol float64) bool {
	if len(got) != len(expected) {
		return false
	}
	for i := range got {
		diff := math.Abs(got[i] - expected[i])
		if diff > atol+rtol*math.Abs(expected[i]) {
			return false
		}
	}
	return true
}

// LossCurvePoints is the comparable part of a loss curve row.
type LossCurvePoints struct {
	AssetValue float64
	LossRatios []float64
	Poes       []float64
}

// Losses returns the absolute losses (ratios scaled by asset value).
func (c LossCurvePoints) Losses() []float64 {
	out := make([]float64, len(c.LossRatios))
	for i, r := range c.LossRatios {
		out[i] = r * c.AssetValue
	}
	return out
}

// LossCurveAlmostEqual compares two loss curves computed by possibly
// different runs. Since the runs may not share the loss discretization,
// the curve PoEs are interpolated onto the expected curve's loss
// abscissae before the tolerance comparison. Two special cases:
// when both asset values are exactly zero the loss ratios are compared
// directly, and a curve whose losses are all zero matches only an
// all-zero expected PoE vector.
func LossCurveAlmostEqual(curve, expected LossCurvePoints) bool {
	if curve.AssetValue == 0 && expected.AssetValue == 0 {
		return RiskAlmostEqual(curve.LossRatios, expected.LossRatios)
	}

	losses := curve.Losses()
	var poes []float64
	if anyPositive(losses) {
		poes = interpolate(losses, curve.Poes, expected.Losses())
	} else {
		poes = make([]float64, len(expected.Poes))
	}
	return RiskAlmostEqual(poes, expected.Poes)
}

func anyPositive(values []float64) bool {
	for _, v := range values {
		if v > 0 {
			return true
		}
	}
	return false
}

// interpolate evaluates the piecewise-linear function (xs, ys) at each
// point of targets. Points outside [xs[0], xs[last]] get 0, matching
// the bounds_error=False, fill_value=0 behavior the comparison relies
// on.
func interpolate(xs, ys, targets []float64) []float64 {
	out := make([]float64, len(targets))
	if len(xs) == 0 {
		return out
	}
	for i, t := range targets {
		if t < xs[0] || t > xs[len(xs)-1] {
			out[i] = 0
			continue
		}
		// find the segment containing t
		j := 0
		for j < len(xs)-1 && xs[j+1] < t {
			j++
		}
		if j == len(xs)-1 {
			out[i] = ys[j]
			continue
		}
		x0, x1 := xs[j], xs[j+1]
		if x1 == x0 {
			out[i] = ys[j]
			continue
		}
		frac := (t - x0) / (x1 - x0)
		out[i] = ys[j] + frac*(ys[j+1]-ys[j])
	}
	return out
}

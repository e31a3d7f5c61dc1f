// SPDX-License-Identifier: Apache-2.0

package domain

type LossType string

const (
	LossStructural    LossType = "structural"
	LossNonstructural LossType = "nonstructural"
	LossFatalities    LossType = "fatalities"
	LossContents      LossType = "contents"
)

// LossTypes lists the supported loss types in a fixed order.
var LossTypes = []LossType{
	LossStructural,
	LossNonstructural,
	LossFatalities,
	LossContents,
}

// CostTypeName maps a loss type to the cost type recorded in the
// exposure model. Fatalities have no cost record; they are counted
// from occupancy data.
func (lt LossType) CostTypeName() string {
	switch lt {
	case LossStructural:
		return "structuralCost"
	case LossNonstructural:
		return "nonStructuralCost"
	case LossContents:
		return "contentsCost"
	default:
		return ""
	}
}

// StatKind is the statistics kind of an aggregated result.
type StatKind string

const (
	StatNone     StatKind = ""
	StatMean     StatKind = "mean"
	StatQuantile StatKind = "quantile"
)

// SPDX-License-Identifier: Apache-2.0

// Package hazard holds hazard curve containers and the statistical
// aggregation of realization curves into mean and quantile curves.
package hazard

import (
	"github.com/google/uuid"

	"github.com/quakelab/hazrisk/internal/domain"
)

// Curve is the header row for one set of per-location hazard curves.
// RealizationID is set for realization curves and nil for statistical
// ones (mean or quantile).
type Curve struct {
	ID                int64
	OutputID          uuid.UUID
	RealizationID     *int64
	InvestigationTime float64
	IMT               domain.IMT
	IMLs              []float64
	Statistics        domain.StatKind
	Quantile          *float64
}

// CurveData is one location's probabilities of exceedance, parallel to
// the header's IMLs. Weight is nil when the weight is implicit.
type CurveData struct {
	ID       int64
	CurveID  int64
	Location domain.Point
	PoEs     []float64
	Weight   *float64
}

// CurvePoint is the lean export form of one curve location.
type CurvePoint struct {
	Location domain.Point
	PoEs     []float64
}

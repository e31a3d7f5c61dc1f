// SPDX-License-Identifier: Apache-2.0

// Package gmf reconstructs ground motion fields: it replays the
// ruptures of a realization's stochastic event sets through the
// ground-motion models of that realization, producing per-site ground
// motion values grouped per event set.
package gmf

import (
	"sort"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/eventset"
)

// Node is one ground motion value at a location.
type Node struct {
	GMV      float64
	Location domain.Point
}

// Field is the ground motion field produced by one rupture occurrence
// for one intensity measure type. Nodes are ordered by location.
type Field struct {
	IMT        domain.IMT
	RuptureTag string
	Nodes      []Node
}

// SortNodes orders the field's nodes by location for reproducible
// export.
func (f *Field) SortNodes() {
	sort.Slice(f.Nodes, func(i, j int) bool {
		return f.Nodes[i].Location.Less(f.Nodes[j].Location)
	})
}

// Set groups the fields generated by one stochastic event set. Event
// sets that generated no fields are never emitted.
type Set struct {
	EventSet eventset.EventSet
	Fields   []Field
}

// CorrelationModel perturbs the intra-event residuals jointly across
// the sites sharing a rupture. A nil model leaves the residuals
// independent per site.
type CorrelationModel interface {
	Correlate(seed int64, sites *domain.SiteCollection, residuals []float64) []float64
}

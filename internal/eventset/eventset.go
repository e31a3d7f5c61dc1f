// SPDX-License-Identifier: Apache-2.0

// Package eventset models stochastic event sets: collections of
// simulated earthquake occurrences for one logic-tree source model,
// with their ruptures and per-occurrence tags and seeds.
package eventset

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/quakelab/hazrisk/internal/domain"
)

// Collection groups the stochastic event sets of one source model.
// SourceModelID is nil for scenario calculations.
type Collection struct {
	ID            int64
	OutputID      uuid.UUID
	SourceModelID *int64
	Ordinal       int
}

// EventSet is one stochastic event set within a collection. Ordinals
// start at 1; the exported XML schema requires a nonzero number.
type EventSet struct {
	CollectionID      int64
	Ordinal           int
	InvestigationTime *float64
}

// EventSets enumerates the n event sets of a collection in order.
func EventSets(c Collection, n int, investigationTime *float64) []EventSet {
	sets := make([]EventSet, n)
	for i := range sets {
		sets[i] = EventSet{
			CollectionID:      c.ID,
			Ordinal:           i + 1,
			InvestigationTime: investigationTime,
		}
	}
	return sets
}

// TotalInvestigationTime is the effective time span a collection's
// event sets cover: the per-set investigation time scaled by the
// number of sets per path and the number of realizations sharing the
// source model. Nil investigation time (scenario runs) yields nil.
func TotalInvestigationTime(investigationTime *float64, sesPerPath, realizations int) *float64 {
	if investigationTime == nil {
		return nil
	}
	total := *investigationTime * float64(sesPerPath) * float64(realizations)
	return &total
}

// SurfaceKind tells how a rupture's geometry arrays are interpreted.
type SurfaceKind string

const (
	// SurfaceFaultMesh: the arrays form a rectangular mesh of grid
	// points (simple or complex fault sources).
	SurfaceFaultMesh SurfaceKind = "fault_mesh"
	// SurfacePlanar: exactly 4 corner points, in order top left, top
	// right, bottom left, bottom right (point and area sources).
	SurfacePlanar SurfaceKind = "planar"
	// SurfaceMultiPlanar: one or more groups of 4 corner points
	// (characteristic sources with multi-planar geometry).
	SurfaceMultiPlanar SurfaceKind = "multi_planar"
)

// Hypocenter is the rupture initiation point. Depth is in km.
type Hypocenter struct {
	Lon   float64
	Lat   float64
	Depth float64
}

// Rupture is one probabilistic rupture within a collection. Immutable
// once created; geometry is stored as parallel coordinate arrays whose
// meaning depends on the surface kind.
type Rupture struct {
	ID           int64
	CollectionID int64
	TrtModelID   int64
	Magnitude    float64
	Rake         float64
	Hypocenter   Hypocenter
	Surface      SurfaceKind
	Lons         []float64
	Lats         []float64
	Depths       []float64
	// SiteIndices restricts the rupture to a subset of the site
	// collection; nil means every site is affected.
	SiteIndices []int32
}

// SiteIndexInts converts the stored site subset for use with
// SiteCollection.Filtered. Nil stays nil.
func (r *Rupture) SiteIndexInts() []int {
	if r.SiteIndices == nil {
		return nil
	}
	out := make([]int, len(r.SiteIndices))
	for i, v := range r.SiteIndices {
		out[i] = int(v)
	}
	return out
}

// Corner is one corner point of a planar rupture surface.
type Corner struct {
	Lon   float64
	Lat   float64
	Depth float64
}

func (r *Rupture) corner(i int) (Corner, error) {
	if r.Surface != SurfacePlanar {
		return Corner{}, fmt.Errorf("rupture %d: corners undefined for %s surface", r.ID, r.Surface)
	}
	if len(r.Lons) != 4 || len(r.Lats) != 4 || len(r.Depths) != 4 {
		return Corner{}, fmt.Errorf("rupture %d: %w", r.ID, domain.ErrInvalidPlanarSurface)
	}
	return Corner{Lon: r.Lons[i], Lat: r.Lats[i], Depth: r.Depths[i]}, nil
}

func (r *Rupture) TopLeftCorner() (Corner, error)     { return r.corner(0) }
func (r *Rupture) TopRightCorner() (Corner, error)    { return r.corner(1) }
func (r *Rupture) BottomLeftCorner() (Corner, error)  { return r.corner(2) }
func (r *Rupture) BottomRightCorner() (Corner, error) { return r.corner(3) }

// EventRupture records one occurrence of a rupture within an event
// set. The tag is the stable cross-run identity key; exports iterate
// occurrences in lexicographic tag order.
type EventRupture struct {
	ID         int64
	RuptureID  int64
	SESOrdinal int
	Tag        string
	Seed       int64
}

// RuptureTag encodes the deterministic occurrence tag.
func RuptureTag(smOrdinal, sesOrdinal int, sourceID string, ruptNo, ruptOcc int) string {
	return fmt.Sprintf("smlt=%02d|ses=%04d|src=%s|rup=%03d-%02d",
		smOrdinal, sesOrdinal, sourceID, ruptNo, ruptOcc)
}

// NewEventRupture builds the occurrence row for one rupture in one
// event set.
func NewEventRupture(ruptureID int64, smOrdinal, sesOrdinal int, sourceID string, ruptNo, ruptOcc int, seed int64) EventRupture {
	return EventRupture{
		RuptureID:  ruptureID,
		SESOrdinal: sesOrdinal,
		Tag:        RuptureTag(smOrdinal, sesOrdinal, sourceID, ruptNo, ruptOcc),
		Seed:       seed,
	}
}

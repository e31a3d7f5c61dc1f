// SPDX-License-Identifier: Apache-2.0

// Package logictree resolves logic-tree realizations: the weighted
// cross-product of ground-motion model choices per tectonic region type,
// and the combination of per-trt-model hazard curves into realization
// curves.
package logictree

import (
	"github.com/google/uuid"
)

// SourceModel is one source-model branch of the logic tree.
type SourceModel struct {
	ID      int64
	JobID   uuid.UUID
	Ordinal int
	Name    string
	Path    []string
	Weight  float64
}

// TrtModel groups the sources of one tectonic region type within a
// source model. GSIMs lists the ground-motion model names applicable
// to this region type.
type TrtModel struct {
	ID                 int64
	SourceModelID      int64
	TectonicRegionType string
	NumSources         int
	NumRuptures        int
	MinMag             float64
	MaxMag             float64
	GSIMs              []string
}

// Realization is one resolved logic-tree branch combination. GSIMPath
// holds one ground-motion model name per tectonic region type, in
// trt-model order.
type Realization struct {
	ID            int64
	SourceModelID int64
	Ordinal       int
	Weight        float64
	GSIMPath      []string
}

// Assoc ties a realization to the ground-motion model it uses for one
// trt model. Fixed a realization and a trt model, the gsim is unique.
type Assoc struct {
	ID            int64
	RealizationID int64
	TrtModelID    int64
	GSIM          string
}

// GSIMBranch is one weighted ground-motion model choice for a
// tectonic region type.
type GSIMBranch struct {
	GSIM   string
	Weight float64
}

// BranchSet is the set of gsim branches applicable to one trt model.
type BranchSet struct {
	TrtModelID int64
	Branches   []GSIMBranch
}

// Enumerate builds the full cross-product of gsim branches across the
// branch sets. Realization ordinals follow enumeration order, with the
// first branch set varying slowest. Each weight is the source model
// weight times the product of the chosen branch weights, so the weights
// over all realizations of one source model sum to the model weight.
func Enumerate(sm SourceModel, sets []BranchSet) []Realization {
	if len(sets) == 0 {
		return nil
	}
	rlzs := []Realization{{
		SourceModelID: sm.ID,
		Weight:        sm.Weight,
	}}
	for _, set := range sets {
		next := make([]Realization, 0, len(rlzs)*len(set.Branches))
		for _, r := range rlzs {
			for _, b := range set.Branches {
				path := make([]string, len(r.GSIMPath), len(r.GSIMPath)+1)
				copy(path, r.GSIMPath)
				next = append(next, Realization{
					SourceModelID: sm.ID,
					Weight:        r.Weight * b.Weight,
					GSIMPath:      append(path, b.GSIM),
				})
			}
		}
		rlzs = next
	}
	for i := range rlzs {
		rlzs[i].Ordinal = i
	}
	return rlzs
}

// BuildAssocs pairs each realization's gsim path with the trt models it
// was enumerated against, in branch-set order.
func BuildAssocs(rlzs []Realization, sets []BranchSet) []Assoc {
	assocs := make([]Assoc, 0, len(rlzs)*len(sets))
	for _, r := range rlzs {
		for i, set := range sets {
			assocs = append(assocs, Assoc{
				RealizationID: r.ID,
				TrtModelID:    set.TrtModelID,
				GSIM:          r.GSIMPath[i],
			})
		}
	}
	return assocs
}

// TrtGsimKey identifies the stored curve for one (trt model, gsim) pair.
type TrtGsimKey struct {
	TrtModelID int64
	GSIM       string
}

// BuildCurves combines the per-trt-model probability-of-exceedance
// curves associated with one realization. Each trt-model contribution
// is converted to a probability of non-exceedance, multiplied under the
// independence assumption and converted back:
//
//	combined = 1 - prod(1 - curve)
//
// The product is commutative, so association order does not matter.
// A realization with no associations yields an all-zero curve.
func BuildCurves(rlzID int64, assocs []Assoc, curves map[TrtGsimKey][]float64, numLevels int) []float64 {
	out := make([]float64, numLevels)
	for _, a := range assocs {
		if a.RealizationID != rlzID {
			continue
		}
		c := curves[TrtGsimKey{TrtModelID: a.TrtModelID, GSIM: a.GSIM}]
		for i := range out {
			pne := 1.0 - c[i]
			out[i] = 1.0 - (1.0-out[i])*pne
		}
	}
	return out
}

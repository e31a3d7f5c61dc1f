// SPDX-License-Identifier: Apache-2.0

// Package exposure holds the asset query layer: exposure models, their
// assets with cost and occupancy data, and the chunked retrieval used
// by the risk calculators.
package exposure

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/quakelab/hazrisk/internal/domain"
)

// Cost conversions supported by an exposure model.
const (
	ConversionAggregated = "aggregated"
	ConversionPerArea    = "per_area"
	ConversionPerAsset   = "per_asset"
)

// CategoryPopulation marks exposure models whose "value" is a head
// count rather than a monetary cost.
const CategoryPopulation = "population"

// CostType is one cost conversion rule of an exposure model.
type CostType struct {
	ID                    int64
	ModelID               int64
	Name                  string
	Conversion            string
	Unit                  string
	RetrofittedConversion *string
	RetrofittedUnit       *string
}

// Model is an exposure model: a named collection of assets sharing a
// category, an area convention and a set of cost types.
type Model struct {
	ID          int64
	JobID       uuid.UUID
	Name        string
	Description string
	Category    string
	AreaType    *string
	AreaUnit    *string
	CostTypes   []CostType
}

// CostTypeFor returns the cost type matching the given loss type, or
// nil when the model does not carry it.
func (m *Model) CostTypeFor(lt domain.LossType) *CostType {
	name := lt.CostTypeName()
	if name == "" {
		return nil
	}
	for i := range m.CostTypes {
		if m.CostTypes[i].Name == name {
			return &m.CostTypes[i]
		}
	}
	return nil
}

// CostRow is one converted cost record of an asset for one cost type.
type CostRow struct {
	ID                int64
	AssetID           int64
	CostTypeID        int64
	ConvertedCost     float64
	ConvertedRetrofit *float64
	DeductibleAbs     *float64
	InsuranceLimitAbs *float64
}

// Occupancy is one time-period occupant count of an asset.
type Occupancy struct {
	ID        int64
	AssetID   int64
	Period    string
	Occupants float64
}

// lossValues carries the per-loss-type numbers resolved for an asset
// when its chunk is built.
type lossValues struct {
	value          float64
	retrofitted    *float64
	deductibleAbs  *float64
	insuranceLimit *float64
}

// Asset is one exposure record. Its monetary values per loss type are
// resolved when the chunk is built, not looked up per call.
type Asset struct {
	ID            int64
	ModelID       int64
	Ref           string
	Taxonomy      string
	Site          domain.Point
	NumberOfUnits *float64
	Area          *float64
	People        *float64

	values map[domain.LossType]lossValues
}

// Value returns the asset value for the given loss type. Fatalities
// resolve to the people count.
func (a *Asset) Value(lt domain.LossType) (float64, error) {
	if lt == domain.LossFatalities {
		if a.People == nil {
			return 0, fmt.Errorf("asset %s: no occupancy data", a.Ref)
		}
		return *a.People, nil
	}
	v, ok := a.values[lt]
	if !ok {
		return 0, fmt.Errorf("asset %s: no value for loss type %s", a.Ref, lt)
	}
	return v.value, nil
}

// Retrofitted returns the retrofitted value for the given loss type.
func (a *Asset) Retrofitted(lt domain.LossType) (float64, error) {
	v, ok := a.values[lt]
	if !ok || v.retrofitted == nil {
		return 0, fmt.Errorf("asset %s: no retrofitted value for loss type %s", a.Ref, lt)
	}
	return *v.retrofitted, nil
}

// Deductible returns the insurance deductible as a fraction of the
// asset value.
func (a *Asset) Deductible(lt domain.LossType) (float64, error) {
	v, ok := a.values[lt]
	if !ok || v.deductibleAbs == nil {
		return 0, fmt.Errorf("asset %s: no deductible for loss type %s", a.Ref, lt)
	}
	return *v.deductibleAbs / v.value, nil
}

// InsuranceLimit returns the insurance limit as a fraction of the
// asset value.
func (a *Asset) InsuranceLimit(lt domain.LossType) (float64, error) {
	v, ok := a.values[lt]
	if !ok || v.insuranceLimit == nil {
		return 0, fmt.Errorf("asset %s: no insurance limit for loss type %s", a.Ref, lt)
	}
	return *v.insuranceLimit / v.value, nil
}

// setValues installs the resolved numbers for one loss type.
func (a *Asset) setValues(lt domain.LossType, v lossValues) {
	if a.values == nil {
		a.values = make(map[domain.LossType]lossValues)
	}
	a.values[lt] = v
}

// PerAssetValue computes the monetary value of one asset from its raw
// exposure record:
//
//	population category        -> number of units (head count)
//	aggregated cost            -> cost
//	per_asset cost             -> cost * units
//	per_area cost, aggregated  -> cost * area
//	per_area cost, per_asset   -> cost * area * units
//
// Any other combination is a fatal input error.
func PerAssetValue(cost float64, conversion string, area float64, areaType string, units float64, category string) (float64, error) {
	if category == CategoryPopulation {
		return units, nil
	}
	switch conversion {
	case ConversionAggregated:
		return cost, nil
	case ConversionPerAsset:
		return cost * units, nil
	case ConversionPerArea:
		switch areaType {
		case ConversionAggregated:
			return cost * area, nil
		case ConversionPerAsset:
			return cost * area * units, nil
		}
	}
	return 0, fmt.Errorf("%w: conversion=%q area type=%q",
		domain.ErrInvalidAssetValueRule, conversion, areaType)
}

// MakeAbsolute resolves an insurance limit or deductible to an
// absolute amount: nil stays nil, an absolute limit passes through, a
// relative limit is scaled by the asset value.
func MakeAbsolute(limit *float64, value float64, isAbsolute bool) *float64 {
	if limit == nil {
		return nil
	}
	if isAbsolute {
		return limit
	}
	v := *limit * value
	return &v
}

// Region is a closed polygon in WGS84 coordinates used as the spatial
// constraint of a risk calculation.
type Region []domain.Point

// pgPolygon renders the region in the input syntax of the native
// postgres polygon type.
func (r Region) pgPolygon() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range r {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "(%g,%g)", p.Lon, p.Lat)
	}
	b.WriteByte(')')
	return b.String()
}

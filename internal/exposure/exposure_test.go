// SPDX-License-Identifier: Apache-2.0

package exposure

import (
	"errors"
	"testing"

	"github.com/quakelab/hazrisk/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func TestPerAssetValue(t *testing.T) {
	cases := []struct {
		name       string
		conversion string
		areaType   string
		want       float64
	}{
		{"aggregated", ConversionAggregated, "", 10},
		{"per asset", ConversionPerAsset, "", 30},
		{"per area aggregated", ConversionPerArea, ConversionAggregated, 20},
		{"per area per asset", ConversionPerArea, ConversionPerAsset, 60},
	}
	for _, tc := range cases {
		got, err := PerAssetValue(10, tc.conversion, 2, tc.areaType, 3, "buildings")
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %g, want %g", tc.name, got, tc.want)
		}
	}
}

func TestPerAssetValuePopulation(t *testing.T) {
	got, err := PerAssetValue(0, "", 0, "", 42, CategoryPopulation)
	if err != nil {
		t.Fatalf("PerAssetValue: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %g, want the head count 42", got)
	}
}

func TestPerAssetValueInvalidRule(t *testing.T) {
	if _, err := PerAssetValue(10, "per_area", 2, "bogus", 3, "buildings"); !errors.Is(err, domain.ErrInvalidAssetValueRule) {
		t.Fatalf("got %v, want ErrInvalidAssetValueRule", err)
	}
	if _, err := PerAssetValue(10, "bogus", 2, "", 3, "buildings"); !errors.Is(err, domain.ErrInvalidAssetValueRule) {
		t.Fatalf("got %v, want ErrInvalidAssetValueRule", err)
	}
}

func TestMakeAbsolute(t *testing.T) {
	if got := MakeAbsolute(nil, 100, false); got != nil {
		t.Fatalf("nil limit must stay nil, got %v", *got)
	}
	if got := MakeAbsolute(fptr(500), 100, true); got == nil || *got != 500 {
		t.Fatalf("absolute limit must pass through, got %v", got)
	}
	if got := MakeAbsolute(fptr(0.5), 100, false); got == nil || *got != 50 {
		t.Fatalf("relative limit must scale by value, got %v", got)
	}
}

func TestAssetValueAccessors(t *testing.T) {
	a := Asset{Ref: "a1", People: fptr(7)}
	a.setValues(domain.LossStructural, lossValues{
		value:          200,
		retrofitted:    fptr(250),
		deductibleAbs:  fptr(20),
		insuranceLimit: fptr(100),
	})

	if v, err := a.Value(domain.LossStructural); err != nil || v != 200 {
		t.Fatalf("value = %g, %v", v, err)
	}
	if v, err := a.Value(domain.LossFatalities); err != nil || v != 7 {
		t.Fatalf("fatalities value = %g, %v", v, err)
	}
	if v, err := a.Retrofitted(domain.LossStructural); err != nil || v != 250 {
		t.Fatalf("retrofitted = %g, %v", v, err)
	}
	if v, err := a.Deductible(domain.LossStructural); err != nil || v != 0.1 {
		t.Fatalf("deductible = %g, %v", v, err)
	}
	if v, err := a.InsuranceLimit(domain.LossStructural); err != nil || v != 0.5 {
		t.Fatalf("insurance limit = %g, %v", v, err)
	}
	if _, err := a.Value(domain.LossContents); err == nil {
		t.Fatalf("missing loss type must error")
	}
}

func TestResolveValues(t *testing.T) {
	m := &Model{
		ID:       1,
		Category: "buildings",
		AreaType: sptr(ConversionAggregated),
		CostTypes: []CostType{
			{ID: 11, Name: "structuralCost", Conversion: ConversionPerArea},
			{ID: 12, Name: "contentsCost", Conversion: ConversionAggregated},
		},
	}
	a := Asset{Ref: "a1", Area: fptr(2), NumberOfUnits: fptr(3)}
	costs := []CostRow{
		{CostTypeID: 11, ConvertedCost: 10, ConvertedRetrofit: fptr(20)},
		{CostTypeID: 12, ConvertedCost: 5},
	}
	if err := resolveValues(&a, m, costs); err != nil {
		t.Fatalf("resolveValues: %v", err)
	}

	if v, err := a.Value(domain.LossStructural); err != nil || v != 20 {
		t.Fatalf("structural = %g, %v, want 10*2", v, err)
	}
	if v, err := a.Retrofitted(domain.LossStructural); err != nil || v != 40 {
		t.Fatalf("retrofitted = %g, %v, want 20*2", v, err)
	}
	if v, err := a.Value(domain.LossContents); err != nil || v != 5 {
		t.Fatalf("contents = %g, %v, want the aggregated cost", v, err)
	}
	if _, err := a.Value(domain.LossNonstructural); err == nil {
		t.Fatalf("loss type without cost row must error")
	}
}

func TestCostTypeFor(t *testing.T) {
	m := &Model{CostTypes: []CostType{{Name: "structuralCost"}, {Name: "contentsCost"}}}
	if ct := m.CostTypeFor(domain.LossStructural); ct == nil || ct.Name != "structuralCost" {
		t.Fatalf("got %v", ct)
	}
	if ct := m.CostTypeFor(domain.LossFatalities); ct != nil {
		t.Fatalf("fatalities must have no cost type, got %v", ct)
	}
	if ct := m.CostTypeFor(domain.LossNonstructural); ct != nil {
		t.Fatalf("absent cost type must yield nil, got %v", ct)
	}
}

func TestRegionPgPolygon(t *testing.T) {
	r := Region{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1}}
	if got := r.pgPolygon(); got != "((0,0),(1,0),(1,1),(0,1))" {
		t.Fatalf("got %q", got)
	}
}

func sptr(s string) *string { return &s }

// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"errors"
	"math"
	"testing"

	"github.com/quakelab/hazrisk/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func TestBuildLossCurveRowsKeepsDuplicates(t *testing.T) {
	entries := []LossCurveEntry{
		{
			Site:             domain.Point{Lon: 1.0, Lat: 2.0},
			AssetRef:         "asset_1",
			AssetValue:       100,
			LossRatios:       []float64{0.1, 0.2, 0.3},
			PoEs:             []float64{0.9, 0.5, 0.1},
			AverageLossRatio: 0.05,
		},
		{
			Site:             domain.Point{Lon: 1.0, Lat: 2.0},
			AssetRef:         "asset_1",
			AssetValue:       100,
			LossRatios:       []float64{0.1, 0.2, 0.3},
			PoEs:             []float64{0.9, 0.5, 0.1},
			AverageLossRatio: 0.05,
		},
		{
			Site:             domain.Point{Lon: 2.0, Lat: 2.0},
			AssetRef:         "asset_2",
			AssetValue:       50,
			LossRatios:       []float64{0.2, 0.4, 0.6},
			PoEs:             []float64{0.8, 0.4, 0.05},
			AverageLossRatio: 0.1,
			StddevLossRatio:  fptr(0.02),
		},
	}

	rows := BuildLossCurveRows(7, entries)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	byRef := make(map[string]int)
	for _, row := range rows {
		if row.LossCurveID != 7 {
			t.Fatalf("row %q has loss_curve_id %d, want 7", row.AssetRef, row.LossCurveID)
		}
		byRef[row.AssetRef]++
	}
	if byRef["asset_1"] != 2 || byRef["asset_2"] != 1 {
		t.Fatalf("asset multiset wrong: %v", byRef)
	}
	if rows[2].StddevLossRatio == nil || *rows[2].StddevLossRatio != 0.02 {
		t.Fatalf("stddev loss ratio not preserved: %v", rows[2].StddevLossRatio)
	}
}

func TestLossCurveDataAbsoluteValues(t *testing.T) {
	d := LossCurveData{
		AssetValue:       200,
		LossRatios:       []float64{0.1, 0.5},
		PoEs:             []float64{0.9, 0.1},
		AverageLossRatio: 0.25,
	}
	losses := d.Losses()
	if losses[0] != 20 || losses[1] != 100 {
		t.Fatalf("losses = %v, want [20 100]", losses)
	}
	if got := d.AverageLoss(); got != 50 {
		t.Fatalf("average loss = %g, want 50", got)
	}
	if d.StddevLoss() != nil {
		t.Fatalf("stddev loss should be nil when ratio is nil")
	}
	d.StddevLossRatio = fptr(0.1)
	if got := d.StddevLoss(); got == nil || *got != 20 {
		t.Fatalf("stddev loss = %v, want 20", got)
	}
}

func TestLossCurveOutputHashIgnoresIDs(t *testing.T) {
	meta := domain.HazardMetadata{
		InvestigationTime: fptr(50),
		SMPath:            []string{"b1"},
		GSIMPath:          []string{"b2"},
	}
	a := LossCurve{ID: 1, Insured: true, LossType: domain.LossStructural}
	b := LossCurve{ID: 99, Insured: true, LossType: domain.LossStructural}
	if !a.OutputHash(OutputLossCurve, meta).Equal(b.OutputHash(OutputLossCurve, meta)) {
		t.Fatalf("hashes of identical containers differ")
	}

	c := LossCurve{Insured: false, LossType: domain.LossStructural}
	if a.OutputHash(OutputLossCurve, meta).Equal(c.OutputHash(OutputLossCurve, meta)) {
		t.Fatalf("insured flag not part of the hash")
	}
	if a.OutputHash(OutputLossCurve, meta).Equal(a.OutputHash(OutputEventLossCurve, meta)) {
		t.Fatalf("output type not part of the hash")
	}
}

func TestLossCurveDataHashAppendsAssetRef(t *testing.T) {
	lc := LossCurve{LossType: domain.LossStructural}
	oh := lc.OutputHash(OutputLossCurve, domain.HazardMetadata{})
	d := LossCurveData{AssetRef: "a1"}
	dh := d.DataHash(oh)
	if len(dh) != len(oh)+1 || dh[len(dh)-1] != "a1" {
		t.Fatalf("data hash = %v", dh)
	}
}

func TestAggregateCurveDataHashEqualsOutputHash(t *testing.T) {
	lc := LossCurve{Aggregate: true, LossType: domain.LossStructural}
	oh := lc.OutputHash(OutputAggLossCurve, domain.HazardMetadata{})
	d := AggregateLossCurveData{Losses: []float64{1, 2}}
	if !d.DataHash(oh).Equal(oh) {
		t.Fatalf("aggregate data hash must equal the output hash")
	}
}

func TestEventLossDataHashUsesTag(t *testing.T) {
	el := EventLoss{LossType: domain.LossStructural}
	oh := el.OutputHash(domain.HazardMetadata{})
	a := EventLossData{EventRuptureID: 1, RuptureTag: "smlt=00|ses=0001|src=s|rup=001-01", AggregateLoss: 5}
	b := EventLossData{EventRuptureID: 2, RuptureTag: "smlt=00|ses=0001|src=s|rup=001-01", AggregateLoss: 5}
	if !a.DataHash(oh).Equal(b.DataHash(oh)) {
		t.Fatalf("event loss data hash must not depend on database ids")
	}
	c := EventLossData{EventRuptureID: 1, RuptureTag: "smlt=00|ses=0002|src=s|rup=001-01", AggregateLoss: 5}
	if a.DataHash(oh).Equal(c.DataHash(oh)) {
		t.Fatalf("rupture tag not part of the hash")
	}
}

func TestDisplayValueTaxonomy(t *testing.T) {
	lf := LossFraction{Variable: VariableTaxonomy}
	got, err := lf.DisplayValue("RC/DMRF-D/LR", BinWidths{})
	if err != nil {
		t.Fatalf("DisplayValue: %v", err)
	}
	if got != "RC/DMRF-D/LR" {
		t.Fatalf("got %q, want pass-through", got)
	}
}

func TestDisplayValueMagnitudeDistance(t *testing.T) {
	lf := LossFraction{Variable: VariableMagnitudeDistance}
	got, err := lf.DisplayValue("3,4", BinWidths{Mag: 0.5, Distance: 100})
	if err != nil {
		t.Fatalf("DisplayValue: %v", err)
	}
	if got != "1.5000,2.0000|400.0000,500.0000" {
		t.Fatalf("got %q", got)
	}
}

func TestDisplayValueCoordinate(t *testing.T) {
	lf := LossFraction{Variable: VariableCoordinate}
	got, err := lf.DisplayValue("2,1", BinWidths{Coordinate: 0.25})
	if err != nil {
		t.Fatalf("DisplayValue: %v", err)
	}
	if got != "0.5000,0.7500|0.2500,0.5000" {
		t.Fatalf("got %q", got)
	}
}

func TestDisplayValueUnsupportedVariable(t *testing.T) {
	lf := LossFraction{Variable: "losscategory"}
	if _, err := lf.DisplayValue("x", BinWidths{}); !errors.Is(err, domain.ErrUnsupportedVariable) {
		t.Fatalf("got %v, want ErrUnsupportedVariable", err)
	}
}

func TestTotalFractions(t *testing.T) {
	lf := LossFraction{Variable: VariableTaxonomy}
	rows := []LossFractionData{
		{Location: domain.Point{Lon: 1, Lat: 1}, Value: "RC", AbsoluteLoss: 60},
		{Location: domain.Point{Lon: 2, Lat: 1}, Value: "RC", AbsoluteLoss: 20},
		{Location: domain.Point{Lon: 1, Lat: 1}, Value: "W", AbsoluteLoss: 20},
	}
	bins, err := lf.TotalFractions(rows, BinWidths{})
	if err != nil {
		t.Fatalf("TotalFractions: %v", err)
	}
	if len(bins) != 2 {
		t.Fatalf("got %d bins, want 2", len(bins))
	}
	if bins[0].Bin != "RC" || bins[0].AbsoluteLoss != 80 {
		t.Fatalf("largest bin = %+v", bins[0])
	}
	sumLoss, sumFraction := 0.0, 0.0
	for _, b := range bins {
		sumLoss += b.AbsoluteLoss
		sumFraction += b.Fraction
	}
	if sumLoss != 100 {
		t.Fatalf("bin losses sum to %g, want the grand total 100", sumLoss)
	}
	if math.Abs(sumFraction-1) > 1e-12 {
		t.Fatalf("fractions sum to %g, want 1", sumFraction)
	}
}

func TestTotalFractionsZeroTotal(t *testing.T) {
	lf := LossFraction{Variable: VariableTaxonomy}
	rows := []LossFractionData{
		{Value: "RC", AbsoluteLoss: 0},
		{Value: "W", AbsoluteLoss: 0},
	}
	bins, err := lf.TotalFractions(rows, BinWidths{})
	if err != nil {
		t.Fatalf("TotalFractions: %v", err)
	}
	if bins != nil {
		t.Fatalf("zero grand total must yield no bins, got %v", bins)
	}
}

func TestItems(t *testing.T) {
	lf := LossFraction{Variable: VariableTaxonomy}
	rows := []LossFractionData{
		{Location: domain.Point{Lon: 2, Lat: 1}, Value: "RC", AbsoluteLoss: 30},
		{Location: domain.Point{Lon: 1, Lat: 1}, Value: "W", AbsoluteLoss: 25},
		{Location: domain.Point{Lon: 1, Lat: 1}, Value: "RC", AbsoluteLoss: 75},
		{Location: domain.Point{Lon: 2, Lat: 1}, Value: "W", AbsoluteLoss: 10},
	}
	items, err := lf.Items(rows, BinWidths{})
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d locations, want 2", len(items))
	}
	if items[0].Location.Lon != 1 || items[1].Location.Lon != 2 {
		t.Fatalf("locations out of order: %v %v", items[0].Location, items[1].Location)
	}
	first := items[0].Bins
	if len(first) != 2 || first[0].Bin != "RC" || first[1].Bin != "W" {
		t.Fatalf("bins out of order: %v", first)
	}
	if first[0].Fraction != 0.75 || first[1].Fraction != 0.25 {
		t.Fatalf("local fractions = %g, %g", first[0].Fraction, first[1].Fraction)
	}
}

func TestItemsZeroLocalTotal(t *testing.T) {
	lf := LossFraction{Variable: VariableTaxonomy}
	rows := []LossFractionData{
		{Location: domain.Point{Lon: 1, Lat: 1}, Value: "RC", AbsoluteLoss: 0},
	}
	items, err := lf.Items(rows, BinWidths{})
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || len(items[0].Bins) != 1 {
		t.Fatalf("zero-loss row must be kept: %v", items)
	}
	if items[0].Bins[0].Fraction != 0 {
		t.Fatalf("fraction = %g, want 0 for a zero local total", items[0].Bins[0].Fraction)
	}
}

func TestBuildLossMapScenario(t *testing.T) {
	meta := LossMapMetadata{
		Deterministic:  true,
		EndBranchLabel: "test_ebl",
		Category:       "economic_loss",
		Unit:           "EUR",
	}
	entries := []LossMapEntry{
		{
			Site: domain.Point{Lon: -117.0, Lat: 38.0},
			Losses: []AssetLoss{
				{AssetRef: "a1711", Mean: 0, StdDev: fptr(100)},
				{AssetRef: "a1712", Mean: 5, StdDev: fptr(2000.0)},
			},
		},
		{
			Site: domain.Point{Lon: -118.0, Lat: 39.0},
			Losses: []AssetLoss{
				{AssetRef: "a1713", Mean: 120000.0, StdDev: fptr(2000.0)},
			},
		},
	}

	lm, rows := BuildLossMap(meta, entries)
	if !lm.Deterministic || lm.EndBranchLabel != "test_ebl" || lm.Category != "economic_loss" || lm.Unit != "EUR" {
		t.Fatalf("metadata not preserved: %+v", lm)
	}
	if lm.PoE != nil {
		t.Fatalf("deterministic map must carry no poe, got %v", *lm.PoE)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	want := map[string]struct {
		mean, stddev, lon, lat float64
	}{
		"a1711": {0, 100, -117.0, 38.0},
		"a1712": {5, 2000.0, -117.0, 38.0},
		"a1713": {120000.0, 2000.0, -118.0, 39.0},
	}
	for _, row := range rows {
		w, ok := want[row.AssetRef]
		if !ok {
			t.Fatalf("unexpected asset %q", row.AssetRef)
		}
		if row.Value != w.mean || row.StdDev == nil || *row.StdDev != w.stddev {
			t.Fatalf("asset %q: value=%g stddev=%v", row.AssetRef, row.Value, row.StdDev)
		}
		if row.Location.Lon != w.lon || row.Location.Lat != w.lat {
			t.Fatalf("asset %q at %v", row.AssetRef, row.Location)
		}
		delete(want, row.AssetRef)
	}
}

func TestLossMapDataHash(t *testing.T) {
	lm := LossMap{PoE: fptr(0.1), LossType: domain.LossStructural}
	oh := lm.OutputHash(domain.HazardMetadata{InvestigationTime: fptr(50)})
	a := LossMapData{ID: 1, AssetRef: "a1", Value: 10}
	b := LossMapData{ID: 2, AssetRef: "a1", Value: 99}
	if !a.DataHash(oh).Equal(b.DataHash(oh)) {
		t.Fatalf("loss map data hash must depend only on the asset ref")
	}
	c := LossMapData{AssetRef: "a2"}
	if a.DataHash(oh).Equal(c.DataHash(oh)) {
		t.Fatalf("asset ref not part of the hash")
	}
}

func TestDamageDistributionHashes(t *testing.T) {
	a := DmgDistPerAsset{DmgState: "moderate", AssetRef: "a1", Mean: 0.5}
	b := DmgDistPerAsset{DmgState: "moderate", AssetRef: "a1", Mean: 0.9}
	if !a.OutputHash().Equal(b.OutputHash()) {
		t.Fatalf("per-asset hash must not include the mean")
	}
	c := DmgDistPerAsset{DmgState: "complete", AssetRef: "a1"}
	if a.OutputHash().Equal(c.OutputHash()) {
		t.Fatalf("damage state not part of the hash")
	}

	tx := DmgDistPerTaxonomy{DmgState: "moderate", Taxonomy: "RC"}
	if tx.OutputHash().Equal(a.OutputHash()) {
		t.Fatalf("per-taxonomy and per-asset hashes must differ")
	}

	tot := DmgDistTotal{DmgState: "moderate"}
	if !tot.DataHash().Equal(tot.OutputHash()) {
		t.Fatalf("total distribution data hash must equal its output hash")
	}
}

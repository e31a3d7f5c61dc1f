// SPDX-License-Identifier: Apache-2.0

package risk

import "github.com/quakelab/hazrisk/internal/domain"

// LossCurveEntry is one record of the loss-curve serialization stream:
// an asset's curve at a site. Duplicate assets at the same site are
// legal; each entry becomes its own row.
type LossCurveEntry struct {
	Site             domain.Point
	AssetRef         string
	AssetValue       float64
	LossRatios       []float64
	PoEs             []float64
	AverageLossRatio float64
	StddevLossRatio  *float64
}

// BuildLossCurveRows turns a serialization stream into the detail rows
// of one container, one row per entry.
func BuildLossCurveRows(curveID int64, entries []LossCurveEntry) []LossCurveData {
	rows := make([]LossCurveData, len(entries))
	for i, e := range entries {
		rows[i] = LossCurveData{
			LossCurveID:      curveID,
			AssetRef:         e.AssetRef,
			AssetValue:       e.AssetValue,
			LossRatios:       e.LossRatios,
			PoEs:             e.PoEs,
			Location:         e.Site,
			AverageLossRatio: e.AverageLossRatio,
			StddevLossRatio:  e.StddevLossRatio,
		}
	}
	return rows
}

// LossMapMetadata is the scenario metadata accepted by the loss-map
// serializer.
type LossMapMetadata struct {
	Deterministic  bool
	EndBranchLabel string
	Category       string
	Unit           string
	PoE            *float64
}

// AssetLoss is one asset's loss statistic at a site.
type AssetLoss struct {
	AssetRef string
	Mean     float64
	StdDev   *float64
}

// LossMapEntry is one site of the loss-map serialization stream with
// the losses of every asset at that site.
type LossMapEntry struct {
	Site   domain.Point
	Losses []AssetLoss
}

// BuildLossMap turns the metadata and stream into one container and
// one detail row per (site, asset) pair, preserving mean and stddev.
func BuildLossMap(meta LossMapMetadata, entries []LossMapEntry) (LossMap, []LossMapData) {
	lm := LossMap{
		Deterministic:  meta.Deterministic,
		EndBranchLabel: meta.EndBranchLabel,
		Category:       meta.Category,
		Unit:           meta.Unit,
		PoE:            meta.PoE,
	}
	var rows []LossMapData
	for _, e := range entries {
		for _, loss := range e.Losses {
			rows = append(rows, LossMapData{
				AssetRef: loss.AssetRef,
				Value:    loss.Mean,
				StdDev:   loss.StdDev,
				Location: e.Site,
			})
		}
	}
	return lm, rows
}

// SPDX-License-Identifier: Apache-2.0

// Package risk holds the risk result model: loss curves, loss maps,
// loss fractions, event-loss tables, BCR and damage distributions,
// with the identity hashing used to match results across independent
// runs.
package risk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/quakelab/hazrisk/internal/domain"
)

// Output types of the risk result containers.
const (
	OutputLossCurve       = "loss_curve"
	OutputEventLossCurve  = "event_loss_curve"
	OutputAggLossCurve    = "agg_loss_curve"
	OutputLossMap         = "loss_map"
	OutputLossFraction    = "loss_fraction"
	OutputEventLoss       = "event_loss"
	OutputAggregateLoss   = "aggregate_loss"
	OutputBCRDistribution = "bcr_distribution"
	OutputDmgDistPerAsset = "dmg_dist_per_asset"
	OutputDmgDistPerTaxo  = "dmg_dist_per_taxonomy"
	OutputDmgDistTotal    = "dmg_dist_total"
)

// LossCurve is the container row for a set of loss curves.
type LossCurve struct {
	ID             int64
	OutputID       uuid.UUID
	HazardOutputID uuid.UUID
	Aggregate      bool
	Insured        bool
	Statistics     domain.StatKind
	Quantile       *float64
	LossType       domain.LossType
}

// OutputHash identifies the container independently of database ids.
func (lc *LossCurve) OutputHash(outputType string, meta domain.HazardMetadata) domain.Hash {
	return domain.NewOutputHash(outputType, meta,
		string(lc.Statistics),
		domain.FloatField(lc.Quantile),
		domain.BoolField(lc.Aggregate),
		domain.BoolField(lc.Insured),
		string(lc.LossType),
	)
}

// LossCurveData is one asset's loss curve. Loss ratios are fractions
// of the asset value; Losses resolves them to absolute values.
type LossCurveData struct {
	ID               int64
	LossCurveID      int64
	AssetRef         string
	AssetValue       float64
	LossRatios       []float64
	PoEs             []float64
	Location         domain.Point
	AverageLossRatio float64
	StddevLossRatio  *float64
}

func (d *LossCurveData) Losses() []float64 {
	out := make([]float64, len(d.LossRatios))
	for i, r := range d.LossRatios {
		out[i] = r * d.AssetValue
	}
	return out
}

func (d *LossCurveData) AverageLoss() float64 {
	return d.AverageLossRatio * d.AssetValue
}

func (d *LossCurveData) StddevLoss() *float64 {
	if d.StddevLossRatio == nil {
		return nil
	}
	v := *d.StddevLossRatio * d.AssetValue
	return &v
}

func (d *LossCurveData) DataHash(outputHash domain.Hash) domain.Hash {
	return outputHash.Append(d.AssetRef)
}

// CurvePoints adapts the row for approximate-equality comparison.
func (d *LossCurveData) CurvePoints() domain.LossCurvePoints {
	return domain.LossCurvePoints{
		AssetValue: d.AssetValue,
		LossRatios: d.LossRatios,
		Poes:       d.PoEs,
	}
}

// ToCSV renders the row as two CSV lines, ratios then PoEs, labelled
// for export.
func (d *LossCurveData) ToCSV(label string) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(",Ratios")
	for _, r := range d.LossRatios {
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(r, 'g', -1, 64))
	}
	b.WriteByte('\n')
	b.WriteString(strconv.FormatFloat(d.AssetValue, 'g', -1, 64))
	b.WriteString(",PoE")
	for _, p := range d.PoEs {
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	return b.String()
}

// AggregateLossCurveData is the single whole-exposure curve of an
// aggregate loss curve container. Losses are absolute.
type AggregateLossCurveData struct {
	ID          int64
	LossCurveID int64
	Losses      []float64
	PoEs        []float64
	AverageLoss float64
	StddevLoss  *float64
}

func (d *AggregateLossCurveData) DataHash(outputHash domain.Hash) domain.Hash {
	return outputHash
}

func (d *AggregateLossCurveData) ToCSV(label string) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(",Losses")
	for _, l := range d.Losses {
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(l, 'g', -1, 64))
	}
	b.WriteString("\n,PoE")
	for _, p := range d.PoEs {
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	return b.String()
}

// LossMap is the container row for a loss map. The scenario metadata
// fields (deterministic flag, end branch label, category, unit) are
// carried for serialization; the remaining fields identify the map.
type LossMap struct {
	ID             int64
	OutputID       uuid.UUID
	HazardOutputID uuid.UUID
	Deterministic  bool
	EndBranchLabel string
	Category       string
	Unit           string
	Insured        bool
	PoE            *float64
	Statistics     domain.StatKind
	Quantile       *float64
	LossType       domain.LossType
}

func (lm *LossMap) OutputHash(meta domain.HazardMetadata) domain.Hash {
	return domain.NewOutputHash(OutputLossMap, meta,
		string(lm.Statistics),
		domain.FloatField(lm.Quantile),
		domain.BoolField(lm.Insured),
		domain.FloatField(lm.PoE),
		string(lm.LossType),
	)
}

// LossMapData is one (site, asset) cell of a loss map.
type LossMapData struct {
	ID        int64
	LossMapID int64
	AssetRef  string
	Value     float64
	StdDev    *float64
	Location  domain.Point
}

func (d *LossMapData) DataHash(outputHash domain.Hash) domain.Hash {
	return outputHash.Append(d.AssetRef)
}

// EventLoss is the container for the per-rupture aggregate losses.
type EventLoss struct {
	ID             int64
	OutputID       uuid.UUID
	HazardOutputID uuid.UUID
	LossType       domain.LossType
}

func (el *EventLoss) OutputHash(meta domain.HazardMetadata) domain.Hash {
	return domain.NewOutputHash(OutputEventLoss, meta, string(el.LossType))
}

// EventLossData is the aggregate loss of one rupture occurrence. The
// occurrence is carried both by database reference and by its tag; the
// tag is the stable cross-run key used in the data hash.
type EventLossData struct {
	ID             int64
	EventLossID    int64
	EventRuptureID int64
	RuptureTag     string
	AggregateLoss  float64
}

func (d *EventLossData) DataHash(outputHash domain.Hash) domain.Hash {
	return outputHash.Append(d.RuptureTag)
}

func (d *EventLossData) ToCSV() string {
	return fmt.Sprintf("%s,%s", d.RuptureTag,
		strconv.FormatFloat(d.AggregateLoss, 'g', -1, 64))
}

// AggregateLoss is a single mean/stddev pair for the whole exposure.
type AggregateLoss struct {
	ID       int64
	OutputID uuid.UUID
	Insured  bool
	Mean     float64
	StdDev   float64
	LossType domain.LossType
}

func (al *AggregateLoss) OutputHash(meta domain.HazardMetadata) domain.Hash {
	mean, stddev := al.Mean, al.StdDev
	return domain.NewOutputHash(OutputAggregateLoss, meta,
		domain.BoolField(al.Insured),
		domain.FloatField(&mean),
		domain.FloatField(&stddev),
		string(al.LossType),
	)
}

func (al *AggregateLoss) DataHash(meta domain.HazardMetadata) domain.Hash {
	return al.OutputHash(meta)
}

// BCRDistribution is the container for benefit-cost ratio results.
type BCRDistribution struct {
	ID             int64
	OutputID       uuid.UUID
	HazardOutputID uuid.UUID
	LossType       domain.LossType
}

func (b *BCRDistribution) OutputHash(meta domain.HazardMetadata) domain.Hash {
	return domain.NewOutputHash(OutputBCRDistribution, meta, string(b.LossType))
}

// BCRDistributionData holds one asset's retrofitting analysis.
type BCRDistributionData struct {
	ID                           int64
	BCRDistributionID            int64
	AssetRef                     string
	AverageAnnualLossOriginal    float64
	AverageAnnualLossRetrofitted float64
	BCR                          float64
	Location                     domain.Point
}

func (d *BCRDistributionData) DataHash(outputHash domain.Hash) domain.Hash {
	return outputHash.Append(d.AssetRef)
}

// DmgState is one damage state of the fragility model, ordered by its
// limit state index.
type DmgState struct {
	ID    int64
	JobID uuid.UUID
	Name  string
	LSI   int
}

// DmgDistPerAsset is the damage distribution of one asset in one
// damage state.
type DmgDistPerAsset struct {
	ID         int64
	DmgStateID int64
	DmgState   string
	AssetRef   string
	Mean       float64
	StdDev     float64
}

func (d *DmgDistPerAsset) OutputHash() domain.Hash {
	return domain.Hash{OutputDmgDistPerAsset, d.DmgState, d.AssetRef}
}

func (d *DmgDistPerAsset) DataHash() domain.Hash { return d.OutputHash() }

// DmgDistPerTaxonomy aggregates damage per taxonomy and state.
type DmgDistPerTaxonomy struct {
	ID         int64
	DmgStateID int64
	DmgState   string
	Taxonomy   string
	Mean       float64
	StdDev     float64
}

func (d *DmgDistPerTaxonomy) OutputHash() domain.Hash {
	return domain.Hash{OutputDmgDistPerTaxo, d.DmgState, d.Taxonomy}
}

func (d *DmgDistPerTaxonomy) DataHash() domain.Hash { return d.OutputHash() }

// DmgDistTotal is the whole-calculation damage distribution, one row
// per damage state.
type DmgDistTotal struct {
	ID         int64
	DmgStateID int64
	DmgState   string
	Mean       float64
	StdDev     float64
}

func (d *DmgDistTotal) OutputHash() domain.Hash {
	return domain.Hash{OutputDmgDistTotal, d.DmgState}
}

func (d *DmgDistTotal) DataHash() domain.Hash { return d.OutputHash() }

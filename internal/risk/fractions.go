// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/quakelab/hazrisk/internal/domain"
)

// Discretization variables for loss fractions.
const (
	VariableTaxonomy          = "taxonomy"
	VariableMagnitudeDistance = "magnitude_distance"
	VariableCoordinate        = "coordinate"
)

// LossFraction is the container row for a loss disaggregation.
type LossFraction struct {
	ID             int64
	OutputID       uuid.UUID
	HazardOutputID uuid.UUID
	Variable       string
	Statistics     domain.StatKind
	Quantile       *float64
	PoE            *float64
	LossType       domain.LossType
}

func (lf *LossFraction) OutputHash(meta domain.HazardMetadata) domain.Hash {
	return domain.NewOutputHash(OutputLossFraction, meta,
		string(lf.Statistics),
		domain.FloatField(lf.Quantile),
		lf.Variable,
		domain.FloatField(lf.PoE),
		string(lf.LossType),
	)
}

// BinWidths configures the bin-index-to-interval conversion for the
// binned variables.
type BinWidths struct {
	Mag        float64
	Distance   float64
	Coordinate float64
}

// DisplayValue converts a raw bin value into its display form. For the
// taxonomy variable the value passes through. For the binned variables
// the value holds two comma-separated bin indices; each is multiplied
// by its bin width to produce a half-open interval, the two intervals
// joined by "|".
func (lf *LossFraction) DisplayValue(value string, widths BinWidths) (string, error) {
	switch lf.Variable {
	case VariableTaxonomy:
		return value, nil
	case VariableMagnitudeDistance:
		mag, dist, err := splitBins(value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%.4f,%.4f|%.4f,%.4f",
			mag*widths.Mag, (mag+1)*widths.Mag,
			dist*widths.Distance, (dist+1)*widths.Distance), nil
	case VariableCoordinate:
		lon, lat, err := splitBins(value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%.4f,%.4f|%.4f,%.4f",
			lon*widths.Coordinate, (lon+1)*widths.Coordinate,
			lat*widths.Coordinate, (lat+1)*widths.Coordinate), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedVariable, lf.Variable)
}

func splitBins(value string) (float64, float64, error) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed bin value %q", value)
	}
	a, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed bin value %q: %w", value, err)
	}
	b, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed bin value %q: %w", value, err)
	}
	return a, b, nil
}

// LossFractionData is one raw per-asset absolute-loss row, keyed by
// location and bin value.
type LossFractionData struct {
	ID             int64
	LossFractionID int64
	Location       domain.Point
	Value          string
	AbsoluteLoss   float64
}

func (d *LossFractionData) DataHash(outputHash domain.Hash) domain.Hash {
	return outputHash.Append(
		domain.CoordField(d.Location.Lon),
		domain.CoordField(d.Location.Lat),
		d.Value,
	)
}

// FractionBin is one display bin with its absolute loss and its
// fraction of the reference total.
type FractionBin struct {
	Bin          string
	AbsoluteLoss float64
	Fraction     float64
}

// TotalFractions groups the rows by bin and returns each bin's
// absolute loss and its fraction of the grand total, sorted descending
// by loss. A zero grand total yields no bins.
func (lf *LossFraction) TotalFractions(rows []LossFractionData, widths BinWidths) ([]FractionBin, error) {
	total := 0.0
	byValue := make(map[string]float64)
	for _, row := range rows {
		total += row.AbsoluteLoss
		byValue[row.Value] += row.AbsoluteLoss
	}
	if total == 0 {
		return nil, nil
	}

	bins := make([]FractionBin, 0, len(byValue))
	for value, loss := range byValue {
		display, err := lf.DisplayValue(value, widths)
		if err != nil {
			return nil, err
		}
		bins = append(bins, FractionBin{
			Bin:          display,
			AbsoluteLoss: loss,
			Fraction:     loss / total,
		})
	}
	sort.Slice(bins, func(i, j int) bool {
		if bins[i].AbsoluteLoss != bins[j].AbsoluteLoss {
			return bins[i].AbsoluteLoss > bins[j].AbsoluteLoss
		}
		return bins[i].Bin < bins[j].Bin
	})
	return bins, nil
}

// LocationFractions disaggregates the losses at one location: each bin
// carries its absolute loss and its fraction of the location total.
type LocationFractions struct {
	Location domain.Point
	Bins     []FractionBin
}

// Items groups the rows by location and, within each location, by
// display bin. The fraction is relative to the location total and is 0
// (not NaN) when the location total is 0: a rupture with positive
// shaking can still produce a zero loss, and the row is kept.
// Locations are ordered by lon and lat, bins by display value.
func (lf *LossFraction) Items(rows []LossFractionData, widths BinWidths) ([]LocationFractions, error) {
	type locKey struct{ lon, lat float64 }
	byLoc := make(map[locKey]map[string]float64)
	for _, row := range rows {
		k := locKey{row.Location.Lon, row.Location.Lat}
		bins := byLoc[k]
		if bins == nil {
			bins = make(map[string]float64)
			byLoc[k] = bins
		}
		display, err := lf.DisplayValue(row.Value, widths)
		if err != nil {
			return nil, err
		}
		bins[display] += row.AbsoluteLoss
	}

	out := make([]LocationFractions, 0, len(byLoc))
	for k, bins := range byLoc {
		localTotal := 0.0
		for _, loss := range bins {
			localTotal += loss
		}
		node := LocationFractions{Location: domain.Point{Lon: k.lon, Lat: k.lat}}
		for display, loss := range bins {
			fraction := 0.0
			if localTotal > 0 {
				fraction = loss / localTotal
			}
			node.Bins = append(node.Bins, FractionBin{
				Bin:          display,
				AbsoluteLoss: loss,
				Fraction:     fraction,
			})
		}
		sort.Slice(node.Bins, func(i, j int) bool {
			return node.Bins[i].Bin < node.Bins[j].Bin
		})
		out = append(out, node)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Location.Less(out[j].Location)
	})
	return out, nil
}

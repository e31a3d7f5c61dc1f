// SPDX-License-Identifier: Apache-2.0

// Package gmpe evaluates the Bindi et al. (2014) pan-European ground
// motion prediction equations. Six variants share the same functional
// form and differ only in the distance measure (Joyner-Boore or
// hypocentral), the site amplification term (continuous vs30 or
// Eurocode 8 class) and whether a style-of-faulting term is applied.
package gmpe

import (
	"fmt"
	"math"

	"github.com/quakelab/hazrisk/internal/domain"
)

// Regression constants shared by every variant.
const (
	Mref = 5.5
	Mh   = 6.75
	Rref = 1.0
	Vref = 800.0

	// standard gravity, m/s^2
	gravity = 9.80665
)

// StdDevKind selects which standard deviation component Evaluate returns.
type StdDevKind int

const (
	StdDevTotal StdDevKind = iota
	StdDevInterEvent
	StdDevIntraEvent
)

func (k StdDevKind) String() string {
	switch k {
	case StdDevTotal:
		return "Total"
	case StdDevInterEvent:
		return "Inter event"
	case StdDevIntraEvent:
		return "Intra event"
	}
	return fmt.Sprintf("StdDevKind(%d)", int(k))
}

// DistanceKind names the source-to-site distance measure a variant needs.
type DistanceKind string

const (
	DistanceRjb  DistanceKind = "rjb"
	DistanceRhyp DistanceKind = "rhyp"
)

// SiteTermKind selects the site amplification formulation.
type SiteTermKind string

const (
	SiteTermVs30 SiteTermKind = "base"
	SiteTermEC8  SiteTermKind = "EC8"
)

// Variant is one published member of the Bindi et al. (2014) family.
type Variant struct {
	Name     string
	Distance DistanceKind
	SiteTerm SiteTermKind
	SOF      bool
	coeffs   *CoeffsTable
}

var (
	BindiEtAl2014Rjb = Variant{
		Name: "BindiEtAl2014Rjb", Distance: DistanceRjb,
		SiteTerm: SiteTermVs30, SOF: true, coeffs: &coeffsRjb,
	}
	BindiEtAl2014RjbEC8 = Variant{
		Name: "BindiEtAl2014RjbEC8", Distance: DistanceRjb,
		SiteTerm: SiteTermEC8, SOF: true, coeffs: &coeffsRjbEC8,
	}
	BindiEtAl2014RjbEC8NoSOF = Variant{
		Name: "BindiEtAl2014RjbEC8NoSOF", Distance: DistanceRjb,
		SiteTerm: SiteTermEC8, SOF: false, coeffs: &coeffsRjbEC8,
	}
	BindiEtAl2014Rhyp = Variant{
		Name: "BindiEtAl2014Rhyp", Distance: DistanceRhyp,
		SiteTerm: SiteTermVs30, SOF: true, coeffs: &coeffsRhyp,
	}
	BindiEtAl2014RhypEC8 = Variant{
		Name: "BindiEtAl2014RhypEC8", Distance: DistanceRhyp,
		SiteTerm: SiteTermEC8, SOF: true, coeffs: &coeffsRhypEC8,
	}
	BindiEtAl2014RhypEC8NoSOF = Variant{
		Name: "BindiEtAl2014RhypEC8NoSOF", Distance: DistanceRhyp,
		SiteTerm: SiteTermEC8, SOF: false, coeffs: &coeffsRhypEC8,
	}
)

var variants = map[string]Variant{
	BindiEtAl2014Rjb.Name:          BindiEtAl2014Rjb,
	BindiEtAl2014RjbEC8.Name:       BindiEtAl2014RjbEC8,
	BindiEtAl2014RjbEC8NoSOF.Name:  BindiEtAl2014RjbEC8NoSOF,
	BindiEtAl2014Rhyp.Name:         BindiEtAl2014Rhyp,
	BindiEtAl2014RhypEC8.Name:      BindiEtAl2014RhypEC8,
	BindiEtAl2014RhypEC8NoSOF.Name: BindiEtAl2014RhypEC8NoSOF,
}

// ByName returns the variant registered under name.
func ByName(name string) (Variant, error) {
	v, ok := variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("unknown GMPE %q", name)
	}
	return v, nil
}

// Coeffs holds the regression coefficients for one intensity measure
// type. Variants using the continuous site term read Gamma; the EC8
// variants read EB/EC/ED. Fields a variant does not use stay zero.
type Coeffs struct {
	E1, C1, C2, H, C3       float64
	B1, B2, B3              float64
	Gamma                   float64
	EB, EC, ED              float64
	SofN, SofR, SofS        float64
	Tau, Phi, PhiS2S, Sigma float64
}

// CoeffsTable maps intensity measure types to their coefficients. The
// published tables are fixed: lookup is exact, with no interpolation
// across spectral periods.
type CoeffsTable struct {
	rows map[string]Coeffs
}

func (t *CoeffsTable) Get(imt domain.IMT) (Coeffs, error) {
	c, ok := t.rows[imt.String()]
	if !ok {
		return Coeffs{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedIMT, imt)
	}
	return c, nil
}

// Rupture carries the rupture parameters every variant requires.
type Rupture struct {
	Mag  float64
	Rake float64
}

// Distances carries the per-site distance arrays. Only the one matching
// the variant's DistanceKind needs to be set.
type Distances struct {
	Rjb  []float64
	Rhyp []float64
}

func (d Distances) get(kind DistanceKind) ([]float64, error) {
	switch kind {
	case DistanceRjb:
		if d.Rjb == nil {
			return nil, fmt.Errorf("%w: rjb", domain.ErrMissingDistance)
		}
		return d.Rjb, nil
	case DistanceRhyp:
		if d.Rhyp == nil {
			return nil, fmt.Errorf("%w: rhyp", domain.ErrMissingDistance)
		}
		return d.Rhyp, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrMissingDistance, kind)
}

// Evaluate computes the mean ground motion and the requested standard
// deviation components for one rupture at the given sites. Means are
// natural-log intensities: fractions of g for PGA and SA, cm/s for PGV.
// Each returned stddev slice is broadcast to one value per site.
func (v Variant) Evaluate(vs30 []float64, rup Rupture, dists Distances, imt domain.IMT, kinds []StdDevKind) (mean []float64, stddevs [][]float64, err error) {
	c, err := v.coeffs.Get(imt)
	if err != nil {
		return nil, nil, err
	}
	rvals, err := dists.get(v.Distance)
	if err != nil {
		return nil, nil, err
	}
	if len(rvals) != len(vs30) {
		return nil, nil, fmt.Errorf("gmpe: %d distances for %d sites", len(rvals), len(vs30))
	}

	magTerm := magnitudeScalingTerm(c, rup.Mag)
	sofTerm := 0.0
	if v.SOF {
		sofTerm = styleOfFaultingTerm(c, rup.Rake)
	}

	mean = make([]float64, len(vs30))
	for i := range vs30 {
		imean := magTerm +
			distanceScalingTerm(c, rvals[i], rup.Mag) +
			v.siteAmplificationTerm(c, vs30[i]) +
			sofTerm
		// The regressions predict log10 of cm/s^2 (cm/s for PGV).
		if imt.Type == "PGV" {
			mean[i] = math.Log(math.Pow(10, imean))
		} else {
			mean[i] = math.Log(math.Pow(10, imean-2.0) / gravity)
		}
	}

	stddevs = make([][]float64, len(kinds))
	for j, kind := range kinds {
		var sd float64
		switch kind {
		case StdDevTotal:
			sd = c.Sigma
		case StdDevInterEvent:
			sd = c.Tau
		case StdDevIntraEvent:
			sd = c.Phi
		default:
			return nil, nil, fmt.Errorf("gmpe: unsupported stddev kind %s", kind)
		}
		sd = math.Log(math.Pow(10, sd))
		row := make([]float64, len(vs30))
		for i := range row {
			row[i] = sd
		}
		stddevs[j] = row
	}
	return mean, stddevs, nil
}

// magnitudeScalingTerm is quadratic below the hinge magnitude and
// linear from the hinge up. The boundary itself takes the linear branch.
func magnitudeScalingTerm(c Coeffs, mag float64) float64 {
	dmag := mag - Mh
	if mag < Mh {
		return c.E1 + c.B1*dmag + c.B2*dmag*dmag
	}
	return c.E1 + c.B3*dmag
}

func distanceScalingTerm(c Coeffs, rval, mag float64) float64 {
	rAdj := math.Sqrt(rval*rval + c.H*c.H)
	return (c.C1+c.C2*(mag-Mref))*math.Log10(rAdj/Rref) - c.C3*(rAdj-Rref)
}

func (v Variant) siteAmplificationTerm(c Coeffs, vs30 float64) float64 {
	if v.SiteTerm == SiteTermVs30 {
		return c.Gamma * math.Log10(vs30/Vref)
	}
	switch {
	case vs30 >= 800.0:
		return 0.0
	case vs30 >= 360.0:
		return c.EB
	case vs30 >= 180.0:
		return c.EC
	default:
		return c.ED
	}
}

// styleOfFaultingTerm classifies the rupture mechanism from the rake
// angle. Rakes within 30 degrees of horizontal are strike-slip, rakes
// between 30 and 150 are reverse, everything else is normal.
func styleOfFaultingTerm(c Coeffs, rake float64) float64 {
	switch {
	case math.Abs(rake) <= 30.0 || 180.0-math.Abs(rake) <= 30.0:
		return c.SofS
	case rake > 30.0 && rake < 150.0:
		return c.SofR
	default:
		return c.SofN
	}
}

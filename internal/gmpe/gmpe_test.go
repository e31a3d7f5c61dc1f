// SPDX-License-Identifier: Apache-2.0

package gmpe

import (
	"errors"
	"math"
	"testing"

	"github.com/quakelab/hazrisk/internal/domain"
)

func mustIMT(t *testing.T, s string) domain.IMT {
	t.Helper()
	imt, err := domain.ParseIMT(s)
	if err != nil {
		t.Fatalf("ParseIMT(%q): %v", s, err)
	}
	return imt
}

func TestEvaluatePGA(t *testing.T) {
	imt := mustIMT(t, "PGA")
	vs30 := []float64{800.0}
	dists := Distances{Rjb: []float64{20.0}}
	rup := Rupture{Mag: 6.0, Rake: 0.0}

	mean, stddevs, err := BindiEtAl2014Rjb.Evaluate(vs30, rup, dists, imt,
		[]StdDevKind{StdDevTotal, StdDevInterEvent, StdDevIntraEvent})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(mean) != 1 {
		t.Fatalf("expected 1 mean, got %d", len(mean))
	}

	c, err := coeffsRjb.Get(imt)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	dmag := rup.Mag - Mh
	rAdj := math.Sqrt(20.0*20.0 + c.H*c.H)
	imean := c.E1 + c.B1*dmag + c.B2*dmag*dmag +
		(c.C1+c.C2*(rup.Mag-Mref))*math.Log10(rAdj/Rref) - c.C3*(rAdj-Rref) +
		c.Gamma*math.Log10(800.0/Vref) +
		c.SofS
	want := math.Log(math.Pow(10, imean-2.0) / gravity)
	if math.Abs(mean[0]-want) > 1e-12 {
		t.Fatalf("mean = %v, want %v", mean[0], want)
	}

	wantSDs := []float64{c.Sigma, c.Tau, c.Phi}
	for j, row := range stddevs {
		if len(row) != 1 {
			t.Fatalf("stddev %d has %d values, want 1", j, len(row))
		}
		want := math.Log(math.Pow(10, wantSDs[j]))
		if math.Abs(row[0]-want) > 1e-12 {
			t.Fatalf("stddev %d = %v, want %v", j, row[0], want)
		}
	}
}

func TestEvaluatePGVSkipsUnitConversion(t *testing.T) {
	imt := mustIMT(t, "PGV")
	vs30 := []float64{400.0}
	dists := Distances{Rjb: []float64{10.0}}

	mean, _, err := BindiEtAl2014RjbEC8NoSOF.Evaluate(vs30, Rupture{Mag: 5.0}, dists, imt, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	c, _ := coeffsRjbEC8.Get(imt)
	dmag := 5.0 - Mh
	rAdj := math.Sqrt(10.0*10.0 + c.H*c.H)
	imean := c.E1 + c.B1*dmag + c.B2*dmag*dmag +
		(c.C1+c.C2*(5.0-Mref))*math.Log10(rAdj/Rref) - c.C3*(rAdj-Rref) +
		c.EB
	want := math.Log(math.Pow(10, imean))
	if math.Abs(mean[0]-want) > 1e-12 {
		t.Fatalf("mean = %v, want %v", mean[0], want)
	}
}

func TestMagnitudeScalingHinge(t *testing.T) {
	c := Coeffs{E1: 3.0, B1: 0.2, B2: -0.1, B3: 0.4}

	// Both branches meet at the hinge, where dmag is zero.
	if got := magnitudeScalingTerm(c, Mh); got != c.E1 {
		t.Fatalf("term at hinge = %v, want %v", got, c.E1)
	}
	// Below the hinge the quadratic branch applies.
	below := magnitudeScalingTerm(c, Mh-0.5)
	if want := c.E1 + c.B1*(-0.5) + c.B2*0.25; math.Abs(below-want) > 1e-15 {
		t.Fatalf("term below hinge = %v, want %v", below, want)
	}
	// At and above the hinge the linear branch applies.
	above := magnitudeScalingTerm(c, Mh+0.5)
	if want := c.E1 + c.B3*0.5; math.Abs(above-want) > 1e-15 {
		t.Fatalf("term above hinge = %v, want %v", above, want)
	}
}

func TestStyleOfFaultingClassification(t *testing.T) {
	c := Coeffs{SofN: 1.0, SofR: 2.0, SofS: 3.0}
	cases := []struct {
		rake float64
		want float64
	}{
		{0.0, c.SofS},
		{30.0, c.SofS},   // boundary is strike-slip
		{-30.0, c.SofS},
		{150.0, c.SofS},  // within 30 of horizontal
		{-150.0, c.SofS},
		{180.0, c.SofS},
		{149.9, c.SofR},
		{90.0, c.SofR},
		{30.1, c.SofR},
		{-90.0, c.SofN},
		{-60.0, c.SofN},
		{-149.9, c.SofN},
	}
	for _, tc := range cases {
		if got := styleOfFaultingTerm(c, tc.rake); got != tc.want {
			t.Fatalf("rake %v classified as %v, want %v", tc.rake, got, tc.want)
		}
	}
}

func TestEC8SiteClasses(t *testing.T) {
	c := Coeffs{EB: 0.1, EC: 0.2, ED: 0.3}
	v := BindiEtAl2014RjbEC8
	cases := []struct {
		vs30 float64
		want float64
	}{
		{1200.0, 0.0},
		{800.0, 0.0},
		{799.9, c.EB},
		{360.0, c.EB},
		{359.9, c.EC},
		{180.0, c.EC},
		{179.9, c.ED},
		{100.0, c.ED},
	}
	for _, tc := range cases {
		if got := v.siteAmplificationTerm(c, tc.vs30); got != tc.want {
			t.Fatalf("vs30 %v amplification = %v, want %v", tc.vs30, got, tc.want)
		}
	}
}

func TestContinuousSiteTerm(t *testing.T) {
	c := Coeffs{Gamma: -0.3}
	v := BindiEtAl2014Rjb
	if got := v.siteAmplificationTerm(c, 800.0); got != 0.0 {
		t.Fatalf("amplification at vref = %v, want 0", got)
	}
	want := -0.3 * math.Log10(400.0/800.0)
	if got := v.siteAmplificationTerm(c, 400.0); math.Abs(got-want) > 1e-15 {
		t.Fatalf("amplification = %v, want %v", got, want)
	}
}

func TestEvaluateUnsupportedIMT(t *testing.T) {
	imt := mustIMT(t, "SA(0.123)")
	_, _, err := BindiEtAl2014Rjb.Evaluate([]float64{800}, Rupture{Mag: 6}, Distances{Rjb: []float64{10}}, imt, nil)
	if !errors.Is(err, domain.ErrUnsupportedIMT) {
		t.Fatalf("expected ErrUnsupportedIMT, got %v", err)
	}
}

func TestEvaluateMissingDistance(t *testing.T) {
	imt := mustIMT(t, "PGA")
	_, _, err := BindiEtAl2014Rhyp.Evaluate([]float64{800}, Rupture{Mag: 6}, Distances{Rjb: []float64{10}}, imt, nil)
	if !errors.Is(err, domain.ErrMissingDistance) {
		t.Fatalf("expected ErrMissingDistance, got %v", err)
	}
}

func TestHypocentralVariantUsesRhyp(t *testing.T) {
	imt := mustIMT(t, "PGA")
	dists := Distances{Rjb: []float64{5.0}, Rhyp: []float64{50.0}}
	farther, _, err := BindiEtAl2014Rhyp.Evaluate([]float64{800}, Rupture{Mag: 6}, dists, imt, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	nearer, _, err := BindiEtAl2014Rhyp.Evaluate([]float64{800}, Rupture{Mag: 6}, Distances{Rhyp: []float64{5.0}}, imt, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if farther[0] >= nearer[0] {
		t.Fatalf("mean at 50km (%v) not below mean at 5km (%v)", farther[0], nearer[0])
	}
}

func TestByName(t *testing.T) {
	v, err := ByName("BindiEtAl2014RhypEC8NoSOF")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if v.Distance != DistanceRhyp || v.SiteTerm != SiteTermEC8 || v.SOF {
		t.Fatalf("unexpected variant: %+v", v)
	}
	if _, err := ByName("AbrahamsonSilva2008"); err == nil {
		t.Fatal("expected error for unknown GMPE")
	}
}

func TestCoefficientTablesCoverPGAAndPGV(t *testing.T) {
	for _, tbl := range []*CoeffsTable{&coeffsRjb, &coeffsRjbEC8, &coeffsRhyp, &coeffsRhypEC8} {
		for _, s := range []string{"PGA", "PGV", "SA(0.1)", "SA(3)"} {
			if _, err := tbl.Get(mustIMT(t, s)); err != nil {
				t.Fatalf("%s missing from table: %v", s, err)
			}
		}
	}
}

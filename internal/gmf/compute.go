// SPDX-License-Identifier: Apache-2.0

package gmf

import (
	"math"
	"math/rand"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/eventset"
	"github.com/quakelab/hazrisk/internal/gmpe"
)

const earthRadiusKm = 6371.0

func haversineKm(a, b domain.Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dlat := lat2 - lat1
	dlon := (b.Lon - a.Lon) * math.Pi / 180
	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// ruptureDistances computes both supported distance measures for every
// site: hypocentral distance from the hypocenter, and Joyner-Boore
// distance approximated as the minimum horizontal distance to the
// surface projection of the rupture geometry.
func ruptureDistances(rup *eventset.Rupture, sites *domain.SiteCollection) gmpe.Distances {
	n := sites.Len()
	d := gmpe.Distances{
		Rjb:  make([]float64, n),
		Rhyp: make([]float64, n),
	}
	hypo := domain.Point{Lon: rup.Hypocenter.Lon, Lat: rup.Hypocenter.Lat}
	for i, site := range sites.Sites {
		repi := haversineKm(hypo, site.Location)
		d.Rhyp[i] = math.Sqrt(repi*repi + rup.Hypocenter.Depth*rup.Hypocenter.Depth)

		min := math.Inf(1)
		for j := range rup.Lons {
			dist := haversineKm(domain.Point{Lon: rup.Lons[j], Lat: rup.Lats[j]}, site.Location)
			if dist < min {
				min = dist
			}
		}
		if math.IsInf(min, 1) {
			min = repi
		}
		d.Rjb[i] = min
	}
	return d
}

// sampler draws the inter- and intra-event residuals for one rupture
// occurrence. A nil truncation level means an untruncated normal; a
// zero level suppresses the residuals entirely, yielding median fields.
type sampler struct {
	rng        *rand.Rand
	truncation *float64
}

func newSampler(seed int64, truncation *float64) *sampler {
	return &sampler{
		rng:        rand.New(rand.NewSource(seed)),
		truncation: truncation,
	}
}

func (s *sampler) draw() float64 {
	if s.truncation == nil {
		return s.rng.NormFloat64()
	}
	t := *s.truncation
	if t == 0 {
		return 0
	}
	// Truncated standard normal via inverse-CDF sampling on the
	// truncated interval.
	lo := stdNormCDF(-t)
	hi := stdNormCDF(t)
	u := lo + s.rng.Float64()*(hi-lo)
	return stdNormInv(u)
}

func stdNormCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

func stdNormInv(p float64) float64 {
	return -math.Sqrt2 * math.Erfinv(1-2*p)
}

// computeField evaluates one (rupture occurrence, IMT) pair over the
// sites. The sampler is seeded once per occurrence and shared across
// the occurrence's IMTs, which are walked in sorted order, so the
// drawn residuals are reproducible.
func computeField(v gmpe.Variant, rup *eventset.Rupture, er eventset.EventRupture,
	sites *domain.SiteCollection, dists gmpe.Distances, imt domain.IMT,
	s *sampler, correl CorrelationModel) (Field, error) {

	mean, stddevs, err := v.Evaluate(sites.Vs30s(), gmpe.Rupture{Mag: rup.Magnitude, Rake: rup.Rake},
		dists, imt, []gmpe.StdDevKind{gmpe.StdDevInterEvent, gmpe.StdDevIntraEvent})
	if err != nil {
		return Field{}, err
	}
	tau, phi := stddevs[0], stddevs[1]

	epsInter := s.draw()
	intra := make([]float64, sites.Len())
	for i := range intra {
		intra[i] = s.draw()
	}
	if correl != nil {
		intra = correl.Correlate(er.Seed, sites, intra)
	}

	f := Field{IMT: imt, RuptureTag: er.Tag, Nodes: make([]Node, sites.Len())}
	for i, site := range sites.Sites {
		gmv := math.Exp(mean[i] + tau[i]*epsInter + phi[i]*intra[i])
		f.Nodes[i] = Node{GMV: gmv, Location: site.Location}
	}
	f.SortNodes()
	return f, nil
}

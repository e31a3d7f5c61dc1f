// SPDX-License-Identifier: Apache-2.0

package domain

import "fmt"

// Point is a geographic location in WGS84 coordinates.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func (p Point) String() string {
	return fmt.Sprintf("POINT(%g %g)", p.Lon, p.Lat)
}

// Less orders points by longitude, then latitude. All ordered exports
// (asset chunks, GMF nodes, hazard curves) rely on this ordering for
// reproducibility.
func (p Point) Less(other Point) bool {
	if p.Lon != other.Lon {
		return p.Lon < other.Lon
	}
	return p.Lat < other.Lat
}

// Site is a hazard calculation point with its site parameters.
type Site struct {
	ID       int64
	Location Point
	Vs30     float64
	Z1pt0    float64
	Z2pt5    float64
}

// SiteCollection is an ordered set of sites sharing one calculation.
type SiteCollection struct {
	Sites []Site
}

func (sc *SiteCollection) Len() int {
	return len(sc.Sites)
}

// Vs30s returns the vs30 values in site order.
func (sc *SiteCollection) Vs30s() []float64 {
	out := make([]float64, len(sc.Sites))
	for i, s := range sc.Sites {
		out[i] = s.Vs30
	}
	return out
}

// Filtered returns the subset of the collection selected by indices,
// preserving order. A nil index slice returns the collection itself:
// a rupture without a site restriction affects every site.
func (sc *SiteCollection) Filtered(indices []int) *SiteCollection {
	if indices == nil {
		return sc
	}
	sites := make([]Site, 0, len(indices))
	for _, idx := range indices {
		sites = append(sites, sc.Sites[idx])
	}
	return &SiteCollection{Sites: sites}
}

// SPDX-License-Identifier: Apache-2.0

package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// IMT identifies an intensity measure type. SA carries a spectral period
// and damping; all other types leave them zero.
type IMT struct {
	Type      string
	SAPeriod  float64
	SADamping float64
}

const DefaultSADamping = 5.0

// ParseIMT parses strings of the form "PGA", "PGV" or "SA(0.1)".
func ParseIMT(s string) (IMT, error) {
	s = strings.TrimSpace(s)
	if open := strings.IndexByte(s, '('); open >= 0 {
		if !strings.HasSuffix(s, ")") {
			return IMT{}, fmt.Errorf("%w: %q", ErrUnsupportedIMT, s)
		}
		name := s[:open]
		if name != "SA" {
			return IMT{}, fmt.Errorf("%w: %q", ErrUnsupportedIMT, s)
		}
		period, err := strconv.ParseFloat(s[open+1:len(s)-1], 64)
		if err != nil {
			return IMT{}, fmt.Errorf("%w: %q", ErrUnsupportedIMT, s)
		}
		return IMT{Type: "SA", SAPeriod: period, SADamping: DefaultSADamping}, nil
	}

	switch s {
	case "PGA", "PGV", "PGD", "IA", "RSD", "MMI":
		return IMT{Type: s}, nil
	}
	return IMT{}, fmt.Errorf("%w: %q", ErrUnsupportedIMT, s)
}

func (imt IMT) String() string {
	if imt.Type == "SA" {
		return fmt.Sprintf("SA(%g)", imt.SAPeriod)
	}
	return imt.Type
}

// SortIMTs sorts intensity measure types by their string form. Hazard
// curves derived from ground motion fields are reproducible only if the
// IMTs are always walked in this order.
func SortIMTs(imts []IMT) []IMT {
	out := make([]IMT, len(imts))
	copy(out, imts)
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

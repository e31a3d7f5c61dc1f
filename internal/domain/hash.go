// SPDX-License-Identifier: Apache-2.0

package domain

import (
	"fmt"
	"strings"
)

// HazardMetadata describes the hazard side of a risk result: the
// investigation time, the statistics kind (with quantile, when
// relevant) and the logic tree paths of the underlying realization.
type HazardMetadata struct {
	InvestigationTime *float64
	Statistics        StatKind
	Quantile          *float64
	SMPath            []string
	GSIMPath          []string
}

func (m HazardMetadata) fields() []string {
	return []string{
		floatField(m.InvestigationTime),
		string(m.Statistics),
		floatField(m.Quantile),
		strings.Join(m.SMPath, "_"),
		strings.Join(m.GSIMPath, "_"),
	}
}

// Hash is an ordered tuple identifying a result independently of
// database-assigned ids and insertion order. Two results produced by
// independent runs of the same calculation hash equal.
type Hash []string

func (h Hash) Equal(other Hash) bool {
	if len(h) != len(other) {
		return false
	}
	for i := range h {
		if h[i] != other[i] {
			return false
		}
	}
	return true
}

func (h Hash) String() string {
	return strings.Join(h, "|")
}

// Append returns a new hash extending h with extra fields; used to
// derive a row-level data hash from an output-level hash.
func (h Hash) Append(fields ...string) Hash {
	out := make(Hash, 0, len(h)+len(fields))
	out = append(out, h...)
	out = append(out, fields...)
	return out
}

// NewOutputHash builds the common prefix of every output hash:
// the output type followed by the hazard metadata fields.
func NewOutputHash(outputType string, meta HazardMetadata, fields ...string) Hash {
	h := make(Hash, 0, 1+5+len(fields))
	h = append(h, outputType)
	h = append(h, meta.fields()...)
	h = append(h, fields...)
	return h
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g", *v)
}

// BoolField renders a boolean hash field.
func BoolField(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// FloatField renders an optional float hash field.
func FloatField(v *float64) string {
	return floatField(v)
}

// CoordField renders a coordinate with the fixed precision used in
// location-keyed data hashes.
func CoordField(v float64) string {
	return fmt.Sprintf("%.5f", v)
}

// SPDX-License-Identifier: Apache-2.0

package worker

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// UnitKind names the computation a calculation unit performs.
type UnitKind string

const (
	// UnitGroundMotionFields reconstructs ground motion fields for one
	// logic-tree realization from the stored ruptures.
	UnitGroundMotionFields UnitKind = "gmf"

	// UnitHazardCurveStats computes mean and quantile hazard curves
	// across realizations.
	UnitHazardCurveStats UnitKind = "hazard_curve_stats"
)

// Unit is a single schedulable slice of a calculation job.
type Unit struct {
	ID      uuid.UUID
	Kind    UnitKind
	Payload json.RawMessage
}

type UnitExecutor interface {
	Execute(ctx context.Context, jobID uuid.UUID, payload json.RawMessage) error
}

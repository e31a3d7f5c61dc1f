// SPDX-License-Identifier: Apache-2.0

// Package job holds calculation jobs, their parameters and the output
// records every persisted result hangs off.
package job

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusRunning  Status = "running"
	StatusComplete Status = "complete"
	StatusFailed   Status = "failed"
)

// Calculation modes. The risk modes determine which hazard outputs a
// risk job consumes.
const (
	ModeEventBased     = "event_based"
	ModeClassical      = "classical"
	ModeScenario       = "scenario"
	ModeEventBasedRisk = "event_based_risk"
	ModeClassicalRisk  = "classical_risk"
	ModeScenarioRisk   = "scenario_risk"
	ModeScenarioDamage = "scenario_damage"
	ModeEventBasedBCR  = "event_based_bcr"
	ModeClassicalBCR   = "classical_bcr"
)

// Job is one hazard or risk calculation. A risk job points either at
// a single hazard output or at a whole hazard job whose outputs are
// filtered by calculation mode.
type Job struct {
	ID              uuid.UUID
	Description     string
	CalculationMode string
	Status          Status
	HazardOutputID  *uuid.UUID
	HazardJobID     *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Output is one persisted result of a job. The result container rows
// (hazard curves, gmfs, loss curves, ...) reference their output; the
// output never references the container.
type Output struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	OutputType  string
	DisplayName string
	CreatedAt   time.Time
}

// Output types of the hazard side.
const (
	OutputHazardCurve = "hazard_curve"
	OutputGMF         = "gmf"
	OutputGMFScenario = "gmf_scenario"
	OutputSES         = "ses"
)

func (o Output) IsHazardCurve() bool {
	return o.OutputType == OutputHazardCurve
}

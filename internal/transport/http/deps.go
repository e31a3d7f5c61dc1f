// SPDX-License-Identifier: Apache-2.0

package httptransport

import (
	"context"

	"github.com/google/uuid"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/gmf"
	"github.com/quakelab/hazrisk/internal/hazard"
	"github.com/quakelab/hazrisk/internal/job"
)

type JobReader interface {
	GetJob(ctx context.Context, id uuid.UUID) (*job.Job, error)
	AllParams(ctx context.Context, jobID uuid.UUID) (map[string]string, error)
}

type OutputReader interface {
	GetOutput(ctx context.Context, id uuid.UUID) (*job.Output, error)
	OutputsForJob(ctx context.Context, jobID uuid.UUID) ([]job.Output, error)
	HazardOutputs(ctx context.Context, j *job.Job) ([]job.Output, error)
	HazardMetadata(ctx context.Context, hazardOutputID uuid.UUID) (domain.HazardMetadata, error)
}

type CurveExporter interface {
	CurveForOutput(ctx context.Context, outputID uuid.UUID) (hazard.Curve, error)
	CurveChunk(ctx context.Context, curveID int64, offset, limit int) ([]hazard.CurveData, error)
}

type GMFExporter interface {
	FieldsForOutputSet(ctx context.Context, outputID uuid.UUID, sesOrdinal int) ([]gmf.Field, error)
}

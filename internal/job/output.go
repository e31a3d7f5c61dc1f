// SPDX-License-Identifier: Apache-2.0

package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/metrics"
)

type OutputRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOutputRepository(pool *pgxpool.Pool, logger *slog.Logger) *OutputRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &OutputRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *OutputRepository) CreateOutput(ctx context.Context, o *Output) error {
	o.ID = uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO outputs (id, job_id, output_type, display_name)
		 VALUES ($1, $2, $3, $4)`,
		o.ID, o.JobID, o.OutputType, o.DisplayName,
	)
	if err != nil {
		r.logger.Error("insert output failed",
			"job_id", o.JobID,
			"output_type", o.OutputType,
			"error", err,
		)
		return err
	}
	metrics.IncOutput(o.OutputType)
	return nil
}

func (r *OutputRepository) GetOutput(ctx context.Context, id uuid.UUID) (*Output, error) {
	var o Output
	err := r.pool.QueryRow(ctx,
		`SELECT id, job_id, output_type, display_name, created_at
		 FROM outputs
		 WHERE id=$1`,
		id,
	).Scan(&o.ID, &o.JobID, &o.OutputType, &o.DisplayName, &o.CreatedAt)
	if err != nil {
		r.logger.Error("get output failed", "output_id", id, "error", err)
		return nil, err
	}
	return &o, nil
}

func (r *OutputRepository) OutputsForJob(ctx context.Context, jobID uuid.UUID) ([]Output, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, job_id, output_type, display_name, created_at
		 FROM outputs
		 WHERE job_id=$1
		 ORDER BY created_at, id`,
		jobID,
	)
	if err != nil {
		r.logger.Error("list outputs failed", "job_id", jobID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []Output
	for rows.Next() {
		var o Output
		if err := rows.Scan(&o.ID, &o.JobID, &o.OutputType, &o.DisplayName, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// HazardOutputs resolves the hazard outputs a risk job consumes: the
// directly configured output when present, otherwise the outputs of
// the configured hazard job filtered by calculation mode. A job with
// neither is ErrNoHazardOutput.
func (r *OutputRepository) HazardOutputs(ctx context.Context, j *Job) ([]Output, error) {
	if j.HazardOutputID != nil {
		o, err := r.GetOutput(ctx, *j.HazardOutputID)
		if err != nil {
			return nil, err
		}
		return []Output{*o}, nil
	}
	if j.HazardJobID == nil {
		return nil, domain.ErrNoHazardOutput
	}

	var query string
	switch j.CalculationMode {
	case ModeClassicalRisk, ModeClassicalBCR:
		query = `SELECT o.id, o.job_id, o.output_type, o.display_name, o.created_at
		         FROM outputs o
		         JOIN hazard_curves hc ON hc.output_id = o.id
		         WHERE o.job_id=$1 AND o.output_type='hazard_curve'
		               AND hc.lt_realization_id IS NOT NULL
		         ORDER BY o.created_at, o.id`
	case ModeEventBasedRisk, ModeEventBasedBCR:
		query = `SELECT o.id, o.job_id, o.output_type, o.display_name, o.created_at
		         FROM outputs o
		         JOIN gmfs g ON g.output_id = o.id
		         WHERE o.job_id=$1 AND o.output_type='gmf'
		               AND g.lt_realization_id IS NOT NULL
		         ORDER BY o.created_at, o.id`
	case ModeScenarioRisk, ModeScenarioDamage:
		query = `SELECT id, job_id, output_type, display_name, created_at
		         FROM outputs
		         WHERE job_id=$1 AND output_type='gmf_scenario'
		         ORDER BY created_at, id`
	default:
		return nil, fmt.Errorf("no hazard output filter for calculation mode %q", j.CalculationMode)
	}

	rows, err := r.pool.Query(ctx, query, *j.HazardJobID)
	if err != nil {
		r.logger.Error("list hazard outputs failed", "hazard_job_id", *j.HazardJobID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []Output
	for rows.Next() {
		var o Output
		if err := rows.Scan(&o.ID, &o.JobID, &o.OutputType, &o.DisplayName, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// HazardMetadata resolves the hazard metadata of one hazard output:
// the investigation time, the statistics kind and the logic tree paths
// of the realization behind its result container.
func (r *OutputRepository) HazardMetadata(ctx context.Context, hazardOutputID uuid.UUID) (domain.HazardMetadata, error) {
	o, err := r.GetOutput(ctx, hazardOutputID)
	if err != nil {
		return domain.HazardMetadata{}, err
	}

	var meta domain.HazardMetadata
	var rlzID *int64

	switch o.OutputType {
	case OutputHazardCurve:
		var stats *string
		err := r.pool.QueryRow(ctx,
			`SELECT investigation_time, statistics, quantile, lt_realization_id
			 FROM hazard_curves
			 WHERE output_id=$1`,
			hazardOutputID,
		).Scan(&meta.InvestigationTime, &stats, &meta.Quantile, &rlzID)
		if err != nil {
			r.logger.Error("get hazard curve container failed", "output_id", hazardOutputID, "error", err)
			return domain.HazardMetadata{}, err
		}
		if stats != nil {
			meta.Statistics = domain.StatKind(*stats)
		}
	case OutputGMF, OutputGMFScenario:
		err := r.pool.QueryRow(ctx,
			`SELECT g.lt_realization_id, jp.value::float8
			 FROM gmfs g
			 LEFT JOIN job_params jp ON jp.job_id=$2 AND jp.name='investigation_time'
			 WHERE g.output_id=$1`,
			hazardOutputID, o.JobID,
		).Scan(&rlzID, &meta.InvestigationTime)
		if err != nil {
			r.logger.Error("get gmf container failed", "output_id", hazardOutputID, "error", err)
			return domain.HazardMetadata{}, err
		}
	default:
		return domain.HazardMetadata{}, fmt.Errorf("unexpected hazard output type %q", o.OutputType)
	}

	if rlzID != nil {
		err := r.pool.QueryRow(ctx,
			`SELECT sm.sm_lt_path, rlz.gsim_lt_path
			 FROM lt_realizations rlz
			 JOIN lt_source_models sm ON sm.id = rlz.lt_model_id
			 WHERE rlz.id=$1`,
			*rlzID,
		).Scan(&meta.SMPath, &meta.GSIMPath)
		if err != nil {
			r.logger.Error("get realization paths failed", "lt_realization_id", *rlzID, "error", err)
			return domain.HazardMetadata{}, err
		}
	}
	return meta, nil
}

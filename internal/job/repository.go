// SPDX-License-Identifier: Apache-2.0

package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/metrics"
)

type Repository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRepository(pool *pgxpool.Pool, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		pool:   pool,
		logger: logger,
	}
}

func (r *Repository) CreateJob(ctx context.Context, j *Job) error {
	j.ID = uuid.New()
	j.Status = StatusPending

	_, err := r.pool.Exec(ctx,
		`INSERT INTO jobs (id, description, calculation_mode, status, hazard_output_id, hazard_job_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		j.ID, j.Description, j.CalculationMode, j.Status, j.HazardOutputID, j.HazardJobID,
	)
	if err != nil {
		r.logger.Error("insert job failed", "job_id", j.ID, "error", err)
		return err
	}
	r.logger.Info("job created", "job_id", j.ID, "calculation_mode", j.CalculationMode)
	return nil
}

func (r *Repository) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	var j Job
	err := r.pool.QueryRow(ctx,
		`SELECT id, description, calculation_mode, status, hazard_output_id, hazard_job_id,
		        created_at, updated_at
		 FROM jobs
		 WHERE id=$1`,
		id,
	).Scan(&j.ID, &j.Description, &j.CalculationMode, &j.Status,
		&j.HazardOutputID, &j.HazardJobID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		r.logger.Error("get job failed", "job_id", id, "error", err)
		return nil, err
	}
	return &j, nil
}

func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE jobs SET status=$2, updated_at=NOW() WHERE id=$1`,
		id, status,
	)
	if err != nil {
		r.logger.Error("update job status failed", "job_id", id, "status", status, "error", err)
		return err
	}
	metrics.IncJobStatus(string(status))
	return nil
}

// SaveParams writes the given job parameters in one transaction.
func (r *Repository) SaveParams(ctx context.Context, jobID uuid.UUID, params map[string]string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	for name, value := range params {
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_params (job_id, name, value) VALUES ($1, $2, $3)`,
			jobID, name, value,
		); err != nil {
			r.logger.Error("insert job param failed", "job_id", jobID, "name", name, "error", err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "job_id", jobID, "error", err)
		return err
	}
	return nil
}

// GetParam returns the value of a job parameter; a missing parameter
// is ErrMissingParameter, never a silent default.
func (r *Repository) GetParam(ctx context.Context, jobID uuid.UUID, name string) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM job_params WHERE job_id=$1 AND name=$2`,
		jobID, name,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingParameter, name)
	}
	if err != nil {
		r.logger.Error("get job param failed", "job_id", jobID, "name", name, "error", err)
		return "", err
	}
	return value, nil
}

// GetParamOr returns the value of a job parameter or the explicit
// fallback when the parameter is absent.
func (r *Repository) GetParamOr(ctx context.Context, jobID uuid.UUID, name, fallback string) (string, error) {
	value, err := r.GetParam(ctx, jobID, name)
	if errors.Is(err, domain.ErrMissingParameter) {
		return fallback, nil
	}
	return value, err
}

// AllParams returns every parameter of the job as a name/value map.
func (r *Repository) AllParams(ctx context.Context, jobID uuid.UUID) (map[string]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, value FROM job_params WHERE job_id=$1`,
		jobID,
	)
	if err != nil {
		r.logger.Error("list job params failed", "job_id", jobID, "error", err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		out[name] = value
	}
	return out, rows.Err()
}

// SPDX-License-Identifier: Apache-2.0

package logictree

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
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

func (r *Repository) CreateSourceModel(ctx context.Context, sm *SourceModel) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO lt_source_models (job_id, ordinal, name, sm_lt_path, weight)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		sm.JobID, sm.Ordinal, sm.Name, sm.Path, sm.Weight,
	).Scan(&sm.ID)
	if err != nil {
		r.logger.Error("insert source model failed", "job_id", sm.JobID, "error", err)
		return err
	}
	return nil
}

func (r *Repository) CreateTrtModel(ctx context.Context, tm *TrtModel) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO trt_models
		   (lt_model_id, tectonic_region_type, num_sources, num_ruptures, min_mag, max_mag, gsims)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		tm.SourceModelID, tm.TectonicRegionType, tm.NumSources,
		tm.NumRuptures, tm.MinMag, tm.MaxMag, tm.GSIMs,
	).Scan(&tm.ID)
	if err != nil {
		r.logger.Error("insert trt model failed",
			"lt_model_id", tm.SourceModelID,
			"trt", tm.TectonicRegionType,
			"error", err,
		)
		return err
	}
	return nil
}

// CreateRealizations persists the realizations and their gsim
// associations in one transaction. Realization IDs are filled in on the
// passed slice.
func (r *Repository) CreateRealizations(ctx context.Context, rlzs []Realization, sets []BranchSet) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	for i := range rlzs {
		if err := tx.QueryRow(ctx,
			`INSERT INTO lt_realizations (lt_model_id, ordinal, weight, gsim_lt_path)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			rlzs[i].SourceModelID, rlzs[i].Ordinal, rlzs[i].Weight, rlzs[i].GSIMPath,
		).Scan(&rlzs[i].ID); err != nil {
			r.logger.Error("insert realization failed",
				"lt_model_id", rlzs[i].SourceModelID,
				"ordinal", rlzs[i].Ordinal,
				"error", err,
			)
			return err
		}
		for j, set := range sets {
			if _, err := tx.Exec(ctx,
				`INSERT INTO assoc_lt_rlz_trt_models (rlz_id, trt_model_id, gsim)
				 VALUES ($1, $2, $3)`,
				rlzs[i].ID, set.TrtModelID, rlzs[i].GSIMPath[j],
			); err != nil {
				r.logger.Error("insert assoc failed",
					"rlz_id", rlzs[i].ID,
					"trt_model_id", set.TrtModelID,
					"error", err,
				)
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "error", err)
		return err
	}
	r.logger.Info("realizations created", "count", len(rlzs))
	return nil
}

func (r *Repository) SourceModelsForJob(ctx context.Context, jobID uuid.UUID) ([]SourceModel, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, job_id, ordinal, name, sm_lt_path, weight
		 FROM lt_source_models
		 WHERE job_id=$1
		 ORDER BY ordinal`,
		jobID,
	)
	if err != nil {
		r.logger.Error("list source models failed", "job_id", jobID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var models []SourceModel
	for rows.Next() {
		var sm SourceModel
		if err := rows.Scan(&sm.ID, &sm.JobID, &sm.Ordinal, &sm.Name, &sm.Path, &sm.Weight); err != nil {
			return nil, err
		}
		models = append(models, sm)
	}
	return models, rows.Err()
}

func (r *Repository) TrtModelsForSourceModel(ctx context.Context, smID int64) ([]TrtModel, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, lt_model_id, tectonic_region_type, num_sources, num_ruptures, min_mag, max_mag, gsims
		 FROM trt_models
		 WHERE lt_model_id=$1
		 ORDER BY id`,
		smID,
	)
	if err != nil {
		r.logger.Error("list trt models failed", "lt_model_id", smID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var models []TrtModel
	for rows.Next() {
		var tm TrtModel
		if err := rows.Scan(&tm.ID, &tm.SourceModelID, &tm.TectonicRegionType,
			&tm.NumSources, &tm.NumRuptures, &tm.MinMag, &tm.MaxMag, &tm.GSIMs); err != nil {
			return nil, err
		}
		models = append(models, tm)
	}
	return models, rows.Err()
}

func (r *Repository) RealizationsForSourceModel(ctx context.Context, smID int64) ([]Realization, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, lt_model_id, ordinal, weight, gsim_lt_path
		 FROM lt_realizations
		 WHERE lt_model_id=$1
		 ORDER BY ordinal`,
		smID,
	)
	if err != nil {
		r.logger.Error("list realizations failed", "lt_model_id", smID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var rlzs []Realization
	for rows.Next() {
		var rlz Realization
		if err := rows.Scan(&rlz.ID, &rlz.SourceModelID, &rlz.Ordinal, &rlz.Weight, &rlz.GSIMPath); err != nil {
			return nil, err
		}
		rlzs = append(rlzs, rlz)
	}
	return rlzs, rows.Err()
}

func (r *Repository) AssocsForRealization(ctx context.Context, rlzID int64) ([]Assoc, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, rlz_id, trt_model_id, gsim
		 FROM assoc_lt_rlz_trt_models
		 WHERE rlz_id=$1
		 ORDER BY id`,
		rlzID,
	)
	if err != nil {
		r.logger.Error("list assocs failed", "rlz_id", rlzID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var assocs []Assoc
	for rows.Next() {
		var a Assoc
		if err := rows.Scan(&a.ID, &a.RealizationID, &a.TrtModelID, &a.GSIM); err != nil {
			return nil, err
		}
		assocs = append(assocs, a)
	}
	return assocs, rows.Err()
}

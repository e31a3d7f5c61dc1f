// SPDX-License-Identifier: Apache-2.0

package eventset

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

func (r *Repository) CreateCollection(ctx context.Context, c *Collection) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO ses_collections (output_id, lt_model_id, ordinal)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		c.OutputID, c.SourceModelID, c.Ordinal,
	).Scan(&c.ID)
	if err != nil {
		r.logger.Error("insert ses collection failed", "output_id", c.OutputID, "error", err)
		return err
	}
	return nil
}

func (r *Repository) CollectionsForJob(ctx context.Context, jobID uuid.UUID) ([]Collection, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT sc.id, sc.output_id, sc.lt_model_id, sc.ordinal
		 FROM ses_collections sc
		 JOIN outputs o ON o.id = sc.output_id
		 WHERE o.job_id=$1
		 ORDER BY sc.ordinal`,
		jobID,
	)
	if err != nil {
		r.logger.Error("list ses collections failed", "job_id", jobID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var cols []Collection
	for rows.Next() {
		var c Collection
		if err := rows.Scan(&c.ID, &c.OutputID, &c.SourceModelID, &c.Ordinal); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

func (r *Repository) CollectionForSourceModel(ctx context.Context, smID int64) (Collection, error) {
	var c Collection
	err := r.pool.QueryRow(ctx,
		`SELECT id, output_id, lt_model_id, ordinal
		 FROM ses_collections
		 WHERE lt_model_id=$1`,
		smID,
	).Scan(&c.ID, &c.OutputID, &c.SourceModelID, &c.Ordinal)
	if err != nil {
		r.logger.Error("get ses collection failed", "lt_model_id", smID, "error", err)
		return Collection{}, err
	}
	return c, nil
}

func (r *Repository) CreateRupture(ctx context.Context, rup *Rupture) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO ruptures
		   (ses_collection_id, trt_model_id, magnitude, rake,
		    hypo_lon, hypo_lat, hypo_depth, surface_kind,
		    lons, lats, depths, site_indices)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		rup.CollectionID, rup.TrtModelID, rup.Magnitude, rup.Rake,
		rup.Hypocenter.Lon, rup.Hypocenter.Lat, rup.Hypocenter.Depth, rup.Surface,
		rup.Lons, rup.Lats, rup.Depths, rup.SiteIndices,
	).Scan(&rup.ID)
	if err != nil {
		r.logger.Error("insert rupture failed",
			"ses_collection_id", rup.CollectionID,
			"error", err,
		)
		return err
	}
	return nil
}

func (r *Repository) GetRupture(ctx context.Context, id int64) (Rupture, error) {
	var rup Rupture
	err := r.pool.QueryRow(ctx,
		`SELECT id, ses_collection_id, trt_model_id, magnitude, rake,
		        hypo_lon, hypo_lat, hypo_depth, surface_kind,
		        lons, lats, depths, site_indices
		 FROM ruptures
		 WHERE id=$1`,
		id,
	).Scan(&rup.ID, &rup.CollectionID, &rup.TrtModelID, &rup.Magnitude, &rup.Rake,
		&rup.Hypocenter.Lon, &rup.Hypocenter.Lat, &rup.Hypocenter.Depth, &rup.Surface,
		&rup.Lons, &rup.Lats, &rup.Depths, &rup.SiteIndices)
	if err != nil {
		r.logger.Error("get rupture failed", "rupture_id", id, "error", err)
		return Rupture{}, err
	}
	return rup, nil
}

func (r *Repository) RupturesForCollection(ctx context.Context, collectionID int64) ([]Rupture, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, ses_collection_id, trt_model_id, magnitude, rake,
		        hypo_lon, hypo_lat, hypo_depth, surface_kind,
		        lons, lats, depths, site_indices
		 FROM ruptures
		 WHERE ses_collection_id=$1
		 ORDER BY id`,
		collectionID,
	)
	if err != nil {
		r.logger.Error("list ruptures failed", "ses_collection_id", collectionID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var rups []Rupture
	for rows.Next() {
		var rup Rupture
		if err := rows.Scan(&rup.ID, &rup.CollectionID, &rup.TrtModelID, &rup.Magnitude, &rup.Rake,
			&rup.Hypocenter.Lon, &rup.Hypocenter.Lat, &rup.Hypocenter.Depth, &rup.Surface,
			&rup.Lons, &rup.Lats, &rup.Depths, &rup.SiteIndices); err != nil {
			return nil, err
		}
		rups = append(rups, rup)
	}
	return rups, rows.Err()
}

// CreateEventRuptures writes the occurrence rows for a batch of
// ruptures in one transaction. IDs are filled in on the slice.
func (r *Repository) CreateEventRuptures(ctx context.Context, ers []EventRupture) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	for i := range ers {
		if err := tx.QueryRow(ctx,
			`INSERT INTO ses_ruptures (rupture_id, ses_id, tag, seed)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			ers[i].RuptureID, ers[i].SESOrdinal, ers[i].Tag, ers[i].Seed,
		).Scan(&ers[i].ID); err != nil {
			r.logger.Error("insert ses rupture failed",
				"rupture_id", ers[i].RuptureID,
				"tag", ers[i].Tag,
				"error", err,
			)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "error", err)
		return err
	}
	return nil
}

// EventRupturesForSet returns the occurrences of one event set in
// lexicographic tag order, the order exports must walk them in.
func (r *Repository) EventRupturesForSet(ctx context.Context, collectionID int64, sesOrdinal int) ([]EventRupture, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT sr.id, sr.rupture_id, sr.ses_id, sr.tag, sr.seed
		 FROM ses_ruptures sr
		 JOIN ruptures ru ON ru.id = sr.rupture_id
		 WHERE ru.ses_collection_id=$1 AND sr.ses_id=$2
		 ORDER BY sr.tag`,
		collectionID, sesOrdinal,
	)
	if err != nil {
		r.logger.Error("list ses ruptures failed",
			"ses_collection_id", collectionID,
			"ses_id", sesOrdinal,
			"error", err,
		)
		return nil, err
	}
	defer rows.Close()

	var ers []EventRupture
	for rows.Next() {
		var er EventRupture
		if err := rows.Scan(&er.ID, &er.RuptureID, &er.SESOrdinal, &er.Tag, &er.Seed); err != nil {
			return nil, err
		}
		ers = append(ers, er)
	}
	return ers, rows.Err()
}

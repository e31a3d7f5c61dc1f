// SPDX-License-Identifier: Apache-2.0

package hazard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quakelab/hazrisk/internal/domain"
)

type SiteRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSiteRepository(pool *pgxpool.Pool, logger *slog.Logger) *SiteRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &SiteRepository{
		pool:   pool,
		logger: logger,
	}
}

// CreateSites persists the site collection for a job in one
// transaction, filling in the generated ids.
func (r *SiteRepository) CreateSites(ctx context.Context, jobID uuid.UUID, sc *domain.SiteCollection) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	for i := range sc.Sites {
		s := &sc.Sites[i]
		if err := tx.QueryRow(ctx,
			`INSERT INTO hazard_sites (job_id, lon, lat, vs30, z1pt0, z2pt5)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			jobID, s.Location.Lon, s.Location.Lat, s.Vs30, s.Z1pt0, s.Z2pt5,
		).Scan(&s.ID); err != nil {
			r.logger.Error("insert hazard site failed", "job_id", jobID, "error", err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "job_id", jobID, "error", err)
		return err
	}
	r.logger.Info("hazard sites created", "job_id", jobID, "count", len(sc.Sites))
	return nil
}

// SitesForJob returns the job's site collection ordered by location,
// the order every per-site export relies on.
func (r *SiteRepository) SitesForJob(ctx context.Context, jobID uuid.UUID) (*domain.SiteCollection, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, lon, lat, vs30, z1pt0, z2pt5
		 FROM hazard_sites
		 WHERE job_id=$1
		 ORDER BY lon, lat`,
		jobID,
	)
	if err != nil {
		r.logger.Error("list hazard sites failed", "job_id", jobID, "error", err)
		return nil, err
	}
	defer rows.Close()

	sc := &domain.SiteCollection{}
	for rows.Next() {
		var s domain.Site
		if err := rows.Scan(&s.ID, &s.Location.Lon, &s.Location.Lat, &s.Vs30, &s.Z1pt0, &s.Z2pt5); err != nil {
			return nil, err
		}
		sc.Sites = append(sc.Sites, s)
	}
	return sc, rows.Err()
}

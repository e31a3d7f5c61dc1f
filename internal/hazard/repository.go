// SPDX-License-Identifier: Apache-2.0

package hazard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quakelab/hazrisk/internal/domain"
)

type CurveRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCurveRepository(pool *pgxpool.Pool, logger *slog.Logger) *CurveRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CurveRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *CurveRepository) CreateCurve(ctx context.Context, c *Curve) error {
	var saPeriod, saDamping *float64
	if c.IMT.Type == "SA" {
		saPeriod = &c.IMT.SAPeriod
		saDamping = &c.IMT.SADamping
	}
	var stats *string
	if c.Statistics != domain.StatNone {
		s := string(c.Statistics)
		stats = &s
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO hazard_curves
		   (output_id, lt_realization_id, investigation_time, imt, imls,
		    statistics, quantile, sa_period, sa_damping)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		c.OutputID, c.RealizationID, c.InvestigationTime, c.IMT.Type, c.IMLs,
		stats, c.Quantile, saPeriod, saDamping,
	).Scan(&c.ID)
	if err != nil {
		r.logger.Error("insert hazard curve failed", "output_id", c.OutputID, "error", err)
		return err
	}
	return nil
}

// InsertCurveData writes the per-location rows for one curve in a
// single transaction. The rows for a curve are written exactly once;
// results are never updated in place.
func (r *CurveRepository) InsertCurveData(ctx context.Context, curveID int64, data []CurveData) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	for _, d := range data {
		if _, err := tx.Exec(ctx,
			`INSERT INTO hazard_curve_data (hazard_curve_id, lon, lat, poes, weight)
			 VALUES ($1, $2, $3, $4, $5)`,
			curveID, d.Location.Lon, d.Location.Lat, d.PoEs, d.Weight,
		); err != nil {
			r.logger.Error("insert hazard curve data failed",
				"hazard_curve_id", curveID,
				"error", err,
			)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "hazard_curve_id", curveID, "error", err)
		return err
	}
	return nil
}

func (r *CurveRepository) GetCurve(ctx context.Context, id int64) (Curve, error) {
	var (
		c         Curve
		stats     *string
		saPeriod  *float64
		saDamping *float64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, output_id, lt_realization_id, investigation_time, imt, imls,
		        statistics, quantile, sa_period, sa_damping
		 FROM hazard_curves
		 WHERE id=$1`,
		id,
	).Scan(&c.ID, &c.OutputID, &c.RealizationID, &c.InvestigationTime, &c.IMT.Type,
		&c.IMLs, &stats, &c.Quantile, &saPeriod, &saDamping)
	if err != nil {
		r.logger.Error("get hazard curve failed", "hazard_curve_id", id, "error", err)
		return Curve{}, err
	}
	if stats != nil {
		c.Statistics = domain.StatKind(*stats)
	}
	if saPeriod != nil {
		c.IMT.SAPeriod = *saPeriod
	}
	if saDamping != nil {
		c.IMT.SADamping = *saDamping
	}
	return c, nil
}

// CurveForOutput resolves the curve container belonging to one output.
func (r *CurveRepository) CurveForOutput(ctx context.Context, outputID uuid.UUID) (Curve, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM hazard_curves WHERE output_id=$1`,
		outputID,
	).Scan(&id)
	if err != nil {
		r.logger.Error("curve for output failed", "output_id", outputID, "error", err)
		return Curve{}, err
	}
	return r.GetCurve(ctx, id)
}

// CurveChunk returns one page of a curve's per-location rows ordered by
// longitude, then latitude. Paging by offset keeps chunk boundaries
// stable across workers.
func (r *CurveRepository) CurveChunk(ctx context.Context, curveID int64, offset, limit int) ([]CurveData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, hazard_curve_id, lon, lat, poes, weight
		 FROM hazard_curve_data
		 WHERE hazard_curve_id=$1
		 ORDER BY lon, lat
		 OFFSET $2 LIMIT $3`,
		curveID, offset, limit,
	)
	if err != nil {
		r.logger.Error("curve chunk query failed", "hazard_curve_id", curveID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var data []CurveData
	for rows.Next() {
		var d CurveData
		if err := rows.Scan(&d.ID, &d.CurveID, &d.Location.Lon, &d.Location.Lat, &d.PoEs, &d.Weight); err != nil {
			return nil, err
		}
		data = append(data, d)
	}
	return data, rows.Err()
}

// EachCurvePoint streams a curve's locations in chunks of chunkSize,
// re-issuing the chunk query per page rather than holding one large
// result set open.
func (r *CurveRepository) EachCurvePoint(ctx context.Context, curveID int64, chunkSize int, fn func(CurvePoint) error) error {
	for offset := 0; ; offset += chunkSize {
		chunk, err := r.CurveChunk(ctx, curveID, offset, chunkSize)
		if err != nil {
			return err
		}
		for _, d := range chunk {
			if err := fn(CurvePoint{Location: d.Location, PoEs: d.PoEs}); err != nil {
				return err
			}
		}
		if len(chunk) < chunkSize {
			return nil
		}
	}
}

// AllCurvesForIMT returns the realization curve headers for one job and
// intensity measure type, skipping statistical aggregates. The caller
// combines these into mean and quantile curves.
func (r *CurveRepository) AllCurvesForIMT(ctx context.Context, jobID uuid.UUID, imt domain.IMT) ([]Curve, error) {
	var saPeriod, saDamping *float64
	if imt.Type == "SA" {
		saPeriod = &imt.SAPeriod
		saDamping = &imt.SADamping
	}
	rows, err := r.pool.Query(ctx,
		`SELECT hc.id, hc.output_id, hc.lt_realization_id, hc.investigation_time,
		        hc.imt, hc.imls, hc.quantile
		 FROM hazard_curves hc
		 JOIN outputs o ON o.id = hc.output_id
		 WHERE o.job_id=$1
		   AND hc.imt=$2
		   AND hc.sa_period IS NOT DISTINCT FROM $3
		   AND hc.sa_damping IS NOT DISTINCT FROM $4
		   AND hc.lt_realization_id IS NOT NULL
		 ORDER BY hc.id`,
		jobID, imt.Type, saPeriod, saDamping,
	)
	if err != nil {
		r.logger.Error("all curves for imt failed", "job_id", jobID, "imt", imt.String(), "error", err)
		return nil, err
	}
	defer rows.Close()

	var curves []Curve
	for rows.Next() {
		c := Curve{IMT: imt}
		if err := rows.Scan(&c.ID, &c.OutputID, &c.RealizationID, &c.InvestigationTime,
			&c.IMT.Type, &c.IMLs, &c.Quantile); err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, rows.Err()
}

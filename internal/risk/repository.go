// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quakelab/hazrisk/internal/domain"
)

// Repository persists risk result containers and their detail rows.
// All result rows are written once and never updated in place; a
// serialization either commits completely or leaves nothing behind.
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

// CreateLossCurve writes a loss-curve container and its per-asset rows
// in one transaction.
func (r *Repository) CreateLossCurve(ctx context.Context, lc *LossCurve, rows []LossCurveData) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO loss_curves
		   (output_id, hazard_output_id, aggregate, insured, statistics, quantile, loss_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		lc.OutputID, lc.HazardOutputID, lc.Aggregate, lc.Insured,
		nullStat(lc.Statistics), lc.Quantile, lc.LossType,
	).Scan(&lc.ID); err != nil {
		r.logger.Error("insert loss curve failed", "output_id", lc.OutputID, "error", err)
		return err
	}

	for i := range rows {
		rows[i].LossCurveID = lc.ID
		if err := tx.QueryRow(ctx,
			`INSERT INTO loss_curve_data
			   (loss_curve_id, asset_ref, asset_value, loss_ratios, poes,
			    lon, lat, average_loss_ratio, stddev_loss_ratio)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING id`,
			lc.ID, rows[i].AssetRef, rows[i].AssetValue, rows[i].LossRatios, rows[i].PoEs,
			rows[i].Location.Lon, rows[i].Location.Lat,
			rows[i].AverageLossRatio, rows[i].StddevLossRatio,
		).Scan(&rows[i].ID); err != nil {
			r.logger.Error("insert loss curve data failed",
				"loss_curve_id", lc.ID,
				"asset_ref", rows[i].AssetRef,
				"error", err,
			)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "loss_curve_id", lc.ID, "error", err)
		return err
	}
	r.logger.Info("loss curve serialized", "loss_curve_id", lc.ID, "assets", len(rows))
	return nil
}

// CreateAggregateLossCurve writes an aggregate container with its
// single whole-exposure curve.
func (r *Repository) CreateAggregateLossCurve(ctx context.Context, lc *LossCurve, data *AggregateLossCurveData) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	lc.Aggregate = true
	if err := tx.QueryRow(ctx,
		`INSERT INTO loss_curves
		   (output_id, hazard_output_id, aggregate, insured, statistics, quantile, loss_type)
		 VALUES ($1, $2, TRUE, $3, $4, $5, $6)
		 RETURNING id`,
		lc.OutputID, lc.HazardOutputID, lc.Insured,
		nullStat(lc.Statistics), lc.Quantile, lc.LossType,
	).Scan(&lc.ID); err != nil {
		r.logger.Error("insert aggregate loss curve failed", "output_id", lc.OutputID, "error", err)
		return err
	}

	data.LossCurveID = lc.ID
	if err := tx.QueryRow(ctx,
		`INSERT INTO aggregate_loss_curve_data
		   (loss_curve_id, losses, poes, average_loss, stddev_loss)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		lc.ID, data.Losses, data.PoEs, data.AverageLoss, data.StddevLoss,
	).Scan(&data.ID); err != nil {
		r.logger.Error("insert aggregate loss curve data failed", "loss_curve_id", lc.ID, "error", err)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "loss_curve_id", lc.ID, "error", err)
		return err
	}
	return nil
}

func (r *Repository) LossCurveRows(ctx context.Context, lossCurveID int64) ([]LossCurveData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, loss_curve_id, asset_ref, asset_value, loss_ratios, poes,
		        lon, lat, average_loss_ratio, stddev_loss_ratio
		 FROM loss_curve_data
		 WHERE loss_curve_id=$1
		 ORDER BY id`,
		lossCurveID,
	)
	if err != nil {
		r.logger.Error("list loss curve data failed", "loss_curve_id", lossCurveID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []LossCurveData
	for rows.Next() {
		var d LossCurveData
		if err := rows.Scan(&d.ID, &d.LossCurveID, &d.AssetRef, &d.AssetValue,
			&d.LossRatios, &d.PoEs, &d.Location.Lon, &d.Location.Lat,
			&d.AverageLossRatio, &d.StddevLossRatio); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CreateLossMap writes the loss-map container and one row per
// (site, asset) pair in one transaction.
func (r *Repository) CreateLossMap(ctx context.Context, lm *LossMap, rows []LossMapData) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO loss_maps
		   (output_id, hazard_output_id, deterministic, end_branch_label, category,
		    unit, insured, poe, statistics, quantile, loss_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		lm.OutputID, lm.HazardOutputID, lm.Deterministic, lm.EndBranchLabel, lm.Category,
		lm.Unit, lm.Insured, lm.PoE, nullStat(lm.Statistics), lm.Quantile, lm.LossType,
	).Scan(&lm.ID); err != nil {
		r.logger.Error("insert loss map failed", "output_id", lm.OutputID, "error", err)
		return err
	}

	for i := range rows {
		rows[i].LossMapID = lm.ID
		if err := tx.QueryRow(ctx,
			`INSERT INTO loss_map_data (loss_map_id, asset_ref, value, std_dev, lon, lat)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			lm.ID, rows[i].AssetRef, rows[i].Value, rows[i].StdDev,
			rows[i].Location.Lon, rows[i].Location.Lat,
		).Scan(&rows[i].ID); err != nil {
			r.logger.Error("insert loss map data failed",
				"loss_map_id", lm.ID,
				"asset_ref", rows[i].AssetRef,
				"error", err,
			)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "loss_map_id", lm.ID, "error", err)
		return err
	}
	r.logger.Info("loss map serialized", "loss_map_id", lm.ID, "rows", len(rows))
	return nil
}

func (r *Repository) LossMapRows(ctx context.Context, lossMapID int64) ([]LossMapData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, loss_map_id, asset_ref, value, std_dev, lon, lat
		 FROM loss_map_data
		 WHERE loss_map_id=$1
		 ORDER BY id`,
		lossMapID,
	)
	if err != nil {
		r.logger.Error("list loss map data failed", "loss_map_id", lossMapID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []LossMapData
	for rows.Next() {
		var d LossMapData
		if err := rows.Scan(&d.ID, &d.LossMapID, &d.AssetRef, &d.Value, &d.StdDev,
			&d.Location.Lon, &d.Location.Lat); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CreateEventLoss writes the event-loss container and its per-rupture
// rows in one transaction.
func (r *Repository) CreateEventLoss(ctx context.Context, el *EventLoss, rows []EventLossData) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO event_losses (output_id, hazard_output_id, loss_type)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		el.OutputID, el.HazardOutputID, el.LossType,
	).Scan(&el.ID); err != nil {
		r.logger.Error("insert event loss failed", "output_id", el.OutputID, "error", err)
		return err
	}

	for i := range rows {
		rows[i].EventLossID = el.ID
		if err := tx.QueryRow(ctx,
			`INSERT INTO event_loss_data (event_loss_id, ses_rupture_id, aggregate_loss)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			el.ID, rows[i].EventRuptureID, rows[i].AggregateLoss,
		).Scan(&rows[i].ID); err != nil {
			r.logger.Error("insert event loss data failed",
				"event_loss_id", el.ID,
				"ses_rupture_id", rows[i].EventRuptureID,
				"error", err,
			)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "event_loss_id", el.ID, "error", err)
		return err
	}
	return nil
}

// EventLossRows returns the per-rupture losses of one table with their
// tags, largest loss first.
func (r *Repository) EventLossRows(ctx context.Context, eventLossID int64) ([]EventLossData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT eld.id, eld.event_loss_id, eld.ses_rupture_id, sr.tag, eld.aggregate_loss
		 FROM event_loss_data eld
		 JOIN ses_ruptures sr ON sr.id = eld.ses_rupture_id
		 WHERE eld.event_loss_id=$1
		 ORDER BY eld.aggregate_loss DESC`,
		eventLossID,
	)
	if err != nil {
		r.logger.Error("list event loss data failed", "event_loss_id", eventLossID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []EventLossData
	for rows.Next() {
		var d EventLossData
		if err := rows.Scan(&d.ID, &d.EventLossID, &d.EventRuptureID, &d.RuptureTag, &d.AggregateLoss); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repository) CreateAggregateLoss(ctx context.Context, al *AggregateLoss) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO aggregate_losses (output_id, insured, mean, std_dev, loss_type)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		al.OutputID, al.Insured, al.Mean, al.StdDev, al.LossType,
	).Scan(&al.ID)
	if err != nil {
		r.logger.Error("insert aggregate loss failed", "output_id", al.OutputID, "error", err)
		return err
	}
	return nil
}

// CreateBCRDistribution writes the container and its per-asset rows in
// one transaction.
func (r *Repository) CreateBCRDistribution(ctx context.Context, b *BCRDistribution, rows []BCRDistributionData) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO bcr_distributions (output_id, hazard_output_id, loss_type)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		b.OutputID, b.HazardOutputID, b.LossType,
	).Scan(&b.ID); err != nil {
		r.logger.Error("insert bcr distribution failed", "output_id", b.OutputID, "error", err)
		return err
	}

	for i := range rows {
		rows[i].BCRDistributionID = b.ID
		if err := tx.QueryRow(ctx,
			`INSERT INTO bcr_distribution_data
			   (bcr_distribution_id, asset_ref, average_annual_loss_original,
			    average_annual_loss_retrofitted, bcr, lon, lat)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			b.ID, rows[i].AssetRef, rows[i].AverageAnnualLossOriginal,
			rows[i].AverageAnnualLossRetrofitted, rows[i].BCR,
			rows[i].Location.Lon, rows[i].Location.Lat,
		).Scan(&rows[i].ID); err != nil {
			r.logger.Error("insert bcr distribution data failed",
				"bcr_distribution_id", b.ID,
				"asset_ref", rows[i].AssetRef,
				"error", err,
			)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "bcr_distribution_id", b.ID, "error", err)
		return err
	}
	return nil
}

// CreateLossFraction writes the container and its raw rows in one
// transaction.
func (r *Repository) CreateLossFraction(ctx context.Context, lf *LossFraction, rows []LossFractionData) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO loss_fractions
		   (output_id, hazard_output_id, variable, statistics, quantile, poe, loss_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		lf.OutputID, lf.HazardOutputID, lf.Variable,
		nullStat(lf.Statistics), lf.Quantile, lf.PoE, lf.LossType,
	).Scan(&lf.ID); err != nil {
		r.logger.Error("insert loss fraction failed", "output_id", lf.OutputID, "error", err)
		return err
	}

	for i := range rows {
		rows[i].LossFractionID = lf.ID
		if err := tx.QueryRow(ctx,
			`INSERT INTO loss_fraction_data (loss_fraction_id, lon, lat, value, absolute_loss)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			lf.ID, rows[i].Location.Lon, rows[i].Location.Lat,
			rows[i].Value, rows[i].AbsoluteLoss,
		).Scan(&rows[i].ID); err != nil {
			r.logger.Error("insert loss fraction data failed",
				"loss_fraction_id", lf.ID,
				"error", err,
			)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "loss_fraction_id", lf.ID, "error", err)
		return err
	}
	return nil
}

func (r *Repository) LossFractionRows(ctx context.Context, lossFractionID int64) ([]LossFractionData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, loss_fraction_id, lon, lat, value, absolute_loss
		 FROM loss_fraction_data
		 WHERE loss_fraction_id=$1
		 ORDER BY lon, lat, value`,
		lossFractionID,
	)
	if err != nil {
		r.logger.Error("list loss fraction data failed", "loss_fraction_id", lossFractionID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []LossFractionData
	for rows.Next() {
		var d LossFractionData
		if err := rows.Scan(&d.ID, &d.LossFractionID, &d.Location.Lon, &d.Location.Lat,
			&d.Value, &d.AbsoluteLoss); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CreateDmgStates persists the damage states of the fragility model
// for one job, ordered by limit state index.
func (r *Repository) CreateDmgStates(ctx context.Context, jobID uuid.UUID, states []DmgState) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	for i := range states {
		states[i].JobID = jobID
		if err := tx.QueryRow(ctx,
			`INSERT INTO dmg_states (job_id, dmg_state, lsi)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			jobID, states[i].Name, states[i].LSI,
		).Scan(&states[i].ID); err != nil {
			r.logger.Error("insert dmg state failed", "job_id", jobID, "error", err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "job_id", jobID, "error", err)
		return err
	}
	return nil
}

// InsertDamageDistributions writes the per-asset, per-taxonomy and
// total distribution rows in one transaction; any of the slices may be
// empty.
func (r *Repository) InsertDamageDistributions(ctx context.Context, perAsset []DmgDistPerAsset, perTaxonomy []DmgDistPerTaxonomy, total []DmgDistTotal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	for i := range perAsset {
		if err := tx.QueryRow(ctx,
			`INSERT INTO dmg_dist_per_asset (dmg_state_id, asset_ref, mean, stddev)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			perAsset[i].DmgStateID, perAsset[i].AssetRef, perAsset[i].Mean, perAsset[i].StdDev,
		).Scan(&perAsset[i].ID); err != nil {
			r.logger.Error("insert dmg dist per asset failed", "error", err)
			return err
		}
	}
	for i := range perTaxonomy {
		if err := tx.QueryRow(ctx,
			`INSERT INTO dmg_dist_per_taxonomy (dmg_state_id, taxonomy, mean, stddev)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			perTaxonomy[i].DmgStateID, perTaxonomy[i].Taxonomy, perTaxonomy[i].Mean, perTaxonomy[i].StdDev,
		).Scan(&perTaxonomy[i].ID); err != nil {
			r.logger.Error("insert dmg dist per taxonomy failed", "error", err)
			return err
		}
	}
	for i := range total {
		if err := tx.QueryRow(ctx,
			`INSERT INTO dmg_dist_totals (dmg_state_id, mean, stddev)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			total[i].DmgStateID, total[i].Mean, total[i].StdDev,
		).Scan(&total[i].ID); err != nil {
			r.logger.Error("insert dmg dist total failed", "error", err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "error", err)
		return err
	}
	return nil
}

func nullStat(s domain.StatKind) *string {
	if s == domain.StatNone {
		return nil
	}
	v := string(s)
	return &v
}

// SPDX-License-Identifier: Apache-2.0

package gmf

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/eventset"
)

// DataRow is one persisted gmf_data row: the ground motion values of
// one site for one IMT, parallel to the occurrence ids that produced
// them. TaskNo discriminates the writing worker so bulk inserts from
// different workers own disjoint row sets.
type DataRow struct {
	SiteID          int64
	IMT             domain.IMT
	GMVs            []float64
	EventRuptureIDs []int64
}

type DataRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDataRepository(pool *pgxpool.Pool, logger *slog.Logger) *DataRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataRepository{
		pool:   pool,
		logger: logger,
	}
}

// CreateContainer creates the gmf container row for one realization's
// output and returns its id.
func (r *DataRepository) CreateContainer(ctx context.Context, outputID uuid.UUID, rlzID int64) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO gmfs (output_id, lt_realization_id)
		 VALUES ($1, $2)
		 RETURNING id`,
		outputID, rlzID,
	).Scan(&id)
	if err != nil {
		r.logger.Error("insert gmf failed", "output_id", outputID, "error", err)
		return 0, err
	}
	return id, nil
}

// InsertData appends one worker's rows for a gmf container. Rows are
// append-only; a (gmf, task) pair is written by exactly one worker, so
// concurrent workers need no cross-worker lock.
func (r *DataRepository) InsertData(ctx context.Context, gmfID int64, taskNo int, rows []DataRow) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	for _, row := range rows {
		var saPeriod, saDamping *float64
		if row.IMT.Type == "SA" {
			saPeriod = &row.IMT.SAPeriod
			saDamping = &row.IMT.SADamping
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO gmf_data
			   (gmf_id, task_no, imt, sa_period, sa_damping, site_id, gmvs, ses_rupture_ids)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			gmfID, taskNo, row.IMT.Type, saPeriod, saDamping,
			row.SiteID, row.GMVs, row.EventRuptureIDs,
		); err != nil {
			r.logger.Error("insert gmf data failed",
				"gmf_id", gmfID,
				"task_no", taskNo,
				"site_id", row.SiteID,
				"error", err,
			)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "gmf_id", gmfID, "error", err)
		return err
	}
	return nil
}

// FieldsForSet reads back the fields of one stored event set, grouped
// per (IMT, rupture tag) with nodes ordered by location. An event set
// with no rows yields no fields.
func (r *DataRepository) FieldsForSet(ctx context.Context, gmfID int64, collectionID int64, sesOrdinal int) ([]Field, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT x.imt, x.sa_period, x.sa_damping, sr.tag, x.gmv, s.lon, s.lat
		 FROM (
		   SELECT imt, sa_period, sa_damping, site_id,
		          unnest(gmvs) AS gmv, unnest(ses_rupture_ids) AS ses_rupture_id
		   FROM gmf_data
		   WHERE gmf_id=$1
		 ) x
		 JOIN hazard_sites s ON s.id = x.site_id
		 JOIN ses_ruptures sr ON sr.id = x.ses_rupture_id
		 JOIN ruptures ru ON ru.id = sr.rupture_id
		 WHERE sr.ses_id=$2 AND ru.ses_collection_id=$3
		 ORDER BY x.imt, x.sa_period, x.sa_damping, sr.tag, s.lon, s.lat`,
		gmfID, sesOrdinal, collectionID,
	)
	if err != nil {
		r.logger.Error("fields for set failed",
			"gmf_id", gmfID,
			"ses_id", sesOrdinal,
			"error", err,
		)
		return nil, err
	}
	defer rows.Close()

	var fields []Field
	for rows.Next() {
		var (
			imtType   string
			saPeriod  *float64
			saDamping *float64
			tag       string
			node      Node
		)
		if err := rows.Scan(&imtType, &saPeriod, &saDamping, &tag, &node.GMV,
			&node.Location.Lon, &node.Location.Lat); err != nil {
			return nil, err
		}
		imt := domain.IMT{Type: imtType}
		if saPeriod != nil {
			imt.SAPeriod = *saPeriod
		}
		if saDamping != nil {
			imt.SADamping = *saDamping
		}
		if n := len(fields); n == 0 || fields[n-1].RuptureTag != tag || fields[n-1].IMT != imt {
			fields = append(fields, Field{IMT: imt, RuptureTag: tag})
		}
		last := &fields[len(fields)-1]
		last.Nodes = append(last.Nodes, node)
	}
	return fields, rows.Err()
}

// FieldsForOutputSet resolves a gmf output to its container and event
// set collection, then reads back the fields of one event set.
func (r *DataRepository) FieldsForOutputSet(ctx context.Context, outputID uuid.UUID, sesOrdinal int) ([]Field, error) {
	var gmfID, collectionID int64
	err := r.pool.QueryRow(ctx,
		`SELECT g.id, sc.id
		 FROM gmfs g
		 JOIN lt_realizations rlz ON rlz.id = g.lt_realization_id
		 JOIN ses_collections sc ON sc.lt_model_id = rlz.lt_model_id
		 WHERE g.output_id=$1`,
		outputID,
	).Scan(&gmfID, &collectionID)
	if err != nil {
		r.logger.Error("gmf for output failed", "output_id", outputID, "error", err)
		return nil, err
	}
	return r.FieldsForSet(ctx, gmfID, collectionID, sesOrdinal)
}

// EachStoredSet walks a gmf container's event sets in order, emitting
// one Set per event set that has data.
func (r *DataRepository) EachStoredSet(ctx context.Context, gmfID int64, coll eventset.Collection, sesPerPath int, investigationTime *float64, emit func(Set) error) error {
	for _, ses := range eventset.EventSets(coll, sesPerPath, investigationTime) {
		fields, err := r.FieldsForSet(ctx, gmfID, coll.ID, ses.Ordinal)
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			continue
		}
		if err := emit(Set{EventSet: ses, Fields: fields}); err != nil {
			return err
		}
	}
	return nil
}

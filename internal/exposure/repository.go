// SPDX-License-Identifier: Apache-2.0

package exposure

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/metrics"
)

// AssetRepository loads exposure models and their assets.
type AssetRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAssetRepository(pool *pgxpool.Pool, logger *slog.Logger) *AssetRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssetRepository{
		pool:   pool,
		logger: logger,
	}
}

// CreateModel writes the model and its cost types in one transaction.
func (r *AssetRepository) CreateModel(ctx context.Context, m *Model) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO exposure_models (job_id, name, description, category, area_type, area_unit)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		m.JobID, m.Name, m.Description, m.Category, m.AreaType, m.AreaUnit,
	).Scan(&m.ID); err != nil {
		r.logger.Error("insert exposure model failed", "name", m.Name, "error", err)
		return err
	}

	for i := range m.CostTypes {
		m.CostTypes[i].ModelID = m.ID
		ct := &m.CostTypes[i]
		if err := tx.QueryRow(ctx,
			`INSERT INTO exposure_cost_types
			   (exposure_model_id, name, conversion, unit, retrofitted_conversion, retrofitted_unit)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			m.ID, ct.Name, ct.Conversion, ct.Unit, ct.RetrofittedConversion, ct.RetrofittedUnit,
		).Scan(&ct.ID); err != nil {
			r.logger.Error("insert cost type failed", "name", ct.Name, "error", err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "exposure_model_id", m.ID, "error", err)
		return err
	}
	return nil
}

// CreateAssets writes assets with their cost and occupancy rows in one
// transaction. Cost rows must reference cost types of the same model.
func (r *AssetRepository) CreateAssets(ctx context.Context, modelID int64, assets []Asset, costs map[string][]CostRow, occupancies map[string][]Occupancy) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	for i := range assets {
		assets[i].ModelID = modelID
		a := &assets[i]
		if err := tx.QueryRow(ctx,
			`INSERT INTO exposure_data
			   (exposure_model_id, asset_ref, taxonomy, lon, lat, number_of_units, area)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			modelID, a.Ref, a.Taxonomy, a.Site.Lon, a.Site.Lat, a.NumberOfUnits, a.Area,
		).Scan(&a.ID); err != nil {
			r.logger.Error("insert asset failed", "asset_ref", a.Ref, "error", err)
			return err
		}

		for _, c := range costs[a.Ref] {
			if _, err := tx.Exec(ctx,
				`INSERT INTO asset_costs
				   (exposure_data_id, cost_type_id, converted_cost,
				    converted_retrofitted_cost, deductible_absolute, insurance_limit_absolute)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				a.ID, c.CostTypeID, c.ConvertedCost,
				c.ConvertedRetrofit, c.DeductibleAbs, c.InsuranceLimitAbs,
			); err != nil {
				r.logger.Error("insert asset cost failed", "asset_ref", a.Ref, "error", err)
				return err
			}
		}
		for _, o := range occupancies[a.Ref] {
			if _, err := tx.Exec(ctx,
				`INSERT INTO occupancies (exposure_data_id, period, occupants)
				 VALUES ($1, $2, $3)`,
				a.ID, o.Period, o.Occupants,
			); err != nil {
				r.logger.Error("insert occupancy failed", "asset_ref", a.Ref, "error", err)
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", "exposure_model_id", modelID, "error", err)
		return err
	}
	r.logger.Info("exposure serialized", "exposure_model_id", modelID, "assets", len(assets))
	return nil
}

// GetModel loads one exposure model with its cost types.
func (r *AssetRepository) GetModel(ctx context.Context, id int64) (*Model, error) {
	var m Model
	err := r.pool.QueryRow(ctx,
		`SELECT id, job_id, name, description, category, area_type, area_unit
		 FROM exposure_models
		 WHERE id=$1`,
		id,
	).Scan(&m.ID, &m.JobID, &m.Name, &m.Description, &m.Category, &m.AreaType, &m.AreaUnit)
	if err != nil {
		r.logger.Error("get exposure model failed", "exposure_model_id", id, "error", err)
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, exposure_model_id, name, conversion, unit, retrofitted_conversion, retrofitted_unit
		 FROM exposure_cost_types
		 WHERE exposure_model_id=$1
		 ORDER BY id`,
		id,
	)
	if err != nil {
		r.logger.Error("list cost types failed", "exposure_model_id", id, "error", err)
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ct CostType
		if err := rows.Scan(&ct.ID, &ct.ModelID, &ct.Name, &ct.Conversion, &ct.Unit,
			&ct.RetrofittedConversion, &ct.RetrofittedUnit); err != nil {
			return nil, err
		}
		m.CostTypes = append(m.CostTypes, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &m, nil
}

// TaxonomiesInRegion maps each taxonomy of the model contained in the
// region to its asset count.
func (r *AssetRepository) TaxonomiesInRegion(ctx context.Context, modelID int64, region Region) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT taxonomy, COUNT(*)
		 FROM exposure_data
		 WHERE exposure_model_id=$1 AND $2::polygon @> point(lon, lat)
		 GROUP BY taxonomy`,
		modelID, region.pgPolygon(),
	)
	if err != nil {
		r.logger.Error("count taxonomies failed", "exposure_model_id", modelID, "error", err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var taxonomy string
		var n int
		if err := rows.Scan(&taxonomy, &n); err != nil {
			return nil, err
		}
		out[taxonomy] = n
	}
	return out, rows.Err()
}

// ChunkQuery selects one page of assets of a taxonomy inside a region.
// TimeEvent narrows the people count to one occupancy period; when nil
// the occupancy periods are averaged. AssetIDs, when non-nil, further
// restricts the page to the given assets.
type ChunkQuery struct {
	Region    Region
	Taxonomy  string
	TimeEvent *string
	AssetIDs  []int64
	Offset    int
	Limit     int
}

// GetAssetChunk returns one page of assets of the model matching the
// query, ordered by lon then lat so that pagination across parallel
// workers is deterministic. Cost and occupancy data are joined and the
// per-loss-type values are resolved before the chunk is returned.
func (r *AssetRepository) GetAssetChunk(ctx context.Context, m *Model, q ChunkQuery) ([]Asset, error) {
	args := []any{m.ID, q.Taxonomy, q.Region.pgPolygon()}
	var people string
	if m.Category == CategoryPopulation {
		people = `ed.number_of_units`
	} else {
		people = `(SELECT AVG(o.occupants) FROM occupancies o
	            WHERE o.exposure_data_id = ed.id`
		if q.TimeEvent != nil {
			args = append(args, *q.TimeEvent)
			people += ` AND o.period = $4`
		}
		people += `)`
	}

	idsCond := `TRUE`
	if q.AssetIDs != nil {
		args = append(args, q.AssetIDs)
		idsCond = `ed.id = ANY($` + strconv.Itoa(len(args)) + `)`
	}
	args = append(args, q.Offset, q.Limit)

	query := `SELECT ed.id, ed.exposure_model_id, ed.asset_ref, ed.taxonomy,
	                 ed.lon, ed.lat, ed.number_of_units, ed.area, ` + people + ` AS people
	          FROM exposure_data ed
	          WHERE ed.exposure_model_id = $1 AND
	                ed.taxonomy = $2 AND
	                $3::polygon @> point(ed.lon, ed.lat) AND ` + idsCond + `
	          ORDER BY ed.lon, ed.lat
	          OFFSET $` + strconv.Itoa(len(args)-1) + ` LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("asset chunk query failed",
			"exposure_model_id", m.ID,
			"taxonomy", q.Taxonomy,
			"error", err,
		)
		return nil, err
	}
	defer rows.Close()

	var assets []Asset
	var ids []int64
	for rows.Next() {
		var a Asset
		if err := rows.Scan(&a.ID, &a.ModelID, &a.Ref, &a.Taxonomy,
			&a.Site.Lon, &a.Site.Lat, &a.NumberOfUnits, &a.Area, &a.People); err != nil {
			return nil, err
		}
		assets = append(assets, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, nil
	}

	costs, err := r.costsForAssets(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range assets {
		if err := resolveValues(&assets[i], m, costs[assets[i].ID]); err != nil {
			return nil, err
		}
	}
	metrics.ObserveAssetChunkSize(len(assets))
	r.logger.Debug("asset chunk loaded",
		"exposure_model_id", m.ID,
		"taxonomy", q.Taxonomy,
		"offset", q.Offset,
		"assets", len(assets),
	)
	return assets, nil
}

func (r *AssetRepository) costsForAssets(ctx context.Context, ids []int64) (map[int64][]CostRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, exposure_data_id, cost_type_id, converted_cost,
		        converted_retrofitted_cost, deductible_absolute, insurance_limit_absolute
		 FROM asset_costs
		 WHERE exposure_data_id = ANY($1)`,
		ids,
	)
	if err != nil {
		r.logger.Error("list asset costs failed", "error", err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]CostRow)
	for rows.Next() {
		var c CostRow
		if err := rows.Scan(&c.ID, &c.AssetID, &c.CostTypeID, &c.ConvertedCost,
			&c.ConvertedRetrofit, &c.DeductibleAbs, &c.InsuranceLimitAbs); err != nil {
			return nil, err
		}
		out[c.AssetID] = append(out[c.AssetID], c)
	}
	return out, rows.Err()
}

// resolveValues computes the per-loss-type numbers of one asset from
// its cost rows and the model conversions.
func resolveValues(a *Asset, m *Model, costs []CostRow) error {
	area, units := 0.0, 0.0
	if a.Area != nil {
		area = *a.Area
	}
	if a.NumberOfUnits != nil {
		units = *a.NumberOfUnits
	}
	areaType := ""
	if m.AreaType != nil {
		areaType = *m.AreaType
	}

	for _, lt := range domain.LossTypes {
		ct := m.CostTypeFor(lt)
		if ct == nil {
			continue
		}
		var row *CostRow
		for i := range costs {
			if costs[i].CostTypeID == ct.ID {
				row = &costs[i]
				break
			}
		}
		if row == nil {
			continue
		}

		value, err := PerAssetValue(row.ConvertedCost, ct.Conversion, area, areaType, units, m.Category)
		if err != nil {
			return err
		}
		v := lossValues{
			value:          value,
			deductibleAbs:  row.DeductibleAbs,
			insuranceLimit: row.InsuranceLimitAbs,
		}
		if row.ConvertedRetrofit != nil {
			conv := ct.Conversion
			if ct.RetrofittedConversion != nil {
				conv = *ct.RetrofittedConversion
			}
			retro, err := PerAssetValue(*row.ConvertedRetrofit, conv, area, areaType, units, m.Category)
			if err != nil {
				return err
			}
			v.retrofitted = &retro
		}
		a.setValues(lt, v)
	}
	return nil
}

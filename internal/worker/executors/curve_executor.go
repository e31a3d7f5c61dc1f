// SPDX-License-Identifier: Apache-2.0

package executors

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/hazard"
	"github.com/quakelab/hazrisk/internal/job"
	"github.com/quakelab/hazrisk/internal/logictree"
)

// CurveStatsPayload selects the intensity measure type one statistics
// unit aggregates over.
type CurveStatsPayload struct {
	IMT string `json:"imt"`
}

// CurveStatsExecutor combines the realization hazard curves of one
// intensity measure type into mean and quantile curves.
type CurveStatsExecutor struct {
	jobs    *job.Repository
	outputs *job.OutputRepository
	trees   *logictree.Repository
	curves  *hazard.CurveRepository
	logger  *slog.Logger
}

func NewCurveStatsExecutor(
	jobs *job.Repository,
	outputs *job.OutputRepository,
	trees *logictree.Repository,
	curves *hazard.CurveRepository,
	logger *slog.Logger,
) *CurveStatsExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &CurveStatsExecutor{
		jobs:    jobs,
		outputs: outputs,
		trees:   trees,
		curves:  curves,
		logger:  logger,
	}
}

func (e *CurveStatsExecutor) Execute(ctx context.Context, jobID uuid.UUID, payload json.RawMessage) error {
	var p CurveStatsPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode curve stats payload: %w", err)
	}
	imt, err := domain.ParseIMT(p.IMT)
	if err != nil {
		return err
	}

	curves, err := e.curves.AllCurvesForIMT(ctx, jobID, imt)
	if err != nil {
		return err
	}
	if len(curves) == 0 {
		return fmt.Errorf("no realization curves for job %s imt %s", jobID, imt)
	}

	weightByRlz, err := e.realizationWeights(ctx, jobID)
	if err != nil {
		return err
	}
	weights := make([]float64, len(curves))
	for i, c := range curves {
		if c.RealizationID == nil {
			return fmt.Errorf("curve %d has no realization", c.ID)
		}
		w, ok := weightByRlz[*c.RealizationID]
		if !ok {
			return fmt.Errorf("no weight for realization %d", *c.RealizationID)
		}
		weights[i] = w
	}

	locations, poesByLocation, err := e.collectPoEs(ctx, curves)
	if err != nil {
		return err
	}

	quantiles, err := e.requestedQuantiles(ctx, jobID)
	if err != nil {
		return err
	}

	meanRaw, err := e.jobs.GetParamOr(ctx, jobID, "mean_hazard_curves", "true")
	if err != nil {
		return err
	}
	if meanRaw != "false" {
		data := make([]hazard.CurveData, len(locations))
		for i, loc := range locations {
			data[i] = hazard.CurveData{
				Location: loc,
				PoEs:     hazard.MeanCurve(weights, poesByLocation[loc]),
			}
		}
		if err := e.storeStatCurve(ctx, jobID, curves[0], domain.StatMean, nil, data); err != nil {
			return err
		}
	}

	for _, q := range quantiles {
		q := q
		data := make([]hazard.CurveData, len(locations))
		for i, loc := range locations {
			data[i] = hazard.CurveData{
				Location: loc,
				PoEs:     hazard.QuantileCurve(weights, poesByLocation[loc], q),
			}
		}
		if err := e.storeStatCurve(ctx, jobID, curves[0], domain.StatQuantile, &q, data); err != nil {
			return err
		}
	}

	e.logger.Info("hazard curve statistics computed",
		"job_id", jobID,
		"imt", imt.String(),
		"realizations", len(curves),
		"locations", len(locations),
		"quantiles", len(quantiles),
	)
	return nil
}

// collectPoEs reads every realization curve and regroups the
// exceedance probabilities per location, in curve order. Locations are
// returned sorted.
func (e *CurveStatsExecutor) collectPoEs(ctx context.Context, curves []hazard.Curve) ([]domain.Point, map[domain.Point][][]float64, error) {
	byLocation := make(map[domain.Point][][]float64)
	for ci, c := range curves {
		err := e.curves.EachCurvePoint(ctx, c.ID, 1000, func(cp hazard.CurvePoint) error {
			rows, ok := byLocation[cp.Location]
			if !ok {
				rows = make([][]float64, len(curves))
				byLocation[cp.Location] = rows
			}
			rows[ci] = cp.PoEs
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}

	locations := make([]domain.Point, 0, len(byLocation))
	for loc, rows := range byLocation {
		for ci, poes := range rows {
			if poes == nil {
				return nil, nil, fmt.Errorf("curve %d has no data at %s", curves[ci].ID, loc)
			}
		}
		locations = append(locations, loc)
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Less(locations[j])
	})
	return locations, byLocation, nil
}

func (e *CurveStatsExecutor) storeStatCurve(ctx context.Context, jobID uuid.UUID, template hazard.Curve, stat domain.StatKind, quantile *float64, data []hazard.CurveData) error {
	name := fmt.Sprintf("%s hazard curves %s", stat, template.IMT)
	if quantile != nil {
		name = fmt.Sprintf("quantile(%g) hazard curves %s", *quantile, template.IMT)
	}
	out := &job.Output{
		JobID:       jobID,
		OutputType:  job.OutputHazardCurve,
		DisplayName: name,
	}
	if err := e.outputs.CreateOutput(ctx, out); err != nil {
		return err
	}

	c := &hazard.Curve{
		OutputID:          out.ID,
		InvestigationTime: template.InvestigationTime,
		IMT:               template.IMT,
		IMLs:              template.IMLs,
		Statistics:        stat,
		Quantile:          quantile,
	}
	if err := e.curves.CreateCurve(ctx, c); err != nil {
		return err
	}
	return e.curves.InsertCurveData(ctx, c.ID, data)
}

func (e *CurveStatsExecutor) realizationWeights(ctx context.Context, jobID uuid.UUID) (map[int64]float64, error) {
	sms, err := e.trees.SourceModelsForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	weights := make(map[int64]float64)
	for _, sm := range sms {
		rlzs, err := e.trees.RealizationsForSourceModel(ctx, sm.ID)
		if err != nil {
			return nil, err
		}
		for _, rlz := range rlzs {
			weights[rlz.ID] = rlz.Weight
		}
	}
	return weights, nil
}

func (e *CurveStatsExecutor) requestedQuantiles(ctx context.Context, jobID uuid.UUID) ([]float64, error) {
	raw, err := e.jobs.GetParamOr(ctx, jobID, "quantile_hazard_curves", "")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var quantiles []float64
	for _, s := range strings.Split(raw, ",") {
		q, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("quantile_hazard_curves: %w", err)
		}
		if q < 0 || q > 1 {
			return nil, fmt.Errorf("quantile out of range: %g", q)
		}
		quantiles = append(quantiles, q)
	}
	return quantiles, nil
}

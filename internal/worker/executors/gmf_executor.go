// SPDX-License-Identifier: Apache-2.0

// Package executors holds the calculation-unit executors: each one
// runs a single slice of a hazard or risk job against the database.
package executors

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/eventset"
	"github.com/quakelab/hazrisk/internal/gmf"
	"github.com/quakelab/hazrisk/internal/hazard"
	"github.com/quakelab/hazrisk/internal/job"
	"github.com/quakelab/hazrisk/internal/logictree"
	"github.com/quakelab/hazrisk/internal/metrics"
)

// GMFPayload selects the realization one ground-motion-field unit
// reconstructs.
type GMFPayload struct {
	SourceModelID int64 `json:"source_model_id"`
	RealizationID int64 `json:"realization_id"`
}

// GMFExecutor replays the stochastic event sets of one realization
// through its ground-motion models and persists the resulting fields.
type GMFExecutor struct {
	jobs    *job.Repository
	outputs *job.OutputRepository
	trees   *logictree.Repository
	sets    *eventset.Repository
	sites   *hazard.SiteRepository
	data    *gmf.DataRepository
	logger  *slog.Logger
}

func NewGMFExecutor(
	jobs *job.Repository,
	outputs *job.OutputRepository,
	trees *logictree.Repository,
	sets *eventset.Repository,
	sites *hazard.SiteRepository,
	data *gmf.DataRepository,
	logger *slog.Logger,
) *GMFExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &GMFExecutor{
		jobs:    jobs,
		outputs: outputs,
		trees:   trees,
		sets:    sets,
		sites:   sites,
		data:    data,
		logger:  logger,
	}
}

func (e *GMFExecutor) Execute(ctx context.Context, jobID uuid.UUID, payload json.RawMessage) error {
	var p GMFPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode gmf payload: %w", err)
	}

	params, err := e.reconstructionParams(ctx, jobID)
	if err != nil {
		return err
	}

	sm, rlz, err := e.resolveRealization(ctx, jobID, p)
	if err != nil {
		return err
	}

	sites, err := e.sites.SitesForJob(ctx, jobID)
	if err != nil {
		return err
	}

	out := &job.Output{
		JobID:       jobID,
		OutputType:  job.OutputGMF,
		DisplayName: fmt.Sprintf("GMF rlz-%d", rlz.Ordinal),
	}
	if err := e.outputs.CreateOutput(ctx, out); err != nil {
		return err
	}
	gmfID, err := e.data.CreateContainer(ctx, out.ID, rlz.ID)
	if err != nil {
		return err
	}

	coll, err := e.sets.CollectionForSourceModel(ctx, sm.ID)
	if err != nil {
		return err
	}

	siteByLocation := make(map[domain.Point]int64, sites.Len())
	for _, s := range sites.Sites {
		siteByLocation[s.Location] = s.ID
	}

	rec := gmf.NewReconstructor(e.sets, e.trees, params, e.logger)
	var fieldsStored int
	err = rec.ForRealization(ctx, sm, rlz, sites, func(set gmf.Set) error {
		rows, err := e.dataRows(ctx, coll.ID, set, siteByLocation)
		if err != nil {
			return err
		}
		// The set ordinal doubles as the task number: each event set
		// is written exactly once.
		if err := e.data.InsertData(ctx, gmfID, set.EventSet.Ordinal, rows); err != nil {
			return err
		}
		fieldsStored += len(set.Fields)
		return nil
	})
	if err != nil {
		return err
	}

	metrics.ObserveFieldsPerRealization(fieldsStored)
	e.logger.Info("ground motion fields reconstructed",
		"job_id", jobID,
		"realization", rlz.Ordinal,
		"fields", fieldsStored,
	)
	return nil
}

// dataRows regroups one event set's fields into per-(imt, site) rows:
// the ground motion values of every occurrence at that site, parallel
// to the occurrence ids that produced them.
func (e *GMFExecutor) dataRows(ctx context.Context, collectionID int64, set gmf.Set, siteByLocation map[domain.Point]int64) ([]gmf.DataRow, error) {
	ers, err := e.sets.EventRupturesForSet(ctx, collectionID, set.EventSet.Ordinal)
	if err != nil {
		return nil, err
	}
	erByTag := make(map[string]int64, len(ers))
	for _, er := range ers {
		erByTag[er.Tag] = er.ID
	}

	type key struct {
		imt    domain.IMT
		siteID int64
	}
	byKey := make(map[key]*gmf.DataRow)
	var order []key
	for _, field := range set.Fields {
		erID, ok := erByTag[field.RuptureTag]
		if !ok {
			return nil, fmt.Errorf("no occurrence with tag %q in event set %d", field.RuptureTag, set.EventSet.Ordinal)
		}
		for _, node := range field.Nodes {
			siteID, ok := siteByLocation[node.Location]
			if !ok {
				return nil, fmt.Errorf("ground motion value at unknown site %s", node.Location)
			}
			k := key{imt: field.IMT, siteID: siteID}
			row, ok := byKey[k]
			if !ok {
				row = &gmf.DataRow{SiteID: siteID, IMT: field.IMT}
				byKey[k] = row
				order = append(order, k)
			}
			row.GMVs = append(row.GMVs, node.GMV)
			row.EventRuptureIDs = append(row.EventRuptureIDs, erID)
		}
	}

	rows := make([]gmf.DataRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *byKey[k])
	}
	return rows, nil
}

func (e *GMFExecutor) resolveRealization(ctx context.Context, jobID uuid.UUID, p GMFPayload) (logictree.SourceModel, logictree.Realization, error) {
	sms, err := e.trees.SourceModelsForJob(ctx, jobID)
	if err != nil {
		return logictree.SourceModel{}, logictree.Realization{}, err
	}
	for _, sm := range sms {
		if sm.ID != p.SourceModelID {
			continue
		}
		rlzs, err := e.trees.RealizationsForSourceModel(ctx, sm.ID)
		if err != nil {
			return logictree.SourceModel{}, logictree.Realization{}, err
		}
		for _, rlz := range rlzs {
			if rlz.ID == p.RealizationID {
				return sm, rlz, nil
			}
		}
		break
	}
	return logictree.SourceModel{}, logictree.Realization{},
		fmt.Errorf("realization %d not found for job %s", p.RealizationID, jobID)
}

func (e *GMFExecutor) reconstructionParams(ctx context.Context, jobID uuid.UUID) (gmf.Params, error) {
	var params gmf.Params

	imtsRaw, err := e.jobs.GetParam(ctx, jobID, "intensity_measure_types")
	if err != nil {
		return params, err
	}
	for _, s := range strings.Split(imtsRaw, ",") {
		imt, err := domain.ParseIMT(strings.TrimSpace(s))
		if err != nil {
			return params, err
		}
		params.IMTs = append(params.IMTs, imt)
	}

	sesRaw, err := e.jobs.GetParamOr(ctx, jobID, "ses_per_logic_tree_path", "1")
	if err != nil {
		return params, err
	}
	params.SESPerPath, err = strconv.Atoi(sesRaw)
	if err != nil {
		return params, fmt.Errorf("ses_per_logic_tree_path: %w", err)
	}

	if raw, err := e.jobs.GetParamOr(ctx, jobID, "investigation_time", ""); err != nil {
		return params, err
	} else if raw != "" {
		it, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, fmt.Errorf("investigation_time: %w", err)
		}
		params.InvestigationTime = &it
	}

	if raw, err := e.jobs.GetParamOr(ctx, jobID, "truncation_level", ""); err != nil {
		return params, err
	} else if raw != "" {
		tl, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, fmt.Errorf("truncation_level: %w", err)
		}
		params.TruncationLevel = &tl
	}

	return params, nil
}

// SPDX-License-Identifier: Apache-2.0

package gmf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/eventset"
	"github.com/quakelab/hazrisk/internal/gmpe"
	"github.com/quakelab/hazrisk/internal/logictree"
)

// Params carries the calculation parameters the reconstruction needs.
type Params struct {
	IMTs              []domain.IMT
	SESPerPath        int
	InvestigationTime *float64
	TruncationLevel   *float64
	Correlation       CorrelationModel
}

// Reconstructor replays the event sets of a realization through its
// ground-motion models.
type Reconstructor struct {
	sets   *eventset.Repository
	trees  *logictree.Repository
	params Params
	logger *slog.Logger
}

func NewReconstructor(sets *eventset.Repository, trees *logictree.Repository, params Params, logger *slog.Logger) *Reconstructor {
	if logger == nil {
		logger = slog.Default()
	}
	if params.SESPerPath <= 0 {
		params.SESPerPath = 1
	}
	return &Reconstructor{
		sets:   sets,
		trees:  trees,
		params: params,
		logger: logger,
	}
}

// ForRealization streams the ground motion fields of one realization,
// one Set per non-empty stochastic event set. Within an event set the
// occurrences are walked in tag order and IMTs in sorted order, so the
// emitted fields are reproducible. Event sets generating no fields are
// skipped.
func (r *Reconstructor) ForRealization(ctx context.Context, sm logictree.SourceModel, rlz logictree.Realization, sites *domain.SiteCollection, emit func(Set) error) error {
	assocs, err := r.trees.AssocsForRealization(ctx, rlz.ID)
	if err != nil {
		return err
	}
	if len(assocs) == 0 {
		return fmt.Errorf("no GSIMs found for realization %d", rlz.ID)
	}
	variantByTrt := make(map[int64]gmpe.Variant, len(assocs))
	for _, a := range assocs {
		v, err := gmpe.ByName(a.GSIM)
		if err != nil {
			return err
		}
		variantByTrt[a.TrtModelID] = v
	}

	imts := domain.SortIMTs(r.params.IMTs)

	coll, err := r.sets.CollectionForSourceModel(ctx, sm.ID)
	if err != nil {
		return err
	}

	for _, ses := range eventset.EventSets(coll, r.params.SESPerPath, r.params.InvestigationTime) {
		ers, err := r.sets.EventRupturesForSet(ctx, coll.ID, ses.Ordinal)
		if err != nil {
			return err
		}

		var (
			set      = Set{EventSet: ses}
			rup      eventset.Rupture
			rupSites *domain.SiteCollection
			dists    gmpe.Distances
		)
		for _, er := range ers {
			// Occurrences of the same rupture are adjacent in tag
			// order; reload geometry only when the rupture changes.
			if rup.ID != er.RuptureID {
				rup, err = r.sets.GetRupture(ctx, er.RuptureID)
				if err != nil {
					return err
				}
				rupSites = sites.Filtered(rup.SiteIndexInts())
				dists = ruptureDistances(&rup, rupSites)
			}
			if rupSites.Len() == 0 {
				continue
			}
			v, ok := variantByTrt[rup.TrtModelID]
			if !ok {
				return fmt.Errorf("realization %d has no GSIM for trt model %d", rlz.ID, rup.TrtModelID)
			}

			s := newSampler(er.Seed, r.params.TruncationLevel)
			for _, imt := range imts {
				field, err := computeField(v, &rup, er, rupSites, dists, imt, s, r.params.Correlation)
				if err != nil {
					return err
				}
				set.Fields = append(set.Fields, field)
			}
		}

		if len(set.Fields) == 0 {
			continue
		}
		if err := emit(set); err != nil {
			return err
		}
		r.logger.Debug("gmf set reconstructed",
			"ses_collection_id", coll.ID,
			"ses_id", ses.Ordinal,
			"fields", len(set.Fields),
		)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0

package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/gmf"
	"github.com/quakelab/hazrisk/internal/hazard"
	"github.com/quakelab/hazrisk/internal/job"
	"github.com/quakelab/hazrisk/internal/metrics"
)

const (
	defaultCurveChunk = 1000
	maxCurveChunk     = 10000
)

type Deps struct {
	JobRepo    JobReader
	OutputRepo OutputReader
	CurveRepo  CurveExporter
	GMFRepo    GMFExporter
	Logger     *slog.Logger
	Version    string
	Commit     string
	BuildDate  string
}

func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics.Init()
	version := valueOrDefault(deps.Version, "dev")
	commit := valueOrDefault(deps.Commit, "none")
	buildDate := valueOrDefault(deps.BuildDate, "unknown")

	r := chi.NewRouter()
	r.Use(requestIDMiddleware())
	r.Use(requestLoggingMiddleware(logger))

	// ---------------- HEALTH ----------------

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("health check hit")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// ---------------- METRICS ----------------

	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// ---------------- VERSION ----------------

	r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version":    version,
			"commit":     commit,
			"build_date": buildDate,
		})
	})

	// ---------------- JOBS ----------------

	r.Get("/v1/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		jobID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid job ID", http.StatusBadRequest)
			return
		}

		j, err := deps.JobRepo.GetJob(r.Context(), jobID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				logger.Warn("job not found", "job_id", jobID)
				http.Error(w, "job not found", http.StatusNotFound)
				return
			}
			logger.Error("get job failed", "job_id", jobID, "error", err)
			http.Error(w, "failed to get job", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, jobResponse(j))
	})

	r.Get("/v1/jobs/{id}/params", func(w http.ResponseWriter, r *http.Request) {
		jobID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid job ID", http.StatusBadRequest)
			return
		}

		params, err := deps.JobRepo.AllParams(r.Context(), jobID)
		if err != nil {
			logger.Error("list job params failed", "job_id", jobID, "error", err)
			http.Error(w, "failed to list job params", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"job_id": jobID.String(),
			"params": params,
		})
	})

	r.Get("/v1/jobs/{id}/outputs", func(w http.ResponseWriter, r *http.Request) {
		jobID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid job ID", http.StatusBadRequest)
			return
		}

		outputs, err := deps.OutputRepo.OutputsForJob(r.Context(), jobID)
		if err != nil {
			logger.Error("list outputs failed", "job_id", jobID, "error", err)
			http.Error(w, "failed to list outputs", http.StatusInternalServerError)
			return
		}

		resp := make([]map[string]string, 0, len(outputs))
		for _, o := range outputs {
			resp = append(resp, outputResponse(&o))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"job_id":  jobID.String(),
			"outputs": resp,
		})
	})

	// Hazard outputs feeding a risk job, resolved by calculation mode.
	r.Get("/v1/jobs/{id}/hazard_outputs", func(w http.ResponseWriter, r *http.Request) {
		jobID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid job ID", http.StatusBadRequest)
			return
		}

		j, err := deps.JobRepo.GetJob(r.Context(), jobID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				http.Error(w, "job not found", http.StatusNotFound)
				return
			}
			logger.Error("get job failed", "job_id", jobID, "error", err)
			http.Error(w, "failed to get job", http.StatusInternalServerError)
			return
		}

		outputs, err := deps.OutputRepo.HazardOutputs(r.Context(), j)
		if err != nil {
			if errors.Is(err, domain.ErrNoHazardOutput) {
				http.Error(w, "no hazard output configured", http.StatusNotFound)
				return
			}
			logger.Error("resolve hazard outputs failed", "job_id", jobID, "error", err)
			http.Error(w, "failed to resolve hazard outputs", http.StatusInternalServerError)
			return
		}

		resp := make([]map[string]string, 0, len(outputs))
		for _, o := range outputs {
			resp = append(resp, outputResponse(&o))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"job_id":         jobID.String(),
			"hazard_outputs": resp,
		})
	})

	// ---------------- OUTPUTS ----------------

	r.Get("/v1/outputs/{id}", func(w http.ResponseWriter, r *http.Request) {
		outputID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid output ID", http.StatusBadRequest)
			return
		}

		o, err := deps.OutputRepo.GetOutput(r.Context(), outputID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				http.Error(w, "output not found", http.StatusNotFound)
				return
			}
			logger.Error("get output failed", "output_id", outputID, "error", err)
			http.Error(w, "failed to get output", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, outputResponse(o))
	})

	r.Get("/v1/outputs/{id}/hazard_metadata", func(w http.ResponseWriter, r *http.Request) {
		outputID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid output ID", http.StatusBadRequest)
			return
		}

		meta, err := deps.OutputRepo.HazardMetadata(r.Context(), outputID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				http.Error(w, "output not found", http.StatusNotFound)
				return
			}
			logger.Error("resolve hazard metadata failed", "output_id", outputID, "error", err)
			http.Error(w, "failed to resolve hazard metadata", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, hazardMetadataResponse(meta))
	})

	// ---------------- HAZARD CURVE EXPORT ----------------

	r.Get("/v1/outputs/{id}/hazard_curve", func(w http.ResponseWriter, r *http.Request) {
		outputID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid output ID", http.StatusBadRequest)
			return
		}

		offset, limit, err := pageParams(r, defaultCurveChunk, maxCurveChunk)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		c, err := deps.CurveRepo.CurveForOutput(r.Context(), outputID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				http.Error(w, "hazard curve not found", http.StatusNotFound)
				return
			}
			logger.Error("curve for output failed", "output_id", outputID, "error", err)
			http.Error(w, "failed to export hazard curve", http.StatusInternalServerError)
			return
		}

		data, err := deps.CurveRepo.CurveChunk(r.Context(), c.ID, offset, limit)
		if err != nil {
			logger.Error("curve chunk failed", "output_id", outputID, "error", err)
			http.Error(w, "failed to export hazard curve", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, curveResponse(c, data, offset))
	})

	// ---------------- GMF EXPORT ----------------

	r.Get("/v1/outputs/{id}/gmfs", func(w http.ResponseWriter, r *http.Request) {
		outputID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid output ID", http.StatusBadRequest)
			return
		}

		ses, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("ses")))
		if err != nil || ses < 1 {
			http.Error(w, "invalid ses ordinal", http.StatusBadRequest)
			return
		}

		fields, err := deps.GMFRepo.FieldsForOutputSet(r.Context(), outputID, ses)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				http.Error(w, "gmf output not found", http.StatusNotFound)
				return
			}
			logger.Error("gmf export failed", "output_id", outputID, "ses", ses, "error", err)
			http.Error(w, "failed to export ground motion fields", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, gmfResponse(outputID, ses, fields))
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jobResponse(j *job.Job) map[string]any {
	resp := map[string]any{
		"id":               j.ID.String(),
		"description":      j.Description,
		"calculation_mode": j.CalculationMode,
		"status":           string(j.Status),
	}
	if j.HazardOutputID != nil {
		resp["hazard_output_id"] = j.HazardOutputID.String()
	}
	if j.HazardJobID != nil {
		resp["hazard_job_id"] = j.HazardJobID.String()
	}
	return resp
}

func outputResponse(o *job.Output) map[string]string {
	return map[string]string{
		"id":           o.ID.String(),
		"job_id":       o.JobID.String(),
		"output_type":  o.OutputType,
		"display_name": o.DisplayName,
	}
}

func hazardMetadataResponse(meta domain.HazardMetadata) map[string]any {
	resp := map[string]any{
		"statistics": string(meta.Statistics),
		"sm_path":    meta.SMPath,
		"gsim_path":  meta.GSIMPath,
	}
	if meta.InvestigationTime != nil {
		resp["investigation_time"] = *meta.InvestigationTime
	}
	if meta.Quantile != nil {
		resp["quantile"] = *meta.Quantile
	}
	return resp
}

func curveResponse(c hazard.Curve, data []hazard.CurveData, offset int) map[string]any {
	points := make([]map[string]any, 0, len(data))
	for _, d := range data {
		points = append(points, map[string]any{
			"lon":  d.Location.Lon,
			"lat":  d.Location.Lat,
			"poes": d.PoEs,
		})
	}
	resp := map[string]any{
		"imt":                c.IMT.String(),
		"imls":               c.IMLs,
		"investigation_time": c.InvestigationTime,
		"statistics":         string(c.Statistics),
		"offset":             offset,
		"points":             points,
	}
	if c.Quantile != nil {
		resp["quantile"] = *c.Quantile
	}
	return resp
}

func gmfResponse(outputID uuid.UUID, ses int, fields []gmf.Field) map[string]any {
	out := make([]map[string]any, 0, len(fields))
	for _, f := range fields {
		nodes := make([]map[string]float64, 0, len(f.Nodes))
		for _, n := range f.Nodes {
			nodes = append(nodes, map[string]float64{
				"gmv": n.GMV,
				"lon": n.Location.Lon,
				"lat": n.Location.Lat,
			})
		}
		out = append(out, map[string]any{
			"imt":         f.IMT.String(),
			"rupture_tag": f.RuptureTag,
			"nodes":       nodes,
		})
	}
	return map[string]any{
		"output_id": outputID.String(),
		"ses":       ses,
		"fields":    out,
	}
}

func pageParams(r *http.Request, defaultLimit, maxLimit int) (offset, limit int, err error) {
	limit = defaultLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("offset")); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, errors.New("invalid offset")
		}
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, errors.New("invalid limit")
		}
		if limit > maxLimit {
			limit = maxLimit
		}
	}
	return offset, limit, nil
}

func valueOrDefault(value, defaultValue string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue
	}
	return trimmed
}

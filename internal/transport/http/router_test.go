// SPDX-License-Identifier: Apache-2.0

package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/quakelab/hazrisk/internal/domain"
	"github.com/quakelab/hazrisk/internal/gmf"
	"github.com/quakelab/hazrisk/internal/hazard"
	"github.com/quakelab/hazrisk/internal/job"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockJobRepo struct {
	job       *job.Job
	jobErr    error
	params    map[string]string
	paramsErr error
}

func (m *mockJobRepo) GetJob(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	if m.jobErr != nil {
		return nil, m.jobErr
	}
	return m.job, nil
}

func (m *mockJobRepo) AllParams(ctx context.Context, jobID uuid.UUID) (map[string]string, error) {
	return m.params, m.paramsErr
}

type mockOutputRepo struct {
	output        *job.Output
	outputErr     error
	outputs       []job.Output
	hazardOutputs []job.Output
	hazardErr     error
	metadata      domain.HazardMetadata
	metadataErr   error
}

func (m *mockOutputRepo) GetOutput(ctx context.Context, id uuid.UUID) (*job.Output, error) {
	if m.outputErr != nil {
		return nil, m.outputErr
	}
	return m.output, nil
}

func (m *mockOutputRepo) OutputsForJob(ctx context.Context, jobID uuid.UUID) ([]job.Output, error) {
	return m.outputs, nil
}

func (m *mockOutputRepo) HazardOutputs(ctx context.Context, j *job.Job) ([]job.Output, error) {
	if m.hazardErr != nil {
		return nil, m.hazardErr
	}
	return m.hazardOutputs, nil
}

func (m *mockOutputRepo) HazardMetadata(ctx context.Context, hazardOutputID uuid.UUID) (domain.HazardMetadata, error) {
	return m.metadata, m.metadataErr
}

type mockCurveRepo struct {
	curve    hazard.Curve
	curveErr error
	chunk    []hazard.CurveData
	chunkErr error

	gotOffset int
	gotLimit  int
}

func (m *mockCurveRepo) CurveForOutput(ctx context.Context, outputID uuid.UUID) (hazard.Curve, error) {
	if m.curveErr != nil {
		return hazard.Curve{}, m.curveErr
	}
	return m.curve, nil
}

func (m *mockCurveRepo) CurveChunk(ctx context.Context, curveID int64, offset, limit int) ([]hazard.CurveData, error) {
	m.gotOffset = offset
	m.gotLimit = limit
	return m.chunk, m.chunkErr
}

type mockGMFRepo struct {
	fields []gmf.Field
	err    error
	gotSES int
}

func (m *mockGMFRepo) FieldsForOutputSet(ctx context.Context, outputID uuid.UUID, sesOrdinal int) ([]gmf.Field, error) {
	m.gotSES = sesOrdinal
	if m.err != nil {
		return nil, m.err
	}
	return m.fields, nil
}

func TestRouter_Healthz(t *testing.T) {
	router := NewRouter(Deps{Logger: discardLogger()})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("expected body ok got %q", rec.Body.String())
	}
}

func TestRouter_Version(t *testing.T) {
	router := NewRouter(Deps{
		Logger:  discardLogger(),
		Version: "1.2.3",
		Commit:  "abc123",
	})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["version"] != "1.2.3" {
		t.Fatalf("expected version 1.2.3 got %s", resp["version"])
	}
	if resp["commit"] != "abc123" {
		t.Fatalf("expected commit abc123 got %s", resp["commit"])
	}
	if resp["build_date"] != "unknown" {
		t.Fatalf("expected default build_date got %s", resp["build_date"])
	}
}

func TestRouter_GetJob(t *testing.T) {
	j := &job.Job{
		ID:              uuid.New(),
		Description:     "event based hazard",
		CalculationMode: job.ModeEventBased,
		Status:          job.StatusRunning,
	}
	router := NewRouter(Deps{
		JobRepo: &mockJobRepo{job: j},
		Logger:  discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/"+j.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["id"] != j.ID.String() {
		t.Fatalf("expected id %s got %v", j.ID, resp["id"])
	}
	if resp["status"] != string(job.StatusRunning) {
		t.Fatalf("expected status running got %v", resp["status"])
	}
	if _, ok := resp["hazard_output_id"]; ok {
		t.Fatal("expected hazard_output_id to be omitted")
	}
}

func TestRouter_GetJobNotFound(t *testing.T) {
	router := NewRouter(Deps{
		JobRepo: &mockJobRepo{jobErr: pgx.ErrNoRows},
		Logger:  discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 got %d", rec.Code)
	}
}

func TestRouter_GetJobInvalidID(t *testing.T) {
	router := NewRouter(Deps{
		JobRepo: &mockJobRepo{},
		Logger:  discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 got %d", rec.Code)
	}
}

func TestRouter_ListOutputs(t *testing.T) {
	jobID := uuid.New()
	outputs := []job.Output{
		{ID: uuid.New(), JobID: jobID, OutputType: job.OutputGMF, DisplayName: "GMF rlz-1"},
		{ID: uuid.New(), JobID: jobID, OutputType: job.OutputHazardCurve, DisplayName: "mean hazard curves PGA"},
	}
	router := NewRouter(Deps{
		OutputRepo: &mockOutputRepo{outputs: outputs},
		Logger:     discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/"+jobID.String()+"/outputs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}

	var resp struct {
		JobID   string              `json:"job_id"`
		Outputs []map[string]string `json:"outputs"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.JobID != jobID.String() {
		t.Fatalf("expected job_id %s got %s", jobID, resp.JobID)
	}
	if len(resp.Outputs) != 2 {
		t.Fatalf("expected 2 outputs got %d", len(resp.Outputs))
	}
	if resp.Outputs[0]["output_type"] != job.OutputGMF {
		t.Fatalf("expected first output type gmf got %s", resp.Outputs[0]["output_type"])
	}
}

func TestRouter_HazardOutputsNotConfigured(t *testing.T) {
	j := &job.Job{ID: uuid.New(), CalculationMode: job.ModeEventBasedRisk}
	router := NewRouter(Deps{
		JobRepo:    &mockJobRepo{job: j},
		OutputRepo: &mockOutputRepo{hazardErr: domain.ErrNoHazardOutput},
		Logger:     discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/"+j.ID.String()+"/hazard_outputs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 got %d", rec.Code)
	}
}

func TestRouter_HazardMetadata(t *testing.T) {
	it := 50.0
	q := 0.85
	meta := domain.HazardMetadata{
		InvestigationTime: &it,
		Statistics:        domain.StatQuantile,
		Quantile:          &q,
		SMPath:            []string{"b1", "b2"},
		GSIMPath:          []string{"b3"},
	}
	router := NewRouter(Deps{
		OutputRepo: &mockOutputRepo{metadata: meta},
		Logger:     discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/outputs/"+uuid.NewString()+"/hazard_metadata", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["statistics"] != "quantile" {
		t.Fatalf("expected statistics quantile got %v", resp["statistics"])
	}
	if resp["investigation_time"] != 50.0 {
		t.Fatalf("expected investigation_time 50 got %v", resp["investigation_time"])
	}
	if resp["quantile"] != 0.85 {
		t.Fatalf("expected quantile 0.85 got %v", resp["quantile"])
	}
}

func TestRouter_HazardCurveExport(t *testing.T) {
	curveRepo := &mockCurveRepo{
		curve: hazard.Curve{
			ID:                7,
			IMT:               domain.IMT{Type: "PGA"},
			IMLs:              []float64{0.01, 0.02, 0.04},
			InvestigationTime: 50,
			Statistics:        domain.StatMean,
		},
		chunk: []hazard.CurveData{
			{Location: domain.Point{Lon: -117, Lat: 38}, PoEs: []float64{0.9, 0.5, 0.1}},
		},
	}
	router := NewRouter(Deps{
		CurveRepo: curveRepo,
		Logger:    discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet,
		"/v1/outputs/"+uuid.NewString()+"/hazard_curve?offset=10&limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}
	if curveRepo.gotOffset != 10 || curveRepo.gotLimit != 5 {
		t.Fatalf("expected offset=10 limit=5 got offset=%d limit=%d", curveRepo.gotOffset, curveRepo.gotLimit)
	}

	var resp struct {
		IMT        string  `json:"imt"`
		Statistics string  `json:"statistics"`
		Points     []map[string]any
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.IMT != "PGA" {
		t.Fatalf("expected imt PGA got %s", resp.IMT)
	}
	if resp.Statistics != "mean" {
		t.Fatalf("expected statistics mean got %s", resp.Statistics)
	}
	if len(resp.Points) != 1 {
		t.Fatalf("expected 1 point got %d", len(resp.Points))
	}
}

func TestRouter_HazardCurveExportNotFound(t *testing.T) {
	router := NewRouter(Deps{
		CurveRepo: &mockCurveRepo{curveErr: pgx.ErrNoRows},
		Logger:    discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/outputs/"+uuid.NewString()+"/hazard_curve", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 got %d", rec.Code)
	}
}

func TestRouter_GMFExport(t *testing.T) {
	gmfRepo := &mockGMFRepo{
		fields: []gmf.Field{
			{
				IMT:        domain.IMT{Type: "SA", SAPeriod: 0.1, SADamping: 5},
				RuptureTag: "smlt=01|ses=0002|src=A|rup=001-01",
				Nodes: []gmf.Node{
					{GMV: 0.25, Location: domain.Point{Lon: -117, Lat: 38}},
				},
			},
		},
	}
	router := NewRouter(Deps{
		GMFRepo: gmfRepo,
		Logger:  discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/outputs/"+uuid.NewString()+"/gmfs?ses=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}
	if gmfRepo.gotSES != 2 {
		t.Fatalf("expected ses 2 got %d", gmfRepo.gotSES)
	}

	var resp struct {
		SES    int `json:"ses"`
		Fields []struct {
			IMT        string `json:"imt"`
			RuptureTag string `json:"rupture_tag"`
			Nodes      []map[string]float64
		} `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SES != 2 {
		t.Fatalf("expected ses 2 got %d", resp.SES)
	}
	if len(resp.Fields) != 1 {
		t.Fatalf("expected 1 field got %d", len(resp.Fields))
	}
	if resp.Fields[0].IMT != "SA(0.1)" {
		t.Fatalf("expected imt SA(0.1) got %s", resp.Fields[0].IMT)
	}
	if len(resp.Fields[0].Nodes) != 1 || resp.Fields[0].Nodes[0]["gmv"] != 0.25 {
		t.Fatalf("unexpected nodes %v", resp.Fields[0].Nodes)
	}
}

func TestRouter_GMFExportRequiresSES(t *testing.T) {
	router := NewRouter(Deps{
		GMFRepo: &mockGMFRepo{},
		Logger:  discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/outputs/"+uuid.NewString()+"/gmfs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 got %d", rec.Code)
	}
}

func TestRouter_JobParamsError(t *testing.T) {
	router := NewRouter(Deps{
		JobRepo: &mockJobRepo{paramsErr: errors.New("query failed")},
		Logger:  discardLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/"+uuid.NewString()+"/params", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500 got %d", rec.Code)
	}
}

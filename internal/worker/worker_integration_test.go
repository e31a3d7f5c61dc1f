//go:build integration

// SPDX-License-Identifier: Apache-2.0

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quakelab/hazrisk/internal/job"
)

func workerIntegrationPool(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("set DATABASE_URL to run integration tests")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		t.Skipf("skip integration test: cannot create pgx pool (%v)", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("skip integration test: cannot reach database (%v)", err)
	}
	return pool
}

func workerIntegrationJob(t *testing.T, ctx context.Context, pool *pgxpool.Pool) *job.Job {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jobs := job.NewRepository(pool, logger)
	j := &job.Job{Description: "worker-integration", CalculationMode: job.ModeEventBased}
	if err := jobs.CreateJob(ctx, j); err != nil {
		t.Fatalf("create job: %v", err)
	}
	return j
}

func unitStatus(t *testing.T, ctx context.Context, pool *pgxpool.Pool, unitID uuid.UUID) string {
	t.Helper()

	var status string
	if err := pool.QueryRow(ctx,
		`SELECT status FROM calc_units WHERE id=$1`, unitID,
	).Scan(&status); err != nil {
		t.Fatalf("read unit status: %v", err)
	}
	return status
}

func TestWorkerCompletesJobIntegration(t *testing.T) {
	ctx := context.Background()
	pool := workerIntegrationPool(t, ctx)
	defer pool.Close()

	j := workerIntegrationJob(t, ctx, pool)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	exec := &fakeExecutor{}
	w := New(Deps{
		Pool:   pool,
		Logger: logger,
		Executors: map[UnitKind]UnitExecutor{
			UnitGroundMotionFields: exec,
		},
	})

	units := []Unit{
		{Kind: UnitGroundMotionFields, Payload: json.RawMessage(`{"realization_id":1}`)},
		{Kind: UnitGroundMotionFields, Payload: json.RawMessage(`{"realization_id":2}`)},
	}
	if err := w.EnqueueUnits(ctx, j.ID, units); err != nil {
		t.Fatalf("enqueue units: %v", err)
	}

	if err := w.ProcessOnce(ctx); err != nil {
		t.Fatalf("process once #1: %v", err)
	}
	if !exec.called {
		t.Fatal("expected executor to be called")
	}
	if exec.jobID != j.ID {
		t.Fatalf("expected job id %s got %s", j.ID, exec.jobID)
	}

	jobs := job.NewRepository(pool, logger)
	got, err := jobs.GetJob(ctx, j.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if got.Status != job.StatusRunning {
		t.Fatalf("expected job status %s after first unit got %s", job.StatusRunning, got.Status)
	}

	if err := w.ProcessOnce(ctx); err != nil {
		t.Fatalf("process once #2: %v", err)
	}

	got, err = jobs.GetJob(ctx, j.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if got.Status != job.StatusComplete {
		t.Fatalf("expected job status %s got %s", job.StatusComplete, got.Status)
	}
	for _, u := range units {
		if s := unitStatus(t, ctx, pool, u.ID); s != "done" {
			t.Fatalf("expected unit %s done got %s", u.ID, s)
		}
	}
}

func TestWorkerFailsJobWithoutRetryIntegration(t *testing.T) {
	ctx := context.Background()
	pool := workerIntegrationPool(t, ctx)
	defer pool.Close()

	j := workerIntegrationJob(t, ctx, pool)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	exec := &fakeExecutor{err: errors.New("boom")}
	w := New(Deps{
		Pool:   pool,
		Logger: logger,
		Executors: map[UnitKind]UnitExecutor{
			UnitHazardCurveStats: exec,
		},
	})

	units := []Unit{
		{Kind: UnitHazardCurveStats, Payload: json.RawMessage(`{"imt":"PGA"}`)},
		{Kind: UnitHazardCurveStats, Payload: json.RawMessage(`{"imt":"SA(0.1)"}`)},
	}
	if err := w.EnqueueUnits(ctx, j.ID, units); err != nil {
		t.Fatalf("enqueue units: %v", err)
	}

	if err := w.ProcessOnce(ctx); err != nil {
		t.Fatalf("process once: %v", err)
	}

	if s := unitStatus(t, ctx, pool, units[0].ID); s != "failed" {
		t.Fatalf("expected unit status failed got %s", s)
	}

	jobs := job.NewRepository(pool, logger)
	got, err := jobs.GetJob(ctx, j.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if got.Status != job.StatusFailed {
		t.Fatalf("expected job status %s got %s", job.StatusFailed, got.Status)
	}

	// Units of a failed job are never claimed again.
	exec.called = false
	if err := w.ProcessOnce(ctx); err != nil {
		t.Fatalf("process once on failed job: %v", err)
	}
	if exec.called {
		t.Fatal("expected no unit to be claimed for a failed job")
	}
	if s := unitStatus(t, ctx, pool, units[1].ID); s != "pending" {
		t.Fatalf("expected remaining unit pending got %s", s)
	}
}

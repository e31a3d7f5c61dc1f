// SPDX-License-Identifier: Apache-2.0

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type fakeExecutor struct {
	err     error
	called  bool
	jobID   uuid.UUID
	payload json.RawMessage
}

func (f *fakeExecutor) Execute(ctx context.Context, jobID uuid.UUID, payload json.RawMessage) error {
	f.called = true
	f.jobID = jobID
	f.payload = payload
	return f.err
}

func TestNewDefaults(t *testing.T) {
	w := New(Deps{})

	if w.logger == nil {
		t.Fatal("expected default logger to be set")
	}
	if w.httpClient == nil {
		t.Fatal("expected default http client to be set")
	}
}

func TestNewCustomValues(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	execs := map[UnitKind]UnitExecutor{
		UnitGroundMotionFields: &fakeExecutor{},
	}

	w := New(Deps{
		Logger:        logger,
		Executors:     execs,
		WebhookURL:    "http://webhook.local/callback",
		WebhookSecret: "secret",
	})

	if w.logger != logger {
		t.Fatal("expected provided logger to be used")
	}
	if len(w.executors) != 1 {
		t.Fatalf("expected 1 executor got %d", len(w.executors))
	}
	if w.webhookURL != "http://webhook.local/callback" {
		t.Fatalf("unexpected webhook url %q", w.webhookURL)
	}
}

func TestExecuteUnitSuccess(t *testing.T) {
	jobID := uuid.New()
	payload := json.RawMessage(`{"realization_id":3}`)
	exec := &fakeExecutor{}

	w := &Worker{
		executors: map[UnitKind]UnitExecutor{
			UnitGroundMotionFields: exec,
		},
	}

	err := w.executeUnit(context.Background(), claimedUnit{
		JobID:   jobID,
		Kind:    UnitGroundMotionFields,
		Payload: payload,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !exec.called {
		t.Fatal("expected executor to be called")
	}
	if exec.jobID != jobID {
		t.Fatalf("expected job id %s got %s", jobID, exec.jobID)
	}
	if string(exec.payload) != string(payload) {
		t.Fatalf("expected payload %s got %s", payload, exec.payload)
	}
}

func TestExecuteUnitError(t *testing.T) {
	wantErr := errors.New("boom")
	exec := &fakeExecutor{err: wantErr}

	w := &Worker{
		executors: map[UnitKind]UnitExecutor{
			UnitHazardCurveStats: exec,
		},
	}

	err := w.executeUnit(context.Background(), claimedUnit{
		JobID: uuid.New(),
		Kind:  UnitHazardCurveStats,
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected error %v got %v", wantErr, err)
	}
}

func TestExecuteUnitMissingExecutor(t *testing.T) {
	w := &Worker{
		executors: map[UnitKind]UnitExecutor{},
	}

	err := w.executeUnit(context.Background(), claimedUnit{
		JobID: uuid.New(),
		Kind:  UnitKind("unknown"),
	})
	if err == nil {
		t.Fatal("expected missing executor error")
	}
	if !strings.Contains(err.Error(), "no executor registered") {
		t.Fatalf("unexpected error: %v", err)
	}
}

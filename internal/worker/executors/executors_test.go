// SPDX-License-Identifier: Apache-2.0

package executors

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestGMFExecutorRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	exec := NewGMFExecutor(nil, nil, nil, nil, nil, nil, nil)
	err := exec.Execute(context.Background(), uuid.New(), json.RawMessage(`{`))
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestCurveStatsExecutorRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	exec := NewCurveStatsExecutor(nil, nil, nil, nil, nil)
	err := exec.Execute(context.Background(), uuid.New(), json.RawMessage(`{`))
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestCurveStatsExecutorRejectsBadIMT(t *testing.T) {
	t.Parallel()

	exec := NewCurveStatsExecutor(nil, nil, nil, nil, nil)
	err := exec.Execute(context.Background(), uuid.New(), json.RawMessage(`{"imt":"BOGUS(1)"}`))
	if err == nil {
		t.Fatal("expected error for unknown intensity measure type")
	}
}

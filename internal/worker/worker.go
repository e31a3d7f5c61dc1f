// SPDX-License-Identifier: Apache-2.0

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quakelab/hazrisk/internal/job"
	"github.com/quakelab/hazrisk/internal/metrics"
)

type Deps struct {
	Pool          *pgxpool.Pool
	Logger        *slog.Logger
	Executors     map[UnitKind]UnitExecutor
	HTTPClient    *http.Client
	WebhookURL    string
	WebhookSecret string
}

// Worker claims pending calculation units one at a time and runs them
// to completion. A unit is single-threaded and either succeeds or is
// marked failed; there are no retries.
type Worker struct {
	pool          *pgxpool.Pool
	logger        *slog.Logger
	executors     map[UnitKind]UnitExecutor
	httpClient    *http.Client
	webhookURL    string
	webhookSecret string
}

func New(deps Deps) *Worker {
	l := deps.Logger
	if l == nil {
		l = slog.Default()
	}
	client := deps.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Worker{
		pool:          deps.Pool,
		logger:        l,
		executors:     deps.Executors,
		httpClient:    client,
		webhookURL:    deps.WebhookURL,
		webhookSecret: deps.WebhookSecret,
	}
}

type claimedUnit struct {
	ID      uuid.UUID
	JobID   uuid.UUID
	Kind    UnitKind
	Payload json.RawMessage
}

// ProcessOnce claims and executes a single pending unit. It returns
// nil when no unit is available.
func (w *Worker) ProcessOnce(ctx context.Context) error {
	unit, ok, err := w.claimOneUnit(ctx)
	if err != nil {
		w.logger.Error("claim unit failed", "error", err)
		return err
	}
	if !ok {
		return nil
	}

	w.logger.Info("unit claimed",
		"unit_id", unit.ID,
		"job_id", unit.JobID,
		"kind", unit.Kind,
	)

	started := time.Now()
	execErr := w.executeUnit(ctx, unit)
	metrics.ObserveUnitDuration(string(unit.Kind), time.Since(started))

	if execErr != nil {
		w.logger.Error("unit execution failed",
			"unit_id", unit.ID,
			"job_id", unit.JobID,
			"kind", unit.Kind,
			"error", execErr,
		)
		return w.markUnitFailed(ctx, unit, execErr)
	}

	if err := w.markUnitDone(ctx, unit); err != nil {
		w.logger.Error("mark unit done failed",
			"unit_id", unit.ID,
			"job_id", unit.JobID,
			"error", err,
		)
		return err
	}

	w.logger.Info("unit completed",
		"unit_id", unit.ID,
		"job_id", unit.JobID,
		"kind", unit.Kind,
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return nil
}

// Run processes units until the context is canceled, sleeping between
// polls when the queue is empty.
func (w *Worker) Run(ctx context.Context, pollInterval time.Duration) error {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.ProcessOnce(ctx); err != nil {
				w.logger.Error("process unit failed", "error", err)
			}
		}
	}
}

// EnqueueUnits inserts pending units for a job in one transaction.
func (w *Worker) EnqueueUnits(ctx context.Context, jobID uuid.UUID, units []Unit) error {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		w.logger.Error("begin tx failed", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	for i := range units {
		units[i].ID = uuid.New()
		payload := units[i].Payload
		if payload == nil {
			payload = json.RawMessage(`{}`)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO calc_units (id, job_id, kind, payload, status)
			 VALUES ($1, $2, $3, $4::jsonb, 'pending')`,
			units[i].ID, jobID, units[i].Kind, payload,
		); err != nil {
			w.logger.Error("insert calc unit failed", "job_id", jobID, "kind", units[i].Kind, "error", err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		w.logger.Error("commit failed", "job_id", jobID, "error", err)
		return err
	}
	w.logger.Info("units enqueued", "job_id", jobID, "units", len(units))
	return nil
}

func (w *Worker) claimOneUnit(ctx context.Context) (claimedUnit, bool, error) {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return claimedUnit{}, false, err
	}
	defer tx.Rollback(ctx)

	var (
		u       claimedUnit
		kindStr string
	)
	err = tx.QueryRow(ctx, `
		SELECT cu.id, cu.job_id, cu.kind, cu.payload
		FROM calc_units cu
		JOIN jobs j ON j.id = cu.job_id
		WHERE cu.status = 'pending'
		  AND j.status NOT IN ($1, $2)
		ORDER BY cu.created_at ASC
		FOR UPDATE OF cu SKIP LOCKED
		LIMIT 1
	`, job.StatusFailed, job.StatusComplete,
	).Scan(&u.ID, &u.JobID, &kindStr, &u.Payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return claimedUnit{}, false, tx.Commit(ctx)
	}
	if err != nil {
		return claimedUnit{}, false, err
	}
	u.Kind = UnitKind(kindStr)

	if _, err := tx.Exec(ctx, `
		UPDATE calc_units
		SET status='running', claimed_at=NOW()
		WHERE id=$1
	`, u.ID); err != nil {
		return claimedUnit{}, false, err
	}

	// Mark the job running on its first claimed unit.
	if _, err := tx.Exec(ctx, `
		UPDATE jobs
		SET status=$2, updated_at=NOW()
		WHERE id=$1 AND status=$3
	`, u.JobID, job.StatusRunning, job.StatusPending); err != nil {
		return claimedUnit{}, false, err
	}

	return u, true, tx.Commit(ctx)
}

func (w *Worker) executeUnit(ctx context.Context, u claimedUnit) error {
	executor, ok := w.executors[u.Kind]
	if !ok {
		return errors.New("no executor registered for unit kind: " + string(u.Kind))
	}
	return executor.Execute(ctx, u.JobID, u.Payload)
}

func (w *Worker) markUnitDone(ctx context.Context, u claimedUnit) error {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		UPDATE calc_units
		SET status='done', finished_at=NOW()
		WHERE id=$1
	`, u.ID); err != nil {
		return err
	}

	// When the last unit finishes the job is complete.
	tag, err := tx.Exec(ctx, `
		UPDATE jobs j
		SET status=$2, updated_at=NOW()
		WHERE j.id=$1
		  AND j.status=$3
		  AND NOT EXISTS (
			SELECT 1 FROM calc_units cu
			WHERE cu.job_id=j.id AND cu.status <> 'done'
		  )
	`, u.JobID, job.StatusComplete, job.StatusRunning)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if tag.RowsAffected() > 0 {
		w.logger.Info("job completed", "job_id", u.JobID)
		w.deliverTerminalWebhook(ctx, u.JobID, job.StatusComplete, time.Now(),
			w.webhookURL, w.webhookSecret)
	}
	return nil
}

// markUnitFailed permanently fails the unit and its job. Fatal errors
// are not retried.
func (w *Worker) markUnitFailed(ctx context.Context, u claimedUnit, execErr error) error {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		UPDATE calc_units
		SET status='failed', error=$2, finished_at=NOW()
		WHERE id=$1
	`, u.ID, execErr.Error()); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE jobs
		SET status=$2, updated_at=NOW()
		WHERE id=$1
	`, u.JobID, job.StatusFailed); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	w.deliverTerminalWebhook(ctx, u.JobID, job.StatusFailed, time.Now(),
		w.webhookURL, w.webhookSecret)
	return nil
}

// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quakelab/hazrisk/internal/config"
	"github.com/quakelab/hazrisk/internal/eventset"
	"github.com/quakelab/hazrisk/internal/gmf"
	"github.com/quakelab/hazrisk/internal/hazard"
	"github.com/quakelab/hazrisk/internal/job"
	"github.com/quakelab/hazrisk/internal/logging"
	"github.com/quakelab/hazrisk/internal/logictree"
	"github.com/quakelab/hazrisk/internal/persistence/postgres"
	"github.com/quakelab/hazrisk/internal/worker"
	"github.com/quakelab/hazrisk/internal/worker/executors"
)

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if err := postgres.SchemaReady(ctx, pool); err != nil {
		log.Fatalf("schema not ready: %v", err)
	}

	jobRepo := job.NewRepository(pool, logger)
	outputRepo := job.NewOutputRepository(pool, logger)
	treeRepo := logictree.NewRepository(pool, logger)
	setRepo := eventset.NewRepository(pool, logger)
	siteRepo := hazard.NewSiteRepository(pool, logger)
	curveRepo := hazard.NewCurveRepository(pool, logger)
	gmfRepo := gmf.NewDataRepository(pool, logger)

	w := worker.New(worker.Deps{
		Pool:   pool,
		Logger: logger,
		Executors: map[worker.UnitKind]worker.UnitExecutor{
			worker.UnitGroundMotionFields: executors.NewGMFExecutor(
				jobRepo, outputRepo, treeRepo, setRepo, siteRepo, gmfRepo, logger),
			worker.UnitHazardCurveStats: executors.NewCurveStatsExecutor(
				jobRepo, outputRepo, treeRepo, curveRepo, logger),
		},
		WebhookURL:    cfg.WebhookURL,
		WebhookSecret: cfg.WebhookSecret,
	})

	logger.Info("worker started")

	if err := w.Run(ctx, 800*time.Millisecond); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("worker stopped")
}

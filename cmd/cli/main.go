// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/quakelab/hazrisk/internal/config"
	"github.com/quakelab/hazrisk/internal/domain"
)

func main() {
	logger := newLogger()

	if len(os.Args) < 3 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "validate":
		if err := runValidate(logger, os.Args[2]); err != nil {
			logger.Error("validation failed", "path", os.Args[2], "error", err)
			os.Exit(1)
		}
		logger.Info("validation passed", "path", os.Args[2])
	default:
		printUsage(os.Stderr)
		os.Exit(2)
	}
}

// runValidate checks a calculation profile before it is handed to a
// job: IMT spellings, monotonic intensity levels, quantiles and bin
// widths in range.
func runValidate(logger *slog.Logger, path string) error {
	params, err := config.LoadCalculationParams(path)
	if err != nil {
		return err
	}

	if len(params.IntensityMeasureLevels) == 0 {
		return fmt.Errorf("no intensity measure types defined")
	}

	imts := make([]string, 0, len(params.IntensityMeasureLevels))
	for raw := range params.IntensityMeasureLevels {
		imts = append(imts, raw)
	}
	sort.Strings(imts)

	for _, raw := range imts {
		imt, err := domain.ParseIMT(raw)
		if err != nil {
			return err
		}
		levels := params.IntensityMeasureLevels[raw]
		if len(levels) == 0 {
			return fmt.Errorf("imt %s has no intensity levels", imt)
		}
		for i := 1; i < len(levels); i++ {
			if levels[i] <= levels[i-1] {
				return fmt.Errorf("imt %s levels not strictly increasing at index %d", imt, i)
			}
		}
		logger.Info("imt ok", "imt", imt.String(), "levels", len(levels))
	}

	for _, q := range params.QuantileHazardCurves {
		if q < 0 || q > 1 {
			return fmt.Errorf("quantile_hazard_curves out of range: %g", q)
		}
	}
	for _, q := range params.QuantileLossCurves {
		if q < 0 || q > 1 {
			return fmt.Errorf("quantile_loss_curves out of range: %g", q)
		}
	}
	for _, p := range params.ConditionalLossPoes {
		if p < 0 || p > 1 {
			return fmt.Errorf("conditional_loss_poes out of range: %g", p)
		}
	}

	if params.InvestigationTime < 0 {
		return fmt.Errorf("investigation_time must not be negative")
	}
	if params.TruncationLevel != nil && *params.TruncationLevel < 0 {
		return fmt.Errorf("truncation_level must not be negative")
	}
	if params.MagBinWidth < 0 || params.DistanceBinWidth < 0 || params.CoordinateBinWidth < 0 {
		return fmt.Errorf("bin widths must not be negative")
	}

	logger.Info("profile summary",
		"description", params.Description,
		"investigation_time", params.InvestigationTime,
		"ses_per_logic_tree_path", params.SESPerLogicTreePath,
		"quantiles", len(params.QuantileHazardCurves),
		"insured_losses", params.InsuredLosses,
	)
	return nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}))
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}

func printUsage(w *os.File) {
	_, _ = fmt.Fprintln(w, "usage: go run ./cmd/cli validate <calc.yaml>")
}

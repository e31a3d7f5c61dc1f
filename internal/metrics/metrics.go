// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	initOnce sync.Once

	jobsTotalCounter           *prometheus.CounterVec
	outputsTotalCounter        *prometheus.CounterVec
	unitDurationMetric         *prometheus.HistogramVec
	fieldsPerRealizationMetric prometheus.Histogram
	assetChunkSizeMetric       prometheus.Histogram
)

// Init registers metrics on the default Prometheus registry exactly once.
func Init() {
	initOnce.Do(func() {
		jobsTotalCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobs_total",
				Help: "Total number of job status transitions by status.",
			},
			[]string{"status"},
		)

		outputsTotalCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outputs_total",
				Help: "Total number of calculation outputs created by type.",
			},
			[]string{"type"},
		)

		unitDurationMetric = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calc_unit_duration_seconds",
				Help:    "Duration of calculation unit executions in seconds by kind.",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
			[]string{"kind"},
		)

		fieldsPerRealizationMetric = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gmf_fields_per_realization",
				Help:    "Number of ground motion fields reconstructed per realization.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		)

		assetChunkSizeMetric = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "exposure_asset_chunk_size",
				Help:    "Number of assets returned per exposure chunk query.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		)

		prometheus.MustRegister(
			jobsTotalCounter,
			outputsTotalCounter,
			unitDurationMetric,
			fieldsPerRealizationMetric,
			assetChunkSizeMetric,
		)

		// Ensure counter vectors are visible at /metrics before first increment.
		for _, status := range []string{"pending", "running", "complete", "failed"} {
			jobsTotalCounter.WithLabelValues(status)
		}
	})
}

func IncJobStatus(status string) {
	Init()
	jobsTotalCounter.WithLabelValues(status).Inc()
}

func IncOutput(outputType string) {
	Init()
	outputsTotalCounter.WithLabelValues(outputType).Inc()
}

func ObserveUnitDuration(kind string, d time.Duration) {
	Init()
	unitDurationMetric.WithLabelValues(kind).Observe(d.Seconds())
}

func ObserveFieldsPerRealization(n int) {
	Init()
	fieldsPerRealizationMetric.Observe(float64(n))
}

func ObserveAssetChunkSize(n int) {
	Init()
	assetChunkSizeMetric.Observe(float64(n))
}

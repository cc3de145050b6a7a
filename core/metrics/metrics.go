// Package metrics exposes Prometheus collectors for upstream calls and sync runs.
//
// Collectors register with the default registry. The serve command publishes
// them on GET /metrics.
package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSuccess   = "success"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
)

var (
	// UpstreamRequestsTotal counts AoE4 World requests by endpoint and outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aoe4sync_upstream_requests_total",
			Help: "Total number of requests made to the AoE4 World API",
		},
		[]string{"endpoint", "outcome"},
	)

	// RowsWrittenTotal counts upserted rows by dataset kind.
	RowsWrittenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aoe4sync_rows_written_total",
			Help: "Total number of rows upserted",
		},
		[]string{"dataset"},
	)

	// RowsDroppedTotal counts meta-stat rows skipped because the civilization was unknown.
	RowsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aoe4sync_rows_dropped_total",
			Help: "Total number of rows dropped for unresolved civilizations",
		},
	)

	// DatasetFailuresTotal counts datasets that aborted.
	DatasetFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aoe4sync_dataset_failures_total",
			Help: "Total number of datasets that failed to sync",
		},
		[]string{"dataset"},
	)

	// SyncDuration observes whole sync runs.
	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aoe4sync_sync_duration_seconds",
			Help:    "Duration of sync runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"mode"},
	)
)

// RecordUpstream records one upstream request.
func RecordUpstream(endpoint, outcome string) {
	UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// RecordWritten adds n upserted rows for dataset.
func RecordWritten(dataset string, n int) {
	if n > 0 {
		RowsWrittenTotal.WithLabelValues(dataset).Add(float64(n))
	}
}

// RecordDropped adds n dropped rows.
func RecordDropped(n int) {
	if n > 0 {
		RowsDroppedTotal.Add(float64(n))
	}
}

// RecordFailure counts a failed dataset.
func RecordFailure(dataset string) {
	DatasetFailuresTotal.WithLabelValues(dataset).Inc()
}

// ObserveSync records the duration of a run that started at start.
func ObserveSync(mode string, start time.Time) {
	SyncDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}

// Handler serves the default registry through fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

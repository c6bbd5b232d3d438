// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "karaoke_http_requests_total",
			Help: "Total HTTP requests by method, route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "karaoke_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Requests
	RequestsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "karaoke_requests_created_total",
			Help: "Song requests submitted",
		},
	)

	RequestsProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "karaoke_requests_processed_total",
			Help: "Song requests marked processed",
		},
	)

	// Catalog
	CatalogImportItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "karaoke_catalog_import_items_total",
			Help: "Bulk import items by outcome",
		},
		[]string{"outcome"}, // imported, skipped, error
	)

	// API keys
	APIKeyVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "karaoke_api_key_verifications_total",
			Help: "API key verifications by outcome",
		},
		[]string{"outcome"}, // valid, malformed, unknown, inactive, error
	)

	// Push
	WSSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "karaoke_ws_subscribers",
			Help: "Live venue feed subscribers currently connected",
		},
	)

	WSDroppedMessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "karaoke_ws_dropped_messages_total",
			Help: "Push messages dropped because a subscriber was too slow",
		},
	)

	// Sessions
	DenylistHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "karaoke_denylist_hits_total",
			Help: "Access tokens rejected because they were logged out",
		},
	)
)

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordImport adds the outcome counts of one bulk import.
func RecordImport(imported, skipped, errs int) {
	CatalogImportItemsTotal.WithLabelValues("imported").Add(float64(imported))
	CatalogImportItemsTotal.WithLabelValues("skipped").Add(float64(skipped))
	CatalogImportItemsTotal.WithLabelValues("error").Add(float64(errs))
}

// RecordAPIKeyVerification counts one verification outcome.
func RecordAPIKeyVerification(outcome string) {
	APIKeyVerificationsTotal.WithLabelValues(outcome).Inc()
}

// Package metrics defines and registers all custom Prometheus metrics for the
// quotation API. It is the single source of truth for metric names, labels,
// and help strings. Metrics are registered with the default registry via
// promauto at package init and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quotation"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled HTTP requests by method, route, and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by method, path, and status code.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method, path, and status code.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path", "status"},
)

// ── Quote metrics ─────────────────────────────────────────────────────────────

// QuotesCreatedTotal counts new quote sessions.
var QuotesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_created_total",
		Help:      "Total number of quote sessions created.",
	},
)

// ItemsAddedTotal counts successful add-to-cart operations.
// Label:
//   - product_id: catalog id (bounded: the catalog is a small static list)
var ItemsAddedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_added_total",
		Help:      "Total number of cart lines added or incremented, by product.",
	},
	[]string{"product_id"},
)

// StockRejectionsTotal counts add-to-cart attempts rejected for exceeding the
// declared stock.
var StockRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_rejections_total",
		Help:      "Total number of cart additions rejected due to insufficient stock, by product.",
	},
	[]string{"product_id"},
)

// ── Artifact metrics ──────────────────────────────────────────────────────────

// DocumentsGeneratedTotal counts rendered documents.
// Label:
//   - mode: "quote" or "reservation"
var DocumentsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_generated_total",
		Help:      "Total number of PDF documents generated, by mode.",
	},
	[]string{"mode"},
)

// DocumentGenerationDuration measures end-to-end document rendering time.
var DocumentGenerationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "document_generation_duration_seconds",
		Help:      "Duration of PDF document generation, by mode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"mode"},
)

// CodeFailuresTotal counts scannable-code generation failures. The document
// is still produced without the code; this counter is the only trace.
var CodeFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "code_failures_total",
		Help:      "Total number of QR code generation failures (document degraded, not blocked).",
	},
)

// MessageLinksTotal counts generated WhatsApp deep links.
var MessageLinksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "message_links_total",
		Help:      "Total number of WhatsApp message links generated.",
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsActive tracks the number of live quote sessions in the store.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of live quote sessions held in memory.",
	},
)

// SessionsExpiredTotal counts sessions removed by the TTL sweeper.
var SessionsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_expired_total",
		Help:      "Total number of quote sessions expired and swept.",
	},
)

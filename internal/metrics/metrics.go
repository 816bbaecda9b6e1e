package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	ItemsEnqueued       prometheus.Counter
	NotificationsSent   *prometheus.CounterVec
	NotificationsFailed *prometheus.CounterVec
	DeliveryLatency     *prometheus.HistogramVec
	MetadataRetries     prometheus.Counter
	ItemsDropped        prometheus.Counter
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct. queueLen feeds a gauge reporting the
// current pending-queue depth at scrape time.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer, queueLen func() int) *Metrics {
	m := &Metrics{
		ItemsEnqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "items_enqueued_total",
			Help: "Total number of item-added events accepted into the pending queue.",
		}),

		NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of successfully delivered notifications.",
		}, []string{"sink"}),

		NotificationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_failed_total",
			Help: "Total number of failed delivery attempts.",
		}, []string{"sink"}),

		DeliveryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "notification_delivery_seconds",
			Help:    "Latency of a single deliver call, per sink kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"sink"}),

		MetadataRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metadata_retries_total",
			Help: "Total number of not-yet-ready requeues by the reconcile loop.",
		}),

		ItemsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "items_dropped_total",
			Help: "Total number of queue entries dropped because the catalog lookup failed.",
		}),
	}

	queueDepth := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "pending_queue_depth",
		Help: "Current number of items waiting for metadata.",
	}, func() float64 { return float64(queueLen()) })

	reg.MustRegister(
		m.ItemsEnqueued,
		m.NotificationsSent,
		m.NotificationsFailed,
		m.DeliveryLatency,
		m.MetadataRetries,
		m.ItemsDropped,
		queueDepth,
	)

	return m
}

// ReconcilerHooks returns the metric callback functions expected by
// reconciler.MetricHooks. Centralises the prometheus observation calls so
// the reconciler stays metrics-agnostic.
func (m *Metrics) ReconcilerHooks() (
	onSent func(sinkKind string, latency time.Duration),
	onFailed func(sinkKind string),
	onRetry func(),
	onDrop func(),
) {
	onSent = func(sinkKind string, latency time.Duration) {
		m.NotificationsSent.WithLabelValues(sinkKind).Inc()
		m.DeliveryLatency.WithLabelValues(sinkKind).Observe(latency.Seconds())
	}
	onFailed = func(sinkKind string) {
		m.NotificationsFailed.WithLabelValues(sinkKind).Inc()
	}
	onRetry = func() {
		m.MetadataRetries.Inc()
	}
	onDrop = func() {
		m.ItemsDropped.Inc()
	}
	return
}

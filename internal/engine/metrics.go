package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	reconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netfabric",
			Subsystem: "engine",
			Name:      "reconcile_total",
			Help:      "Total number of reconciliations by kind and result",
		},
		[]string{"kind", "result"},
	)

	reconcileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "netfabric",
			Subsystem: "engine",
			Name:      "reconcile_duration_seconds",
			Help:      "Duration of reconciliation in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"kind"},
	)

	reconcileFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netfabric",
			Subsystem: "engine",
			Name:      "reconcile_failures_total",
			Help:      "Total number of reconcile failures by kind and failure class",
		},
		[]string{"kind", "class"},
	)

	queueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "netfabric",
			Subsystem: "engine",
			Name:      "queue_depth",
			Help:      "Number of identities waiting in the reconcile queue",
		},
	)
)

func init() {
	// Register metrics with controller-runtime's registry
	metrics.Registry.MustRegister(
		reconcileTotal,
		reconcileDuration,
		reconcileFailures,
		queueDepth,
	)
}

func recordReconcile(kind, result string, duration float64) {
	reconcileTotal.WithLabelValues(kind, result).Inc()
	reconcileDuration.WithLabelValues(kind).Observe(duration)
}

func recordFailure(kind, class string) {
	reconcileFailures.WithLabelValues(kind, class).Inc()
}

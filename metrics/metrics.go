// Package metrics exposes the adjudicator's Prometheus instrumentation,
// grounded on the teacher's github.com/prometheus/client_golang wiring
// (lnd registers its RPC/peer counters the same way: package-level
// collectors registered once at daemon startup, incremented inline at the
// call site).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors bundles every metric the daemon registers. A single instance
// is constructed at startup; the operation metrics are recorded by
// UnaryServerInterceptor. DisputesActive is registered but no code in this
// repository sets it, so it stays at zero.
type Collectors struct {
	OperationsTotal   *prometheus.CounterVec
	OperationFailures *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	DisputesActive    prometheus.Gauge
}

// New constructs and registers a Collectors against reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adjudicator",
			Name:      "operations_total",
			Help:      "Total adjudicator operations attempted, by method.",
		}, []string{"method"}),
		OperationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adjudicator",
			Name:      "operation_failures_total",
			Help:      "Total adjudicator operations that returned an error, by method and error kind.",
		}, []string{"method", "kind"}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "adjudicator",
			Name:      "operation_duration_seconds",
			Help:      "Adjudicator operation latency, by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		DisputesActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "adjudicator",
			Name:      "disputes_active",
			Help:      "Disputes currently registered and not yet concluded.",
		}),
	}

	reg.MustRegister(
		c.OperationsTotal,
		c.OperationFailures,
		c.OperationDuration,
		c.DisputesActive,
	)
	return c
}

// ObserveResult records one completed operation: a total increment, a
// latency observation, and — on failure — a per-kind failure increment.
func (c *Collectors) ObserveResult(method string, seconds float64, kind string) {
	c.OperationsTotal.WithLabelValues(method).Inc()
	c.OperationDuration.WithLabelValues(method).Observe(seconds)
	if kind != "" {
		c.OperationFailures.WithLabelValues(method, kind).Inc()
	}
}

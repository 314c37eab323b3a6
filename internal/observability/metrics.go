package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Upstream label values.
const (
	UpstreamIPLocation = "iplocation"
	UpstreamNWSPoints  = "nws_points"
	UpstreamNWSHourly  = "nws_hourly"
)

// Metrics holds the Prometheus collectors for a single yawcli run. Each
// Metrics owns its registry, so runs and tests never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	UpstreamRequests *prometheus.CounterVec   // labels: upstream, outcome={success,error}
	UpstreamDuration *prometheus.HistogramVec // labels: upstream
	PeriodsRendered  prometheus.Counter
	LastRunSuccess   prometheus.Gauge
	LastRunDuration  prometheus.Gauge
}

// NewMetrics creates and registers all run metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yawcli",
			Name:      "upstream_requests_total",
			Help:      "Upstream HTTP requests by upstream and outcome.",
		}, []string{"upstream", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "yawcli",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream HTTP request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"upstream"}),
		PeriodsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "yawcli",
			Name:      "periods_rendered_total",
			Help:      "Forecast periods written to the report.",
		}),
		LastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "yawcli",
			Name:      "last_run_success",
			Help:      "1 if the last run completed without error, 0 otherwise.",
		}),
		LastRunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "yawcli",
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the last run in seconds.",
		}),
	}

	m.registry.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.PeriodsRendered,
		m.LastRunSuccess,
		m.LastRunDuration,
	)

	return m
}

// ObserveRequest records one upstream request outcome.
func (m *Metrics) ObserveRequest(upstream string, err error, seconds float64) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.UpstreamRequests.WithLabelValues(upstream, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(upstream).Observe(seconds)
}

// WriteTextfile writes all metrics in Prometheus text format to path, for
// pickup by node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Gatherer exposes the registry, mainly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

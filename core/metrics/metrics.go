package metrics

import (
	"time"

	"particle-audit/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "particle_audit"

	propertyLabelName = "property"
	setLabelName      = "set"
	statusLabelName   = "status"

	successStatusLabel = "success"
	failStatusLabel    = "fail"
)

// Metrics exposes the outcome of the most recent reconciliation.
type Metrics struct {
	registry *prometheus.Registry

	differences *prometheus.GaugeVec
	particles   *prometheus.GaugeVec
	skipped     prometheus.Gauge
	runs        *prometheus.CounterVec
	duration    prometheus.Histogram
	lastSuccess prometheus.Gauge
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		differences: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "differences",
			Help:      "Reportable differences per property in the last reconciliation.",
		}, []string{propertyLabelName}),
		particles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "particles",
			Help:      "Particle identifiers per set in the last reconciliation.",
		}, []string{setLabelName}),
		skipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "skipped_lines",
			Help:      "Malformed table lines skipped in the last reconciliation.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Reconciliation runs by outcome.",
		}, []string{statusLabelName}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Time spent loading and reconciling both tables.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful reconciliation.",
		}),
	}

	m.registry.MustRegister(
		m.differences,
		m.particles,
		m.skipped,
		m.runs,
		m.duration,
		m.lastSuccess,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records a successful reconciliation.
func (m *Metrics) Observe(res *reconcile.Result, elapsed time.Duration) {
	m.differences.WithLabelValues("mass").Set(float64(res.Counts.Mass))
	m.differences.WithLabelValues("width").Set(float64(res.Counts.Width))
	m.differences.WithLabelValues("charge").Set(float64(res.Counts.Charge))
	m.differences.WithLabelValues("spin").Set(float64(res.Counts.Spin))

	m.particles.WithLabelValues("simulation_only").Set(float64(len(res.SimOnly)))
	m.particles.WithLabelValues("reference_only").Set(float64(len(res.RefOnly)))
	m.particles.WithLabelValues("both").Set(float64(len(res.Both)))

	m.skipped.Set(float64(len(res.Skipped)))
	m.runs.WithLabelValues(successStatusLabel).Inc()
	m.duration.Observe(elapsed.Seconds())
	m.lastSuccess.SetToCurrentTime()
}

// ObserveFailure records a reconciliation that could not complete.
// Gauges keep the values of the last successful run.
func (m *Metrics) ObserveFailure(elapsed time.Duration) {
	m.runs.WithLabelValues(failStatusLabel).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	}))
}

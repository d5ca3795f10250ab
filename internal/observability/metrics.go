package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the service
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RunsTotal           *prometheus.CounterVec
	StageDuration       *prometheus.HistogramVec
	QualityScore        prometheus.Histogram
	RepairAttempts      prometheus.Histogram
	Confidence          prometheus.Histogram
	StylesheetsTotal    *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "styleguide_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "styleguide_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "styleguide_runs_total",
			Help: "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "styleguide_stage_duration_seconds",
			Help:    "Duration of each pipeline stage.",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 5, 15, 30, 60},
		}, []string{"stage"}),
		QualityScore: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "styleguide_quality_score",
			Help:    "Final quality score of generated documents.",
			Buckets: []float64{20, 40, 60, 70, 80, 90, 95, 100},
		}),
		RepairAttempts: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "styleguide_repair_attempts",
			Help:    "Repair attempts used per run.",
			Buckets: []float64{0, 1, 2, 3, 5},
		}),
		Confidence: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "styleguide_extraction_confidence",
			Help:    "Brand analysis confidence.",
			Buckets: []float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
		}),
		StylesheetsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "styleguide_stylesheets_total",
			Help: "Linked stylesheet fetches by result.",
		}, []string{"result"}),
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveStage records the time one pipeline stage took
func (m *Metrics) ObserveStage(stage string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// ObserveRun records the outcome of a finished pipeline run
func (m *Metrics) ObserveRun(score, attempts int, confidence float64) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues("success").Inc()
	m.QualityScore.Observe(float64(score))
	m.RepairAttempts.Observe(float64(attempts))
	m.Confidence.Observe(confidence)
}

// ObserveFailure records a run that aborted
func (m *Metrics) ObserveFailure(reason string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(reason).Inc()
}

// ObserveStylesheet records one linked stylesheet fetch
func (m *Metrics) ObserveStylesheet(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.StylesheetsTotal.WithLabelValues(result).Inc()
}

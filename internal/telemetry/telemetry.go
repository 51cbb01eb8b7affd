// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the origin classification service.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "origin-classifier"

// Metrics holds all service Prometheus metrics.
type Metrics struct {
	ClassificationsTotal *prometheus.CounterVec
	EmbedFailures        prometheus.Counter
	ProcessingDuration   prometheus.Histogram
	BatchSize            prometheus.Histogram
	ActiveWorkers        prometheus.Gauge
}

// Provider wraps the tracer and metrics handed to instrumented components.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	return &Metrics{
		ClassificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "origin_classifications_total",
			Help: "Classifications by origin outcome",
		}, []string{"outcome"}),
		EmbedFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "origin_embed_failures_total",
			Help: "Embedding sidecar failures that degraded to the Unknown outcome",
		}),
		ProcessingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "origin_processing_duration_seconds",
			Help:    "End-to-end classification duration per product",
			Buckets: prometheus.DefBuckets,
		}),
		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "origin_batch_size",
			Help:    "Batch sizes submitted to the batch processor",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		ActiveWorkers: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "origin_active_workers",
			Help: "Batch processor workers currently classifying",
		}),
	}
}

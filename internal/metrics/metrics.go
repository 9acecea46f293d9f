// Package metrics provides Prometheus collectors for engine evaluations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yourusername/edge-engine/internal/models"
)

// Evaluation kinds used as label values
const (
	KindBet    = "bet"
	KindParlay = "parlay"
)

// Recorder receives evaluation outcomes. Implementations must be safe for
// concurrent use and must not influence results.
type Recorder interface {
	RecordEvaluation(kind string, tier models.Tier, legs int, duration time.Duration)
	RecordEvaluationError(kind string, err error)
}

// NopRecorder discards everything
type NopRecorder struct{}

// RecordEvaluation does nothing
func (NopRecorder) RecordEvaluation(string, models.Tier, int, time.Duration) {}

// RecordEvaluationError does nothing
func (NopRecorder) RecordEvaluationError(string, error) {}

// Collector holds the engine's Prometheus metrics
type Collector struct {
	EvaluationsTotal     *prometheus.CounterVec
	RecommendationsTotal *prometheus.CounterVec
	EvaluationErrors     *prometheus.CounterVec
	EvaluationDuration   *prometheus.HistogramVec
	ParlayLegs           prometheus.Histogram
}

// NewCollector creates the engine collectors under namespace and registers them
// on reg
func NewCollector(namespace string, reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		EvaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total number of completed evaluations",
		}, []string{"kind"}),
		RecommendationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Total number of recommendations by tier",
		}, []string{"tier"}),
		EvaluationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluation_errors_total",
			Help:      "Total number of rejected evaluations by error kind",
		}, []string{"kind", "reason"}),
		EvaluationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of evaluations in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"kind"}),
		ParlayLegs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parlay_legs",
			Help:      "Number of legs per evaluated parlay",
			Buckets:   prometheus.LinearBuckets(2, 1, 9),
		}),
	}

	for _, collector := range []prometheus.Collector{
		c.EvaluationsTotal,
		c.RecommendationsTotal,
		c.EvaluationErrors,
		c.EvaluationDuration,
		c.ParlayLegs,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordEvaluation records a completed evaluation
func (c *Collector) RecordEvaluation(kind string, tier models.Tier, legs int, duration time.Duration) {
	c.EvaluationsTotal.WithLabelValues(kind).Inc()
	c.RecommendationsTotal.WithLabelValues(string(tier)).Inc()
	c.EvaluationDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if kind == KindParlay {
		c.ParlayLegs.Observe(float64(legs))
	}
}

// RecordEvaluationError records a rejected evaluation
func (c *Collector) RecordEvaluationError(kind string, err error) {
	c.EvaluationErrors.WithLabelValues(kind, models.ErrorKind(err)).Inc()
}

// NewRegistry returns a registry with the Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}

// Handler returns the Prometheus HTTP handler for a registry
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

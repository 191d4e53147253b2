// Package metrics exposes Prometheus instrumentation for searches and
// animation playback on a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector of the module.
type Registry struct {
	registry *prometheus.Registry

	SearchesTotal    *prometheus.CounterVec
	SearchDuration   *prometheus.HistogramVec
	SearchIterations *prometheus.HistogramVec
	TraceLength      *prometheus.HistogramVec

	AnimationsTotal *prometheus.CounterVec
	AnimationSteps  prometheus.Counter
}

// NewRegistry creates a Registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initSearchMetrics()
	r.initAnimationMetrics()

	return r
}

func (r *Registry) initSearchMetrics() {
	r.SearchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathviz_searches_total",
			Help: "Total number of searches by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"},
	)

	r.SearchDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathviz_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"algorithm"},
	)

	r.SearchIterations = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathviz_search_iterations",
			Help:    "Node expansions per search",
			Buckets: []float64{1, 5, 10, 50, 100, 1000, 10000},
		},
		[]string{"algorithm"},
	)

	r.TraceLength = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathviz_trace_tokens",
			Help:    "Number of trace tokens produced per search",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
		[]string{"algorithm"},
	)
}

func (r *Registry) initAnimationMetrics() {
	r.AnimationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathviz_animations_total",
			Help: "Total number of finished animations by final status",
		},
		[]string{"status"},
	)

	r.AnimationSteps = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "pathviz_animation_steps_total",
			Help: "Total number of edge steps drawn during playback",
		},
	)
}

// RecordSearch records one completed search.
func (r *Registry) RecordSearch(algorithm, outcome string, iterations, traceLen int, duration time.Duration) {
	r.SearchesTotal.WithLabelValues(algorithm, outcome).Inc()
	r.SearchDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.SearchIterations.WithLabelValues(algorithm).Observe(float64(iterations))
	r.TraceLength.WithLabelValues(algorithm).Observe(float64(traceLen))
}

// RecordAnimation records a playback that reached a final status.
func (r *Registry) RecordAnimation(status string, steps int) {
	r.AnimationsTotal.WithLabelValues(status).Inc()
	r.AnimationSteps.Add(float64(steps))
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

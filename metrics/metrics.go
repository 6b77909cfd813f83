// Package metrics exposes search activity as Prometheus collectors.
//
// Collector implements runner.Observer, so wiring it into a Slot or Drive is a
// single option; Handler and StartServer expose the registry for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/subsetsum/runner"
	"github.com/katalvlaran/subsetsum/solver"
)

const namespace = "subsetsum"

// Collector holds every collector for the search engine.
type Collector struct {
	SolvesTotal     *prometheus.CounterVec
	SolveDuration   *prometheus.HistogramVec
	SolveNodes      *prometheus.HistogramVec
	StepsTotal      prometheus.Counter
	StepDuration    prometheus.Histogram
	ResultsTotal    prometheus.Counter
	SessionEvents   *prometheus.CounterVec
	SessionProgress prometheus.Gauge

	gatherer prometheus.Gatherer
}

var _ runner.Observer = (*Collector)(nil)

// New creates the collectors and registers them with reg. A nil reg uses a fresh
// private registry, which keeps repeated construction (tests, multiple engines)
// free of duplicate-registration panics.
func New(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	c := &Collector{
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "One-shot searches by strategy and status (found, not_found, cancelled).",
			},
			[]string{"strategy", "status"},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "One-shot search latency in seconds.",
				Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"strategy"},
		),
		SolveNodes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_nodes",
				Help:      "Nodes or masks visited per one-shot search.",
				Buckets:   prometheus.ExponentialBuckets(1, 16, 10),
			},
			[]string{"strategy"},
		),
		StepsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_steps_total",
				Help:      "Total batch steps executed.",
			},
		),
		StepDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "session_step_duration_seconds",
				Help:      "Batch step latency in seconds.",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		),
		ResultsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_results_total",
				Help:      "Combinations reported by batch steps.",
			},
		),
		SessionEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_events_total",
				Help:      "Session lifecycle events (begin, finish, destroy, cancel, replaced).",
			},
			[]string{"event"},
		),
		SessionProgress: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "session_progress_ratio",
				Help:      "Progress reported by the most recent batch step.",
			},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		c.SolvesTotal,
		c.SolveDuration,
		c.SolveNodes,
		c.StepsTotal,
		c.StepDuration,
		c.ResultsTotal,
		c.SessionEvents,
		c.SessionProgress,
	)

	return c
}

// ObserveSolve implements runner.Observer.
func (c *Collector) ObserveSolve(res solver.Result, d time.Duration) {
	strategy := res.Strategy.String()
	c.SolvesTotal.WithLabelValues(strategy, res.Status.String()).Inc()
	c.SolveDuration.WithLabelValues(strategy).Observe(d.Seconds())
	c.SolveNodes.WithLabelValues(strategy).Observe(float64(res.Nodes))
}

// ObserveStep implements runner.Observer.
func (c *Collector) ObserveStep(res solver.BatchResult, d time.Duration) {
	c.StepsTotal.Inc()
	c.StepDuration.Observe(d.Seconds())
	c.ResultsTotal.Add(float64(len(res.NewResults)))
	c.SessionProgress.Set(res.Progress)
}

// ObserveSession implements runner.Observer.
func (c *Collector) ObserveSession(event string) {
	c.SessionEvents.WithLabelValues(event).Inc()
}

// Handler returns the scrape handler for the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

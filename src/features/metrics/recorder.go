package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes reported on the searches counter.
const (
	OutcomeOK          = "ok"
	OutcomeNoResults   = "no_results"
	OutcomeAuthFailed  = "auth_failed"
	OutcomeConfigError = "config_error"
)

var outcomes = []string{OutcomeOK, OutcomeNoResults, OutcomeAuthFailed, OutcomeConfigError}

// Recorder owns the search pipeline's collectors. A nil Recorder is valid
// and records nothing, so callers never need to check whether metrics are
// enabled.
type Recorder struct {
	registry   *prometheus.Registry
	searches   *prometheus.CounterVec
	duration   prometheus.Histogram
	downgrades prometheus.Counter
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tunelens_searches_total",
			Help: "Search requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tunelens_search_duration_seconds",
			Help:    "End-to-end duration of the search chain.",
			Buckets: prometheus.DefBuckets,
		}),
		downgrades: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tunelens_interpreter_downgrades_total",
			Help: "Queries whose extraction fell back to empty params.",
		}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.searches,
		r.duration,
		r.downgrades,
	)
	// Expose every outcome from the first scrape on.
	for _, outcome := range outcomes {
		r.searches.WithLabelValues(outcome)
	}
	return r
}

// RecordSearch counts one finished search chain.
func (r *Recorder) RecordSearch(outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// InterpreterDowngrade counts an extraction that fell back to empty params.
func (r *Recorder) InterpreterDowngrade() {
	if r == nil {
		return
	}
	r.downgrades.Inc()
}

// Handler returns the scrape endpoint handler.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Package metrics exposes Prometheus instrumentation for palindrome filtering.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StrategySequence = "sequence"
	StrategyParallel = "parallel"
)

// Collector groups the filter metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	calls    *prometheus.CounterVec
	inputs   *prometheus.CounterVec
	matches  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewCollector() *Collector {
	return &Collector{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "palindromes_filter_calls_total",
			Help: "Number of completed filter calls.",
		}, []string{"strategy"}),
		inputs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "palindromes_filter_inputs_total",
			Help: "Number of integers examined.",
		}, []string{"strategy"}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "palindromes_filter_matches_total",
			Help: "Number of integers that were palindromes.",
		}, []string{"strategy"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "palindromes_filter_duration_seconds",
			Help:    "Wall time of a filter call.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"strategy"}),
	}
}

// Register adds every metric of c to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, m := range []prometheus.Collector{c.calls, c.inputs, c.matches, c.duration} {
		if err := reg.Register(m); err != nil {
			return err
		}
	}
	return nil
}

// Observe records one finished call of the given strategy.
func (c *Collector) Observe(strategy string, inputs, matches int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.calls.WithLabelValues(strategy).Inc()
	c.inputs.WithLabelValues(strategy).Add(float64(inputs))
	c.matches.WithLabelValues(strategy).Add(float64(matches))
	c.duration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

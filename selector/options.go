package selector

import (
	"palindromes/metrics"
	"palindromes/sliceutil"
)

type options struct {
	workers     int
	orderStable bool
	threshold   int
	metrics     *metrics.Collector
}

type Option func(*options)

// WithWorkers overrides the goroutine count of the parallel traversal.
// Zero keeps the default of runtime.GOMAXPROCS(0).
func WithWorkers(count int) Option {
	return func(o *options) {
		o.workers = count
	}
}

// WithOrderStable makes the parallel traversal return matches in input order.
func WithOrderStable(stable bool) Option {
	return func(o *options) {
		o.orderStable = stable
	}
}

// WithParallelThreshold sets the input size from which work is split across
// goroutines. Negative values keep the default.
func WithParallelThreshold(size int) Option {
	return func(o *options) {
		o.threshold = size
	}
}

// WithMetrics records every successful call into c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

func newOptions(opts []Option) options {
	o := options{threshold: -1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) parallelOptions() []sliceutil.ParallelOption {
	popts := []sliceutil.ParallelOption{sliceutil.WithOrderStable(o.orderStable)}
	if o.workers > 0 {
		popts = append(popts, sliceutil.WithWorkers(o.workers))
	}
	if o.threshold >= 0 {
		popts = append(popts, sliceutil.WithThreshold(o.threshold))
	}
	return popts
}

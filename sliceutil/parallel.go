package sliceutil

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"palindromes/bag"
)

const (
	// Below this size goroutine scheduling costs more than it saves.
	defaultParallelThreshold = 256
	// Workers poll the context once per this many elements.
	ctxCheckInterval = 64
)

type parallelConfig struct {
	workers     int
	orderStable bool
	threshold   int
}

type ParallelOption func(*parallelConfig)

// WithWorkers sets the number of goroutines. Values below 1 are treated as 1.
func WithWorkers(count int) ParallelOption {
	return func(c *parallelConfig) {
		if count < 1 {
			count = 1
		}
		c.workers = count
	}
}

// WithOrderStable makes ParallelFilter return matches in input order.
func WithOrderStable(stable bool) ParallelOption {
	return func(c *parallelConfig) {
		c.orderStable = stable
	}
}

// WithThreshold sets the minimum collection size that is split across workers.
func WithThreshold(size int) ParallelOption {
	return func(c *parallelConfig) {
		if size < 0 {
			size = 0
		}
		c.threshold = size
	}
}

func shouldRunParallel(cfg parallelConfig, size int) bool {
	return cfg.workers > 1 && size >= cfg.threshold
}

// span is a half-open index range [start, end) owned by one worker.
type span struct {
	start, end int
}

// partition splits size elements into at most workers contiguous spans.
func partition(size, workers int) []span {
	chunkSize := (size + workers - 1) / workers
	spans := make([]span, 0, workers)
	for start := 0; start < size; start += chunkSize {
		spans = append(spans, span{start: start, end: min(start+chunkSize, size)})
	}
	return spans
}

// ParallelFilter evaluates predicate over collection on several goroutines
// and returns the elements it accepts.
//
// By default the result order is unspecified: workers insert matches into a
// shared bag.Bag as they find them. WithOrderStable(true) keeps a buffer per
// worker and concatenates them in input order after all workers finish.
// Either way the result holds exactly the accepted elements, with multiplicity.
//
// The call blocks until every worker is done. If ctx is canceled first,
// ParallelFilter returns nil and the context error.
func ParallelFilter[T any](ctx context.Context, collection []T, predicate func(T) bool, opts ...ParallelOption) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := parallelConfig{
		workers:   runtime.GOMAXPROCS(0),
		threshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(collection) == 0 {
		return []T{}, nil
	}

	if !shouldRunParallel(cfg, len(collection)) {
		klog.V(4).InfoS("Filtering serially", "size", len(collection), "workers", cfg.workers, "threshold", cfg.threshold)
		return FilterWithContext(ctx, collection, predicate)
	}

	spans := partition(len(collection), cfg.workers)
	klog.V(4).InfoS("Filtering in parallel", "size", len(collection), "spans", len(spans), "orderStable", cfg.orderStable)
	if cfg.orderStable {
		return filterOrdered(ctx, collection, predicate, spans)
	}
	return filterUnordered(ctx, collection, predicate, spans)
}

func filterUnordered[T any](ctx context.Context, collection []T, predicate func(T) bool, spans []span) ([]T, error) {
	collector := bag.New[T](0)

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range spans {
		g.Go(func() error {
			for k := s.start; k < s.end; k++ {
				if (k-s.start)%ctxCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if predicate(collection[k]) {
					collector.Add(collection[k])
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return collector.Drain(), nil
}

func filterOrdered[T any](ctx context.Context, collection []T, predicate func(T) bool, spans []span) ([]T, error) {
	// one buffer per span, written only by its worker
	locals := make([][]T, len(spans))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range spans {
		g.Go(func() error {
			var local []T
			for k := s.start; k < s.end; k++ {
				if (k-s.start)%ctxCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if predicate(collection[k]) {
					local = append(local, collection[k])
				}
			}
			locals[i] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalLen := 0
	for _, s := range locals {
		totalLen += len(s)
	}
	res := make([]T, 0, totalLen)
	for _, s := range locals {
		res = append(res, s...)
	}
	return res, nil
}

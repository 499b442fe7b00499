/*
Package selector filters palindrome numbers out of integer slices.

It offers two traversals over the same predicate, [palindrome.IsPalindrome]:

  - [GetPalindromeInSequence] scans on the calling goroutine and keeps input order.
  - [GetPalindromeInParallel] spreads the scan over GOMAXPROCS goroutines and
    returns the matches in no particular order.

Both return the same multiset of values. A nil slice is rejected with an
error matching [ErrInvalidArgument]; an empty slice yields an empty result.

	matches, err := selector.GetPalindromeInParallel([]int32{121, 123, 12321})
	if err != nil {
		return err
	}
*/
package selector

import (
	"context"
	"time"

	"golang.org/x/exp/constraints"

	"palindromes/metrics"
	"palindromes/palindrome"
	"palindromes/sliceutil"
)

// GetPalindromeInSequence returns the palindromes of numbers in input order.
// It fails with an *ArgumentError when numbers is nil.
func GetPalindromeInSequence[T constraints.Integer](numbers []T, opts ...Option) ([]T, error) {
	if numbers == nil {
		return nil, nilNumbers()
	}
	o := newOptions(opts)

	start := time.Now()
	res := sliceutil.Filter(numbers, palindrome.IsPalindrome[T])
	o.metrics.Observe(metrics.StrategySequence, len(numbers), len(res), time.Since(start))
	return res, nil
}

// GetPalindromeInParallel is GetPalindromeInParallelContext with context.Background().
func GetPalindromeInParallel[T constraints.Integer](numbers []T, opts ...Option) ([]T, error) {
	return GetPalindromeInParallelContext(context.Background(), numbers, opts...)
}

// GetPalindromeInParallelContext returns the palindromes of numbers, testing
// elements concurrently. Result order is unspecified unless
// WithOrderStable(true) is given. The call blocks until every element has
// been tested or ctx is done.
func GetPalindromeInParallelContext[T constraints.Integer](ctx context.Context, numbers []T, opts ...Option) ([]T, error) {
	if numbers == nil {
		return nil, nilNumbers()
	}
	o := newOptions(opts)

	start := time.Now()
	res, err := sliceutil.ParallelFilter(ctx, numbers, palindrome.IsPalindrome[T], o.parallelOptions()...)
	if err != nil {
		return nil, err
	}
	o.metrics.Observe(metrics.StrategyParallel, len(numbers), len(res), time.Since(start))
	return res, nil
}

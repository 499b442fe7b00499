package selector_test

import (
	"testing"

	"palindromes/selector"
)

const benchSize = 1_000_000

func getBenchData() []int32 {
	data := make([]int32, benchSize)
	for i := range data {
		data[i] = int32(i)
	}
	return data
}

// BenchmarkSelector compares the traversals on the same input.
// The predicate is cheap, so the parallel variants mostly measure scheduling
// and collector overhead.
func BenchmarkSelector(b *testing.B) {
	data := getBenchData()

	b.Run("Sequence", func(b *testing.B) {
		for b.Loop() {
			_, _ = selector.GetPalindromeInSequence(data)
		}
	})

	b.Run("Parallel_Unordered", func(b *testing.B) {
		for b.Loop() {
			_, _ = selector.GetPalindromeInParallel(data)
		}
	})

	b.Run("Parallel_Ordered", func(b *testing.B) {
		for b.Loop() {
			_, _ = selector.GetPalindromeInParallel(data, selector.WithOrderStable(true))
		}
	})
}

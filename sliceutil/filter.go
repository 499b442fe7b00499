// Package sliceutil holds generic traversals that apply a predicate to every element of a slice.
package sliceutil

import "context"

// Filter returns the elements of collection that satisfy predicate, in order.
// The result is freshly allocated and never nil.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]T, 0)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// FilterWithContext is Filter with cancellation checks between elements.
func FilterWithContext[T any](ctx context.Context, collection []T, predicate func(T) bool) ([]T, error) {
	res := make([]T, 0)
	for i, v := range collection {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res, nil
}

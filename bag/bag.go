// Package bag provides an unordered, append-only collection that many goroutines can fill at once.
package bag

import "sync"

const defaultCapacity = 16

// Bag is a thread-safe, insertion-order-agnostic collector.
// Producers call Add/AddAll concurrently; one consumer calls Drain after
// all producers are done.
type Bag[T any] struct {
	mu    sync.Mutex
	items []T
}

// New creates a Bag with room for capacity elements before it grows.
func New[T any](capacity int) *Bag[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Bag[T]{
		items: make([]T, 0, capacity),
	}
}

func (b *Bag[T]) Add(value T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, value)
}

// AddAll inserts values under a single lock acquisition.
func (b *Bag[T]) AddAll(values ...T) {
	if len(values) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, values...)
}

func (b *Bag[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

func (b *Bag[T]) IsEmpty() bool {
	return b.Len() == 0
}

// Drain removes and returns every element. The returned slice is owned by
// the caller and is never nil; the Bag is empty afterwards and may be reused.
func (b *Bag[T]) Drain() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.items
	if out == nil {
		out = []T{}
	}
	b.items = nil
	return out
}

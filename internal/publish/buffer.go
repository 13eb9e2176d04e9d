package publish

import "sync"

// buffer accumulates items until the publisher flushes them. Safe for
// concurrent use by request handlers and the flush loop.
type buffer[T any] struct {
	mu    sync.Mutex
	items []T
	cap   int
}

func newBuffer[T any](capacity int) *buffer[T] {
	return &buffer[T]{items: make([]T, 0, capacity), cap: capacity}
}

func (b *buffer[T]) Add(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, item)
}

func (b *buffer[T]) GetAndClear() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == 0 {
		return nil
	}
	batch := b.items
	b.items = make([]T, 0, b.cap)
	return batch
}

func (b *buffer[T]) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

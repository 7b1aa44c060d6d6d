// queue package

package queue

import "sync"

const (
	// DefaultBufferSize is the capacity used when none is given.
	DefaultBufferSize = 1024
)

// InMemoryQueue implements a bounded in-memory queue.
type InMemoryQueue[T any] struct {
	ch   chan T
	lock sync.RWMutex
}

// NewInMemoryQueue creates a new queue holding at most size items.
func NewInMemoryQueue[T any](size int) *InMemoryQueue[T] {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &InMemoryQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue adds an item to the end of the queue. It never blocks: a full
// queue rejects the item with ErrFull.
func (q *InMemoryQueue[T]) Enqueue(item T) error {
	q.lock.Lock()
	defer q.lock.Unlock()
	select {
	case q.ch <- item:
		return nil
	default:
		return ErrFull
	}
}

// Dequeue removes and returns the item at the front of the queue, if any.
func (q *InMemoryQueue[T]) Dequeue() (T, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()
	select {
	case item := <-q.ch:
		return item, true
	default:
		var zero T
		return zero, false
	}
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	q.lock.RLock()
	defer q.lock.RUnlock()
	return len(q.ch)
}

// ReadAllMessages reads all pending messages in the queue
func (q *InMemoryQueue[T]) ReadAllMessages() []T {
	q.lock.Lock()
	defer q.lock.Unlock()

	var messages []T
	for len(q.ch) > 0 {
		messages = append(messages, <-q.ch)
	}

	return messages
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue[T]) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}

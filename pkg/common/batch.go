package common

import (
	"sync"
	"time"
)

// BatchProcessor handles one drained chunk of queued items.
type BatchProcessor[V any] func(items []V)

// BatchQueue buffers items and hands them to the processor in chunks
// from a background goroutine. Used to decouple catalog mutations from
// the broker publish path.
type BatchQueue[V any] struct {
	mu        sync.Mutex
	queue     []V
	processor BatchProcessor[V]
	chunkSize int
	stop      chan struct{}
	stopped   sync.Once
}

func NewBatchQueue[V any](processor BatchProcessor[V], chunkSize int) *BatchQueue[V] {
	q := &BatchQueue[V]{
		processor: processor,
		chunkSize: chunkSize,
		stop:      make(chan struct{}),
	}
	go q.drainLoop()
	return q
}

// Add enqueues items for background processing.
func (q *BatchQueue[V]) Add(items ...V) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queue = append(q.queue, items...)
}

// Flush synchronously processes everything currently queued.
func (q *BatchQueue[V]) Flush() {
	for q.drainChunk() {
	}
}

// Stop halts the background loop after flushing pending items.
func (q *BatchQueue[V]) Stop() {
	q.stopped.Do(func() {
		close(q.stop)
		q.Flush()
	})
}

func (q *BatchQueue[V]) drainLoop() {
	for {
		select {
		case <-q.stop:
			return
		default:
		}
		if !q.drainChunk() {
			time.Sleep(time.Second)
		}
	}
}

func (q *BatchQueue[V]) drainChunk() bool {
	q.mu.Lock()
	if len(q.queue) == 0 {
		q.mu.Unlock()
		return false
	}
	n := min(q.chunkSize, len(q.queue))
	items := q.queue[:n]
	q.queue = q.queue[n:]
	q.mu.Unlock()

	q.processor(items)
	return true
}

package ingest

import (
	"sync"

	"github.com/five82/jlv/internal/record"
)

// RecvStatus is the outcome of a non-blocking receive.
type RecvStatus int

const (
	// Received means a record was returned.
	Received RecvStatus = iota
	// Empty means nothing is queued right now but more may arrive.
	Empty
	// Closed means the producer finished and every record was received.
	Closed
)

func (s RecvStatus) String() string {
	switch s {
	case Received:
		return "received"
	case Empty:
		return "empty"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Queue is an unbounded FIFO between one producer and one consumer.
// Send never blocks and TryRecv never waits.
type Queue struct {
	mu     sync.Mutex
	items  []record.Record
	head   int
	closed bool
}

// NewQueue returns an empty, open queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Send appends r. It reports false, dropping r, once the queue is closed.
func (q *Queue) Send(r record.Record) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.items = append(q.items, r)
	return true
}

// Close marks the end of the stream. Records already sent stay receivable.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}

// TryRecv returns the oldest queued record without blocking.
func (q *Queue) TryRecv() (record.Record, RecvStatus) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head == len(q.items) {
		if q.head > 0 {
			// Fully drained: reuse the backing array.
			clear(q.items)
			q.items = q.items[:0]
			q.head = 0
		}
		if q.closed {
			return record.Record{}, Closed
		}
		return record.Record{}, Empty
	}

	r := q.items[q.head]
	q.items[q.head] = record.Record{}
	q.head++
	return r, Received
}

// Len returns the number of records waiting to be received.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

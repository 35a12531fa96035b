package worker

import (
	"container/list"
	"sync"
)

// queue is an unbounded FIFO of tasks.
// Many producers may push; pop is serialized by the mutex so each
// task is removed by exactly one consumer.
type queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  *list.List
	closed bool
}

func newQueue() *queue {
	q := &queue{
		items: list.New(),
	}
	q.cond = sync.NewCond(&q.mu)

	return q
}

func (q *queue) push(task ITask) error {

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}

	q.items.PushBack(task)
	q.cond.Signal()

	return nil
}

// pop blocks until a task is available. Returns false when the queue
// is closed and nothing is left in it.
func (q *queue) pop() (ITask, bool) {

	q.mu.Lock()
	defer q.mu.Unlock()

	for q.items.Len() == 0 && !q.closed {
		q.cond.Wait()
	}

	e := q.items.Front()
	if e == nil {
		return nil, false
	}

	return q.items.Remove(e).(ITask), true
}

// close is idempotent. Returns false if the queue was already closed.
func (q *queue) close() bool {

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.closed = true
	q.cond.Broadcast()

	return true
}

func (q *queue) len() int {
	q.mu.Lock()
	n := q.items.Len()
	q.mu.Unlock()
	return n
}

func (q *queue) isClosed() bool {
	q.mu.Lock()
	closed := q.closed
	q.mu.Unlock()
	return closed
}

package worker

import (
	"sync"

	"go.uber.org/zap"
)

// A Pool is a fixed set of workers fed by an unbounded jobs queue.
// The number of workers is set on creation and never changes.
type Pool struct {
	state

	queue   *queue
	workers []*worker
	wg      sync.WaitGroup

	logger  *zap.Logger
	metric  IMetric
	onPanic PanicHandler
}

// Stats is a snapshot of the pool state
type Stats struct {
	Size    int  `json:"size"`
	Running int  `json:"running"`
	Busy    int  `json:"busy"`
	Pending int  `json:"pending"`
	Closed  bool `json:"closed"`
}

// New creates a pool with size workers and starts them.
// It panics if size is not positive.
func New(size int, opts ...Option) *Pool {

	if size <= 0 {
		panic("worker: pool size must be greater than zero")
	}

	p := &Pool{
		queue:  newQueue(),
		logger: zap.NewNop(),
		metric: nopMetric{},
	}

	for _, opt := range opts {
		opt(p)
	}

	p.workers = make([]*worker, size)
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		p.workers[i] = newWorker(i, p)
		p.workers[i].start()
	}

	p.logger.Info("worker pool started", zap.Int("size", size))

	return p
}

// Submit enqueues a task for one of the workers. It never blocks.
// Returns ErrClosed if the pool was closed.
func (p *Pool) Submit(task ITask) error {

	if task == nil {
		return ErrNilTask
	}

	if err := p.queue.push(task); err != nil {
		p.metric.IncRejected()
		return err
	}

	p.metric.IncSubmitted()
	p.logger.Debug("assigning task")

	return nil
}

// SubmitFunc is a shortcut for Submit(TaskFunc(fn))
func (p *Pool) SubmitFunc(fn func()) error {

	if fn == nil {
		return ErrNilTask
	}

	return p.Submit(TaskFunc(fn))
}

// Close stops accepting tasks. Tasks which are already queued are
// still processed, after that the workers exit.
func (p *Pool) Close() error {

	if p.queue.close() {
		p.logger.Info("worker pool closed", zap.Int("pending", p.queue.len()))
	}

	return nil
}

// Wait blocks until all workers have exited (see Close)
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Size returns the number of workers
func (p *Pool) Size() int {
	return len(p.workers)
}

// Busy returns the number of workers running a task right now
func (p *Pool) Busy() int {
	return p.getBusy()
}

// Pending returns the number of queued tasks
func (p *Pool) Pending() int {
	return p.queue.len()
}

// Stats returns a snapshot of the pool state
func (p *Pool) Stats() Stats {
	return Stats{
		Size:    p.Size(),
		Running: p.getRunning(),
		Busy:    p.Busy(),
		Pending: p.Pending(),
		Closed:  p.queue.isClosed(),
	}
}

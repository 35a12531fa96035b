package worker

import (
	"time"

	"go.uber.org/zap"
)

type worker struct {
	id     int
	pool   *Pool
	logger *zap.Logger
}

func newWorker(id int, pool *Pool) *worker {
	return &worker{
		id:     id,
		pool:   pool,
		logger: pool.logger.With(zap.Int("worker", id)),
	}
}

func (w *worker) start() {
	w.pool.addRunning(1)

	go func() {
		defer func() {
			w.pool.addRunning(-1)
			w.pool.wg.Done()
			w.logger.Debug("worker stopped")
		}()

		for {
			task, ok := w.pool.queue.pop()
			if !ok {
				return
			}

			w.logger.Debug("worker got a task")
			w.invoke(task)
		}
	}()
}

// invoke runs the task inside a fault boundary: a panic is logged and
// counted, and the worker goes on with the next task. A task which
// terminates the goroutine (runtime.Goexit) can't be stopped, so the
// worker is replaced before its goroutine exits.
func (w *worker) invoke(task ITask) {

	start := time.Now()
	completed := false
	w.pool.addBusy(1)

	defer func() {
		w.pool.addBusy(-1)
		w.pool.metric.ObserveLatency(start)

		r := recover()
		if r == nil {
			if completed {
				w.pool.metric.IncExecuted()
				return
			}

			w.pool.metric.IncPanicked()
			w.logger.Error("task terminated the worker goroutine")
			w.respawn()
			return
		}

		w.pool.metric.IncPanicked()
		w.logger.Error("task panicked",
			zap.Any("panic", r),
			zap.Stack("stack"))

		if w.pool.onPanic != nil {
			w.pool.onPanic(w.id, r)
		}
	}()

	task.Invoke()
	completed = true
}

// respawn starts a worker with the same id. It must be called before
// the current goroutine releases its wait group slot.
func (w *worker) respawn() {
	w.pool.wg.Add(1)
	newWorker(w.id, w.pool).start()
}

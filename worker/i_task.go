package worker

// ITask is interface of the object for the jobs queue.
// A task is invoked exactly once by exactly one worker.
type ITask interface {
	// Invoke task
	Invoke()
}

// TaskFunc adapts an ordinary function to the ITask interface
type TaskFunc func()

// Invoke calls f()
func (f TaskFunc) Invoke() {
	f()
}

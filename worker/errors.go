package worker

import "github.com/pkg/errors"

var (
	// ErrClosed is returned on submit to a pool whose queue was torn down
	ErrClosed = errors.New("worker: pool is closed")
	// ErrNilTask is returned on submit of a nil task
	ErrNilTask = errors.New("worker: nil task")
)

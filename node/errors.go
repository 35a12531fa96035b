package node

import (
	"github.com/pkg/errors"
)

// ErrClosed is returned by Accept after the node was closed
var ErrClosed = errors.New("node: listener is closed")

// A BindError is returned when the listen address cannot be bound
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return "node: unable to listen on " + e.Addr + ": " + e.Err.Error()
}

func (e *BindError) Cause() error  { return e.Err }
func (e *BindError) Unwrap() error { return e.Err }

// An AcceptError is a listener failure which is not caused by Close
type AcceptError struct {
	Err error
}

func (e *AcceptError) Error() string {
	return "node: unable to accept connection: " + e.Err.Error()
}

func (e *AcceptError) Cause() error  { return e.Err }
func (e *AcceptError) Unwrap() error { return e.Err }

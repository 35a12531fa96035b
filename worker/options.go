package worker

import "go.uber.org/zap"

// PanicHandler is called by a worker after a task panicked.
// The worker keeps serving the queue after the handler returns.
type PanicHandler func(workerID int, recovered interface{})

// An Option configures a Pool
type Option func(*Pool)

// WithLogger sets the pool logger
func WithLogger(l *zap.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetric sets the pool metrics collector
func WithMetric(m IMetric) Option {
	return func(p *Pool) {
		if m != nil {
			p.metric = m
		}
	}
}

// WithPanicHandler sets a hook for panicked tasks
func WithPanicHandler(fn PanicHandler) Option {
	return func(p *Pool) {
		p.onPanic = fn
	}
}

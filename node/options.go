package node

import (
	"crypto/tls"

	"github.com/dialogs/dialog-node-lib/worker"
	"go.uber.org/zap"
)

// An Option configures a Node
type Option func(*Node)

// WithLogger sets the logger of the node and of its worker pool
func WithLogger(l *zap.Logger) Option {
	return func(n *Node) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithMetric sets the listener metrics collector
func WithMetric(m IMetric) Option {
	return func(n *Node) {
		if m != nil {
			n.metric = m
		}
	}
}

// WithPoolOptions passes options to the worker pool
func WithPoolOptions(opts ...worker.Option) Option {
	return func(n *Node) {
		n.poolOpts = append(n.poolOpts, opts...)
	}
}

// WithTLS serves the connections over tls. The handshake is done by the
// worker on the first read or write of the connection.
func WithTLS(cfg *tls.Config) Option {
	return func(n *Node) {
		n.tlsConfig = cfg
	}
}

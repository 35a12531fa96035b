package node

import (
	"context"
	"crypto/tls"
	"net"

	"github.com/dialogs/dialog-node-lib/worker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A Node is a listening device: every accepted connection becomes
// a job of the worker pool.
type Node struct {
	state

	listener net.Listener
	pool     *worker.Pool

	logger    *zap.Logger
	metric    IMetric
	poolOpts  []worker.Option
	tlsConfig *tls.Config
}

// New binds address:port and creates a pool with poolSize workers
func New(address string, port, poolSize int, opts ...Option) (*Node, error) {
	return NewWithConfig(Config{
		Address:  address,
		Port:     port,
		PoolSize: poolSize,
	}, opts...)
}

// NewWithConfig binds the config address and creates the worker pool.
// Bind failures are returned as *BindError.
func NewWithConfig(cfg Config, opts ...Option) (*Node, error) {

	if err := cfg.Check(); err != nil {
		return nil, err
	}

	n := &Node{
		logger: zap.NewNop(),
		metric: nopMetric{},
	}

	tlsConfig, err := cfg.TLS()
	if err != nil {
		return nil, err
	}
	n.tlsConfig = tlsConfig

	for _, opt := range opts {
		opt(n)
	}

	addr := cfg.Addr()
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}

	if n.tlsConfig != nil {
		l = tls.NewListener(l, n.tlsConfig)
	}

	n.listener = l
	n.pool = worker.New(cfg.PoolSize,
		append([]worker.Option{worker.WithLogger(n.logger)}, n.poolOpts...)...)

	n.logger.Info("listening",
		zap.Stringer("address", l.Addr()),
		zap.Int("pool_size", cfg.PoolSize),
		zap.Bool("tls", n.tlsConfig != nil))

	return n, nil
}

// Addr returns the bound address
func (n *Node) Addr() net.Addr {
	return n.listener.Addr()
}

// Pool returns the worker pool of the node
func (n *Node) Pool() *worker.Pool {
	return n.pool
}

// Accept blocks until a new connection arrives
func (n *Node) Accept() (*Conn, error) {

	c, err := n.listener.Accept()
	if err != nil {
		if n.getIsClosed() {
			return nil, ErrClosed
		}

		n.metric.IncAcceptErrored()
		return nil, &AcceptError{Err: err}
	}

	n.metric.IncAccepted()

	return newConn(c, n.logger), nil
}

// Dispatch submits the task to the worker pool
func (n *Node) Dispatch(task worker.ITask) error {
	return n.pool.Submit(task)
}

// Serve accepts connections and dispatches each of them with handler
// until the node is closed or ctx is done; both cases return nil.
// Accept and dispatch failures stop the loop and are returned.
func (n *Node) Serve(ctx context.Context, handler Handler) error {

	if handler == nil {
		return errors.New("node: nil handler")
	}

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			if err := n.Close(); err != nil {
				n.logger.Error("failed to close node", zap.Error(err))
			}
		case <-stop:
		}
	}()

	for {
		conn, err := n.Accept()
		if err != nil {
			if err == ErrClosed {
				return nil
			}
			return err
		}

		conn.Logger.Info("incoming connection")

		err = n.Dispatch(&connTask{
			conn:    conn,
			handler: handler,
			metric:  n.metric,
		})
		if err != nil {
			n.metric.IncDispatchErrored()
			dropConn(conn)

			if n.getIsClosed() {
				return nil
			}
			return errors.Wrap(err, "dispatch connection")
		}
	}
}

// Close stops the listener and the worker pool. Queued connections
// are still handled; use Wait to join the workers.
func (n *Node) Close() error {

	if !n.setClosed() {
		return nil
	}

	err := n.listener.Close()
	n.pool.Close()

	n.logger.Info("node closed")

	return errors.Wrap(err, "close listener")
}

// Wait blocks until all workers of the closed node have exited
func (n *Node) Wait() {
	n.pool.Wait()
}

func dropConn(conn *Conn) {
	if err := conn.Close(); err != nil {
		conn.Logger.Debug("failed to close connection", zap.Error(err))
	}
}

package node

import (
	"net"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// A Conn is an accepted connection
type Conn struct {
	net.Conn

	// ID is unique per accepted connection
	ID string
	// Logger carries the connection id and the remote address
	Logger *zap.Logger
}

func newConn(c net.Conn, l *zap.Logger) *Conn {

	id := uuid.New().String()

	return &Conn{
		Conn: c,
		ID:   id,
		Logger: l.With(
			zap.String("conn_id", id),
			zap.Stringer("remote", c.RemoteAddr())),
	}
}

// A Handler serves one connection. The connection is closed after
// Handle returns.
type Handler interface {
	Handle(conn *Conn)
}

// HandlerFunc adapts an ordinary function to the Handler interface
type HandlerFunc func(conn *Conn)

// Handle calls f(conn)
func (f HandlerFunc) Handle(conn *Conn) {
	f(conn)
}

// connTask is the pool job of one connection
type connTask struct {
	conn    *Conn
	handler Handler
	metric  IMetric
}

func (t *connTask) Invoke() {

	t.metric.IncActive()
	defer func() {
		if err := t.conn.Close(); err != nil {
			t.conn.Logger.Debug("failed to close connection", zap.Error(err))
		}
		t.metric.DecActive()
	}()

	t.handler.Handle(t.conn)
}

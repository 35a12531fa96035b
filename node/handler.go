package node

import (
	"io"

	"go.uber.org/zap"
)

// LogHandler reads once up to bufSize bytes from the connection and
// logs them. A non-positive bufSize means DefaultReadBuffer.
func LogHandler(bufSize int) Handler {

	if bufSize <= 0 {
		bufSize = DefaultReadBuffer
	}

	return HandlerFunc(func(conn *Conn) {

		buf := make([]byte, bufSize)
		n, err := conn.Read(buf)
		if err != nil && err != io.EOF {
			conn.Logger.Warn("failed to read stream", zap.Error(err))
			return
		}

		conn.Logger.Info("stream", zap.ByteString("data", buf[:n]))
	})
}

package memory

import (
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sinkSeq uint64

// New returns a logger writing json lines into the buffer.
// A nil cfg means a production config with the debug level.
func New(cfg *zap.Config) (*zap.Logger, *Buffer, error) {

	scheme := "memory" + strconv.FormatInt(time.Now().UnixNano(), 36) +
		"x" + strconv.FormatUint(atomic.AddUint64(&sinkSeq, 1), 10)

	buf := NewBuffer()
	err := zap.RegisterSink(scheme, func(*url.URL) (zap.Sink, error) {
		return buf, nil
	})
	if err != nil {
		return nil, nil, err
	}

	if cfg == nil {
		prodConfig := zap.NewProductionConfig()
		cfg = &prodConfig
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{scheme + "://"}

	l, err := cfg.Build()
	return l, buf, err
}

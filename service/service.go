package service

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// service is the common part of the network services: address,
// readiness and the close signal
type service struct {
	addr   string
	mu     sync.RWMutex
	ready  int32
	logger *zap.Logger

	closed    chan struct{}
	closeOnce sync.Once
}

func newService() *service {
	return &service{
		logger: zap.NewNop(),
		closed: make(chan struct{}),
	}
}

// SetAddr sets the listen address
func (s *service) SetAddr(addr string) {
	s.mu.Lock()
	s.addr = addr
	s.mu.Unlock()
}

// GetAddr returns the listen address. After the service is ready it is
// the bound address (the real port for ":0").
func (s *service) GetAddr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// SetLogger sets the service logger
func (s *service) SetLogger(l *zap.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Ready reports whether the service is listening
func (s *service) Ready() bool {
	return atomic.LoadInt32(&s.ready) > 0
}

// Close stops the service
func (s *service) Close() error {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
	return nil
}

func (s *service) setReady(ready bool) {
	var val int32
	if ready {
		val = 1
	}
	atomic.StoreInt32(&s.ready, val)
}

// serve runs the service until run returns or Close is called
func (s *service) serve(name string, run func(retval chan<- error), stop func(*zap.Logger)) error {

	l := s.logger.With(zap.String("service", name))
	l.Info("start", zap.String("address", s.GetAddr()))

	retval := make(chan error, 1)
	go run(retval)

	var err error
	select {
	case err = <-retval:
	case <-s.closed:
		l.Info("stop")
		stop(l)
		err = <-retval
	}

	s.setReady(false)
	l.Info("stopped", zap.Error(err))

	return err
}

package node

import "sync/atomic"

type state struct {
	isClosed int32
}

func (s *state) getIsClosed() bool {
	return atomic.LoadInt32(&s.isClosed) > 0
}

// setClosed returns false if the state was already closed
func (s *state) setClosed() bool {
	return atomic.CompareAndSwapInt32(&s.isClosed, 0, 1)
}

package worker

import "sync/atomic"

type state struct {
	busy    int32
	running int32
}

func (s *state) getBusy() int {
	return int(atomic.LoadInt32(&s.busy))
}

func (s *state) addBusy(delta int32) {
	atomic.AddInt32(&s.busy, delta)
}

func (s *state) getRunning() int {
	return int(atomic.LoadInt32(&s.running))
}

func (s *state) addRunning(delta int32) {
	atomic.AddInt32(&s.running, delta)
}

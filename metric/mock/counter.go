package mock

import (
	"fmt"
	"sync/atomic"
)

// Counter is an in-memory ICounter
type Counter struct {
	val uint64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.val, 1)
}

func (c *Counter) Add(val float64) {

	if val < 0 {
		panic(fmt.Sprintf("counter cannot decrease: %v", val))
	}

	atomic.AddUint64(&c.val, uint64(val))
}

func (c *Counter) Get() uint64 {
	return atomic.LoadUint64(&c.val)
}

package mock

import (
	"math"
	"sync/atomic"
)

// Gauge is an in-memory IGauge
type Gauge struct {
	bits uint64
}

func NewGauge() *Gauge {
	return &Gauge{}
}

func (g *Gauge) Set(val float64) {
	atomic.StoreUint64(&g.bits, math.Float64bits(val))
}

func (g *Gauge) Inc() {
	g.add(1)
}

func (g *Gauge) Dec() {
	g.add(-1)
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(atomic.LoadUint64(&g.bits))
}

func (g *Gauge) add(delta float64) {
	for {
		old := atomic.LoadUint64(&g.bits)
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if atomic.CompareAndSwapUint64(&g.bits, old, next) {
			return
		}
	}
}

package qosmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IPoolState is a source of the worker pool gauges
type IPoolState interface {
	Busy() int
	Pending() int
}

// PoolMetric is the prometheus collector of the worker pool activity
type PoolMetric struct {
	submittedCount prometheus.Counter
	rejectedCount  prometheus.Counter
	executedCount  prometheus.Counter
	panickedCount  prometheus.Counter
	latencyHisto   prometheus.Histogram
}

// NewPoolMetric creates the pool counters and registers them in reg
// (prometheus.DefaultRegisterer if reg is nil)
func NewPoolMetric(nameSpace string, reg prometheus.Registerer) (*PoolMetric, error) {

	m := &PoolMetric{
		submittedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: nameSpace,
			Subsystem: "pool",
			Name:      "tasks_submitted_total",
			Help:      "Tasks accepted by the worker pool",
		}),
		rejectedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: nameSpace,
			Subsystem: "pool",
			Name:      "tasks_rejected_total",
			Help:      "Tasks rejected by the closed worker pool",
		}),
		executedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: nameSpace,
			Subsystem: "pool",
			Name:      "tasks_executed_total",
			Help:      "Tasks completed without a panic",
		}),
		panickedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: nameSpace,
			Subsystem: "pool",
			Name:      "tasks_panicked_total",
			Help:      "Tasks recovered after a panic or a goroutine exit",
		}),
		latencyHisto: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: nameSpace,
			Subsystem: "pool",
			Name:      "task_duration_seconds",
			Help:      "Task invocation duration",
		}),
	}

	var err error
	for _, c := range []*prometheus.Counter{
		&m.submittedCount,
		&m.rejectedCount,
		&m.executedCount,
		&m.panickedCount,
	} {
		if *c, err = registerCounter(reg, *c); err != nil {
			return nil, err
		}
	}

	if m.latencyHisto, err = registerHistogram(reg, m.latencyHisto); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *PoolMetric) IncSubmitted() {
	m.submittedCount.Inc()
}

func (m *PoolMetric) IncRejected() {
	m.rejectedCount.Inc()
}

func (m *PoolMetric) IncExecuted() {
	m.executedCount.Inc()
}

func (m *PoolMetric) IncPanicked() {
	m.panickedCount.Inc()
}

func (m *PoolMetric) ObserveLatency(start time.Time) {
	m.latencyHisto.Observe(time.Since(start).Seconds())
}

// RegisterPoolGauges exports the busy workers and the queue length of src
func RegisterPoolGauges(nameSpace string, reg prometheus.Registerer, src IPoolState) error {

	busy := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: nameSpace,
		Subsystem: "pool",
		Name:      "workers_busy",
		Help:      "Workers running a task",
	}, func() float64 { return float64(src.Busy()) })

	pending := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: nameSpace,
		Subsystem: "pool",
		Name:      "tasks_pending",
		Help:      "Tasks waiting in the queue",
	}, func() float64 { return float64(src.Pending()) })

	return register(reg, busy, pending)
}

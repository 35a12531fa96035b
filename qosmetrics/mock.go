package qosmetrics

import (
	"time"

	"github.com/dialogs/dialog-node-lib/metric"
	"github.com/dialogs/dialog-node-lib/metric/mock"
)

var (
	_ metric.ICounter  = (*mock.Counter)(nil)
	_ metric.IObserver = (*mock.Observer)(nil)
	_ metric.IGauge    = (*mock.Gauge)(nil)
)

type mockPoolMetric struct {
	Observer         *mock.Observer
	SubmittedCounter *mock.Counter
	RejectedCounter  *mock.Counter
	ExecutedCounter  *mock.Counter
	PanickedCounter  *mock.Counter
}

func NewMockPoolMetric() *mockPoolMetric {
	return &mockPoolMetric{
		Observer:         mock.NewObserver(),
		SubmittedCounter: mock.NewCounter(),
		RejectedCounter:  mock.NewCounter(),
		ExecutedCounter:  mock.NewCounter(),
		PanickedCounter:  mock.NewCounter(),
	}
}

func (s *mockPoolMetric) IncSubmitted() {
	s.SubmittedCounter.Inc()
}

func (s *mockPoolMetric) IncRejected() {
	s.RejectedCounter.Inc()
}

func (s *mockPoolMetric) IncExecuted() {
	s.ExecutedCounter.Inc()
}

func (s *mockPoolMetric) IncPanicked() {
	s.PanickedCounter.Inc()
}

func (s *mockPoolMetric) ObserveLatency(start time.Time) {
	s.Observer.Observe(time.Since(start).Seconds())
}

type mockNodeMetric struct {
	AcceptedCounter      *mock.Counter
	AcceptErrorCounter   *mock.Counter
	DispatchErrorCounter *mock.Counter
	ActiveGauge          *mock.Gauge
}

func NewMockNodeMetric() *mockNodeMetric {
	return &mockNodeMetric{
		AcceptedCounter:      mock.NewCounter(),
		AcceptErrorCounter:   mock.NewCounter(),
		DispatchErrorCounter: mock.NewCounter(),
		ActiveGauge:          mock.NewGauge(),
	}
}

func (s *mockNodeMetric) IncAccepted() {
	s.AcceptedCounter.Inc()
}

func (s *mockNodeMetric) IncAcceptErrored() {
	s.AcceptErrorCounter.Inc()
}

func (s *mockNodeMetric) IncDispatchErrored() {
	s.DispatchErrorCounter.Inc()
}

func (s *mockNodeMetric) IncActive() {
	s.ActiveGauge.Inc()
}

func (s *mockNodeMetric) DecActive() {
	s.ActiveGauge.Dec()
}

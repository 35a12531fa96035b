package worker

import "time"

// IMetric collects pool activity
type IMetric interface {
	IncSubmitted()
	IncRejected()
	IncExecuted()
	IncPanicked()
	ObserveLatency(start time.Time)
}

type nopMetric struct{}

func (nopMetric) IncSubmitted()            {}
func (nopMetric) IncRejected()             {}
func (nopMetric) IncExecuted()             {}
func (nopMetric) IncPanicked()             {}
func (nopMetric) ObserveLatency(time.Time) {}

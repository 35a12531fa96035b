package qosmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// NodeMetric is the prometheus collector of the connection listener
type NodeMetric struct {
	acceptedCount      prometheus.Counter
	acceptErrorCount   prometheus.Counter
	dispatchErrorCount prometheus.Counter
	activeConns        prometheus.Gauge
}

// NewNodeMetric creates the listener metrics and registers them in reg
// (prometheus.DefaultRegisterer if reg is nil)
func NewNodeMetric(nameSpace string, reg prometheus.Registerer) (*NodeMetric, error) {

	m := &NodeMetric{
		acceptedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: nameSpace,
			Subsystem: "node",
			Name:      "connections_accepted_total",
			Help:      "Accepted inbound connections",
		}),
		acceptErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: nameSpace,
			Subsystem: "node",
			Name:      "accept_errors_total",
			Help:      "Listener accept failures",
		}),
		dispatchErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: nameSpace,
			Subsystem: "node",
			Name:      "dispatch_errors_total",
			Help:      "Connections dropped because the pool rejected them",
		}),
		activeConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: nameSpace,
			Subsystem: "node",
			Name:      "connections_active",
			Help:      "Connections handled by the workers right now",
		}),
	}

	var err error
	for _, c := range []*prometheus.Counter{
		&m.acceptedCount,
		&m.acceptErrorCount,
		&m.dispatchErrorCount,
	} {
		if *c, err = registerCounter(reg, *c); err != nil {
			return nil, err
		}
	}

	if m.activeConns, err = registerGauge(reg, m.activeConns); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *NodeMetric) IncAccepted() {
	m.acceptedCount.Inc()
}

func (m *NodeMetric) IncAcceptErrored() {
	m.acceptErrorCount.Inc()
}

func (m *NodeMetric) IncDispatchErrored() {
	m.dispatchErrorCount.Inc()
}

func (m *NodeMetric) IncActive() {
	m.activeConns.Inc()
}

func (m *NodeMetric) DecActive() {
	m.activeConns.Dec()
}

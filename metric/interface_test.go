package metric

import (
	"testing"

	"github.com/dialogs/dialog-node-lib/metric/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestInterface(t *testing.T) {

	// test: mock objects
	require.NotNil(t, (ICounter)(mock.NewCounter()))
	require.NotNil(t, (IObserver)(mock.NewObserver()))
	require.NotNil(t, (IGauge)(mock.NewGauge()))

	// test: prometheus objects
	require.NotNil(t,
		(ICounter)(prometheus.NewCounter(prometheus.CounterOpts{})))
	require.NotNil(t,
		(IObserver)(prometheus.NewHistogram(prometheus.HistogramOpts{})))
	require.NotNil(t,
		(IObserver)(
			prometheus.NewHistogramVec(prometheus.HistogramOpts{}, []string{}).
				With(prometheus.Labels{})))
	require.NotNil(t,
		(IGauge)(prometheus.NewGauge(prometheus.GaugeOpts{})))
}

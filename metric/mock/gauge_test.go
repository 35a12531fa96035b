package mock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGauge(t *testing.T) {

	g := NewGauge()
	require.Equal(t, float64(0), g.Get())

	g.Inc()
	g.Inc()
	require.Equal(t, float64(2), g.Get())

	g.Dec()
	require.Equal(t, float64(1), g.Get())

	g.Set(-5.5)
	require.Equal(t, -5.5, g.Get())
}

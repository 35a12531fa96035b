package qosmetrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func register(reg prometheus.Registerer, list ...prometheus.Collector) error {

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	for _, c := range list {
		if err := ProcessPrometheusError(reg.Register(c)); err != nil {
			return err
		}
	}

	return nil
}

// registerOrGet registers c in reg. If an equal collector is already
// registered, the existing one is returned instead of c.
func registerOrGet(reg prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		return are.ExistingCollector, nil
	}

	return nil, err
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter) (prometheus.Counter, error) {

	existing, err := registerOrGet(reg, c)
	if err != nil {
		return nil, err
	}

	res, ok := existing.(prometheus.Counter)
	if !ok {
		return nil, errors.Errorf("registered collector is not a counter: %T", existing)
	}

	return res, nil
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge) (prometheus.Gauge, error) {

	existing, err := registerOrGet(reg, g)
	if err != nil {
		return nil, err
	}

	res, ok := existing.(prometheus.Gauge)
	if !ok {
		return nil, errors.Errorf("registered collector is not a gauge: %T", existing)
	}

	return res, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram) (prometheus.Histogram, error) {

	existing, err := registerOrGet(reg, h)
	if err != nil {
		return nil, err
	}

	res, ok := existing.(prometheus.Histogram)
	if !ok {
		return nil, errors.Errorf("registered collector is not a histogram: %T", existing)
	}

	return res, nil
}

// ProcessPrometheusError skips the error of repeated registration.
// Collectors which keep a state should use registerOrGet instead.
func ProcessPrometheusError(err error) error {
	if err == nil {
		return nil
	}

	switch err.(type) {
	case prometheus.AlreadyRegisteredError:
		return nil
	default:
		return err
	}
}

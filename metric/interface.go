package metric

type IObserver interface {
	// Observe adds a single observation to the histogram.
	Observe(float64)
}

type ICounter interface {
	// Inc increments the counter by 1.
	Inc()

	// Add adds the given value to the counter. It panics if the value is < 0.
	Add(val float64)
}

type IGauge interface {
	// Set sets the gauge to an arbitrary value.
	Set(val float64)

	// Inc increments the gauge by 1.
	Inc()

	// Dec decrements the gauge by 1.
	Dec()
}

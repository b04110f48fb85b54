// Package metrics collects per-run statistics over the oscillator state.
package metrics

import "github.com/san-kum/springlab/internal/oscillator"

type Metric interface {
	Name() string
	Observe(s oscillator.State, p oscillator.Params)
	Value() float64
	Reset()
}

// Collect runs every metric over one observation.
func Collect(ms []Metric, s oscillator.State, p oscillator.Params) {
	for _, m := range ms {
		m.Observe(s, p)
	}
}

// Report gathers final metric values by name.
func Report(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Defaults returns the metric set reported by headless runs.
func Defaults() []Metric {
	return []Metric{
		NewEnergyDrift(),
		NewPeakVelocity(),
	}
}

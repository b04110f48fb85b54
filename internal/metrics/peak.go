package metrics

import (
	"math"

	"github.com/san-kum/springlab/internal/oscillator"
)

// PeakVelocity records the largest velocity magnitude seen during a run.
type PeakVelocity struct {
	name string
	peak float64
}

func NewPeakVelocity() *PeakVelocity {
	return &PeakVelocity{name: "peak_velocity"}
}

func (m *PeakVelocity) Name() string { return m.name }

func (m *PeakVelocity) Observe(s oscillator.State, p oscillator.Params) {
	if v := math.Abs(s.Velocity); v > m.peak {
		m.peak = v
	}
}

func (m *PeakVelocity) Value() float64 { return m.peak }

func (m *PeakVelocity) Reset() { m.peak = 0 }

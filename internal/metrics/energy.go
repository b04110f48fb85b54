package metrics

import (
	"math"

	"github.com/san-kum/springlab/internal/oscillator"
)

// EnergyDrift tracks the relative change in total mechanical energy since
// the first observation. For an undamped run this measures the Euler
// discretization error; for a damped run it approaches 1.
type EnergyDrift struct {
	name    string
	initial float64
	latest  float64
	seen    bool
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s oscillator.State, p oscillator.Params) {
	energy := p.Energy(s)
	if !e.seen {
		e.initial = energy
		e.seen = true
	}
	e.latest = energy
}

func (e *EnergyDrift) Value() float64 {
	if !e.seen || e.initial == 0 {
		return 0
	}
	return math.Abs(e.latest-e.initial) / math.Abs(e.initial)
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.latest = 0
	e.seen = false
}

package oscillator

import "math"

// Reference values for the mass-spring-damper system.
const (
	DefaultMass      = 1.0
	DefaultStiffness = 10.0
	DefaultDamping   = 0.5
	DefaultTimeScale = 1.0

	DefaultDt        = 0.02
	DefaultPosition  = 2.0
	DefaultMaxPoints = 500
	DefaultMaxTime   = 10.0
)

// State is the physical state of the oscillator. ElapsedTime is simulated
// time since the last reset; it never decreases except through a reset.
type State struct {
	Position    float64
	Velocity    float64
	ElapsedTime float64
}

// Params holds the live-tunable physical parameters. Mass and Stiffness must
// be positive, Damping non-negative, and TimeScale positive; range clamping
// beyond that is a UI concern.
type Params struct {
	Mass      float64
	Stiffness float64
	Damping   float64
	TimeScale float64
}

func DefaultParams() Params {
	return Params{
		Mass:      DefaultMass,
		Stiffness: DefaultStiffness,
		Damping:   DefaultDamping,
		TimeScale: DefaultTimeScale,
	}
}

// Validate reports the first parameter that violates its invariant.
func (p Params) Validate() error {
	if p.Mass <= 0 {
		return &ConfigError{Param: "mass", Value: p.Mass}
	}
	if p.Stiffness <= 0 {
		return &ConfigError{Param: "stiffness", Value: p.Stiffness}
	}
	if p.Damping < 0 {
		return &ConfigError{Param: "damping", Value: p.Damping}
	}
	if p.TimeScale <= 0 {
		return &ConfigError{Param: "timescale", Value: p.TimeScale}
	}
	return nil
}

// Energy returns the total mechanical energy 0.5*m*v^2 + 0.5*k*x^2.
func (p Params) Energy(s State) float64 {
	ke := 0.5 * p.Mass * s.Velocity * s.Velocity
	pe := 0.5 * p.Stiffness * s.Position * s.Position
	return ke + pe
}

// NaturalFrequency returns the undamped natural frequency sqrt(k/m)/(2*pi)
// in hertz. It ignores TimeScale; callers comparing against a scaled trace
// must account for that themselves.
func NaturalFrequency(p Params) float64 {
	if p.Mass <= 0 {
		return 0
	}
	return math.Sqrt(p.Stiffness/p.Mass) / (2 * math.Pi)
}

package oscillator

// Euler advances the oscillator by one explicit (forward) Euler step.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

// Step mutates s in place. The acceleration uses the pre-update position and
// velocity; velocity is updated before position, both with the old
// acceleration. The step is scaled by the TimeScale multiplier. Callers must
// ensure p is valid (see Params.Validate); mass is not special-cased here.
func (e *Euler) Step(s *State, p Params, dt float64) {
	acc := (-p.Stiffness*s.Position - p.Damping*s.Velocity) / p.Mass

	effectiveDt := dt * p.TimeScale
	s.Velocity += acc * effectiveDt
	s.Position += s.Velocity * effectiveDt
	s.ElapsedTime += effectiveDt
}

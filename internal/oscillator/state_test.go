package oscillator

import (
	"math"
	"testing"
)

func TestEnergy(t *testing.T) {
	p := Params{Mass: 2.0, Stiffness: 8.0, Damping: 0, TimeScale: 1.0}
	s := State{Position: 1.0, Velocity: 3.0}

	// 0.5*2*9 + 0.5*8*1 = 9 + 4
	if got := p.Energy(s); math.Abs(got-13.0) > 1e-12 {
		t.Errorf("Energy = %v, want 13", got)
	}
}

func TestNaturalFrequency(t *testing.T) {
	// k=10, m=1: f = sqrt(10)/(2*pi) ~ 0.5033 Hz
	p := DefaultParams()
	want := math.Sqrt(10) / (2 * math.Pi)
	if got := NaturalFrequency(p); math.Abs(got-want) > 1e-12 {
		t.Errorf("NaturalFrequency = %v, want %v", got, want)
	}

	if got := NaturalFrequency(Params{Mass: 0, Stiffness: 10}); got != 0 {
		t.Errorf("zero mass should yield 0, got %v", got)
	}
}

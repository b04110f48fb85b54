package oscillator

import (
	"errors"
	"math"
	"testing"
)

func newTestController(t *testing.T, cfg Config) *Controller {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c
}

func TestControllerDefaults(t *testing.T) {
	c := newTestController(t, DefaultConfig())

	if c.Position() != 2.0 || c.Velocity() != 0 || c.ElapsedTime() != 0 {
		t.Errorf("unexpected initial state: x=%f v=%f t=%f", c.Position(), c.Velocity(), c.ElapsedTime())
	}
	if c.Mass() != 1.0 || c.Stiffness() != 10.0 || c.Damping() != 0.5 || c.TimeScale() != 1.0 {
		t.Error("unexpected default parameters")
	}
	if !c.Recording() {
		t.Error("controller should start recording")
	}
}

func TestControllerTickRecords(t *testing.T) {
	c := newTestController(t, DefaultConfig())

	frame, err := c.Tick()
	if err != nil {
		t.Fatalf("tick failed: %v", err)
	}

	if len(frame.Trace) != 1 {
		t.Fatalf("expected 1 trace sample, got %d", len(frame.Trace))
	}
	if frame.Trace[0].Time != c.ElapsedTime() {
		t.Errorf("trace time %f should match elapsed time %f", frame.Trace[0].Time, c.ElapsedTime())
	}
	if frame.Trace[0].Velocity != c.Velocity() {
		t.Errorf("trace velocity %f should match state velocity %f", frame.Trace[0].Velocity, c.Velocity())
	}
	if len(frame.SpringX) == 0 || len(frame.SpringX) != len(frame.SpringY) {
		t.Error("frame should carry coil geometry")
	}
	if frame.MassPosition != c.Position() {
		t.Errorf("mass position %f should match state %f", frame.MassPosition, c.Position())
	}
}

func TestControllerRecordingFreezes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTime = 0.1 // horizon after 5 ticks at dt=0.02
	c := newTestController(t, cfg)

	for i := 0; i < 5; i++ {
		if _, err := c.Tick(); err != nil {
			t.Fatalf("tick %d failed: %v", i, err)
		}
	}
	if !c.Recording() {
		t.Fatal("recording should still be active at the horizon")
	}

	frame, err := c.Tick()
	if err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	if c.Recording() {
		t.Error("recording should freeze once elapsed time passes the horizon")
	}
	frozen := len(frame.Trace)

	// The physics keeps running but the trace must not change.
	before := c.Position()
	for i := 0; i < 20; i++ {
		frame, err = c.Tick()
		if err != nil {
			t.Fatalf("tick failed: %v", err)
		}
	}
	if len(frame.Trace) != frozen {
		t.Errorf("frozen trace changed: %d -> %d", frozen, len(frame.Trace))
	}
	if c.Position() == before {
		t.Error("physics should keep ticking after the freeze")
	}
}

func TestControllerBufferBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPoints = 20
	cfg.MaxTime = 100.0
	c := newTestController(t, cfg)

	var frame Frame
	var err error
	for i := 0; i < 35; i++ {
		frame, err = c.Tick()
		if err != nil {
			t.Fatalf("tick failed: %v", err)
		}
	}

	if len(frame.Trace) != 20 {
		t.Fatalf("expected 20 samples, got %d", len(frame.Trace))
	}
	// Most recent samples survive.
	last := frame.Trace[len(frame.Trace)-1].Time
	if math.Abs(last-c.ElapsedTime()) > 1e-9 {
		t.Errorf("newest sample %f should match elapsed time %f", last, c.ElapsedTime())
	}
}

func TestControllerReset(t *testing.T) {
	c := newTestController(t, DefaultConfig())

	for i := 0; i < 50; i++ {
		if _, err := c.Tick(); err != nil {
			t.Fatalf("tick failed: %v", err)
		}
	}
	if err := c.SetMass(3.0); err != nil {
		t.Fatalf("set mass: %v", err)
	}

	c.Reset()

	if c.Position() != 2.0 || c.Velocity() != 0 || c.ElapsedTime() != 0 {
		t.Errorf("reset should restore initial state, got x=%f v=%f t=%f",
			c.Position(), c.Velocity(), c.ElapsedTime())
	}
	if !c.Recording() {
		t.Error("reset should re-enable recording")
	}
	if _, ok := c.Nearest(0); ok {
		t.Error("reset should clear the trace")
	}
	if c.Mass() != 3.0 {
		t.Errorf("reset must not touch parameters, mass=%f", c.Mass())
	}
}

func TestControllerSettersReject(t *testing.T) {
	c := newTestController(t, DefaultConfig())

	tests := []struct {
		name string
		call func() error
		get  func() float64
		prev float64
	}{
		{"mass", func() error { return c.SetMass(0) }, c.Mass, 1.0},
		{"stiffness", func() error { return c.SetStiffness(-1) }, c.Stiffness, 10.0},
		{"damping", func() error { return c.SetDamping(-0.5) }, c.Damping, 0.5},
		{"timescale", func() error { return c.SetTimeScale(0) }, c.TimeScale, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrParameterBounds) {
				t.Errorf("error should wrap ErrParameterBounds, got %v", err)
			}
			if tt.get() != tt.prev {
				t.Errorf("rejected update must keep previous value, got %f", tt.get())
			}
		})
	}

	// Valid updates go through.
	if err := c.SetDamping(0); err != nil {
		t.Errorf("zero damping is valid: %v", err)
	}
}

func TestControllerNearest(t *testing.T) {
	c := newTestController(t, DefaultConfig())

	if _, ok := c.Nearest(1.0); ok {
		t.Error("expected no result before any tick")
	}

	for i := 0; i < 10; i++ {
		if _, err := c.Tick(); err != nil {
			t.Fatalf("tick failed: %v", err)
		}
	}

	s, ok := c.Nearest(0.05)
	if !ok {
		t.Fatal("expected a result")
	}
	if math.Abs(s.Time-0.04) > 1e-9 && math.Abs(s.Time-0.06) > 1e-9 {
		t.Errorf("expected a neighbor of 0.05, got %f", s.Time)
	}
}

func TestControllerInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Mass = -1
	if _, err := New(cfg); err == nil {
		t.Error("expected error for invalid params")
	}

	cfg = DefaultConfig()
	cfg.Dt = -0.01
	if _, err := New(cfg); err == nil {
		t.Error("expected error for negative dt")
	}
}

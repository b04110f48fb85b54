package oscillator

import "fmt"

// Config bundles the controller's fixed constants. Zero values fall back to
// the reference defaults.
type Config struct {
	Dt              float64
	MaxPoints       int
	MaxTime         float64
	InitialPosition float64
	InitialVelocity float64
	Params          Params
}

func DefaultConfig() Config {
	return Config{
		Dt:              DefaultDt,
		MaxPoints:       DefaultMaxPoints,
		MaxTime:         DefaultMaxTime,
		InitialPosition: DefaultPosition,
		Params:          DefaultParams(),
	}
}

// Frame is the per-tick output handed to the rendering collaborator.
type Frame struct {
	SpringX      []float64
	SpringY      []float64
	MassPosition float64
	Trace        []Sample
}

// Controller owns one oscillator state, its parameters, and the velocity
// history, and runs one integration step per tick. Recording stops once the
// elapsed time first passes the history horizon and only a reset re-enables
// it; the physics keeps running either way.
type Controller struct {
	state   State
	params  Params
	integ   *Euler
	history *History

	recording bool
	dt        float64
	initial   State

	scratch []Sample
}

func New(cfg Config) (*Controller, error) {
	if cfg.Dt == 0 {
		cfg.Dt = DefaultDt
	}
	if cfg.Dt < 0 {
		return nil, fmt.Errorf("oscillator: dt must be positive, got %g", cfg.Dt)
	}
	if cfg.MaxPoints == 0 {
		cfg.MaxPoints = DefaultMaxPoints
	}
	if cfg.MaxTime == 0 {
		cfg.MaxTime = DefaultMaxTime
	}
	if cfg.Params == (Params{}) {
		cfg.Params = DefaultParams()
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}

	initial := State{Position: cfg.InitialPosition, Velocity: cfg.InitialVelocity}
	return &Controller{
		state:     initial,
		params:    cfg.Params,
		integ:     NewEuler(),
		history:   NewHistory(cfg.MaxPoints, cfg.MaxTime),
		recording: true,
		dt:        cfg.Dt,
		initial:   initial,
	}, nil
}

// Tick runs one integration step, records the velocity sample while the
// recording window is open, and returns the coil geometry and trace for
// rendering.
func (c *Controller) Tick() (Frame, error) {
	if err := c.params.Validate(); err != nil {
		return Frame{}, err
	}

	c.integ.Step(&c.state, c.params, c.dt)

	if c.recording {
		if c.state.ElapsedTime <= c.history.MaxTime() {
			c.history.Append(c.state.ElapsedTime, c.state.Velocity)
		} else {
			// One-shot transition; only Reset re-opens the window.
			c.recording = false
		}
	}

	xs, ys := SpringGeometry(c.state.Position)
	return Frame{
		SpringX:      xs,
		SpringY:      ys,
		MassPosition: c.state.Position,
		Trace:        c.history.Samples(),
	}, nil
}

// Reset restores the initial state, clears the trace, and re-enables
// recording. Parameters are left untouched.
func (c *Controller) Reset() {
	c.state = c.initial
	c.history.Clear()
	c.recording = true
}

// Nearest returns the recorded sample closest to queryTime, or ok=false when
// nothing has been recorded yet.
func (c *Controller) Nearest(queryTime float64) (Sample, bool) {
	c.scratch = c.history.CopyTo(c.scratch)
	return Nearest(c.scratch, queryTime)
}

func (c *Controller) SetMass(v float64) error {
	if v <= 0 {
		return &ConfigError{Param: "mass", Value: v}
	}
	c.params.Mass = v
	return nil
}

func (c *Controller) SetStiffness(v float64) error {
	if v <= 0 {
		return &ConfigError{Param: "stiffness", Value: v}
	}
	c.params.Stiffness = v
	return nil
}

func (c *Controller) SetDamping(v float64) error {
	if v < 0 {
		return &ConfigError{Param: "damping", Value: v}
	}
	c.params.Damping = v
	return nil
}

func (c *Controller) SetTimeScale(v float64) error {
	if v <= 0 {
		return &ConfigError{Param: "timescale", Value: v}
	}
	c.params.TimeScale = v
	return nil
}

func (c *Controller) Mass() float64        { return c.params.Mass }
func (c *Controller) Stiffness() float64   { return c.params.Stiffness }
func (c *Controller) Damping() float64     { return c.params.Damping }
func (c *Controller) TimeScale() float64   { return c.params.TimeScale }
func (c *Controller) Position() float64    { return c.state.Position }
func (c *Controller) Velocity() float64    { return c.state.Velocity }
func (c *Controller) ElapsedTime() float64 { return c.state.ElapsedTime }
func (c *Controller) Recording() bool      { return c.recording }
func (c *Controller) Dt() float64          { return c.dt }
func (c *Controller) MaxTime() float64     { return c.history.MaxTime() }

func (c *Controller) State() State   { return c.state }
func (c *Controller) Params() Params { return c.params }

// Energy returns the current total mechanical energy.
func (c *Controller) Energy() float64 { return c.params.Energy(c.state) }

// Package oscillator implements a damped harmonic oscillator driven by a
// fixed-step explicit Euler integrator.
//
// The package is the simulation core behind the springlab TUI and CLI:
//
//   - [State]: position, velocity, and elapsed simulated time
//   - [Params]: mass, stiffness, damping, and a simulation-speed multiplier
//   - [Euler]: one fixed-step integration
//   - [History]: bounded ring buffer of (time, velocity) samples
//   - [Controller]: orchestrates ticks, recording, and parameter updates
//
// # Thread Safety
//
// Controller instances are NOT thread-safe. All ticks, parameter updates,
// resets, and cursor queries must be serialized by the caller; the bubbletea
// update loop and the sequential CLI commands both satisfy this.
package oscillator

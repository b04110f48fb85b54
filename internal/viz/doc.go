// Package viz renders the oscillator interactively in the terminal.
//
// The package is a thin adapter over the simulation core: a Bubble Tea model
// ticks the controller every 20 ms, draws the coil and mass on a Braille
// canvas, plots the velocity trace, and maps key presses onto the
// controller's parameter setters, reset, and cursor lookup.
//
// # Key Bindings
//
//	Space     - Pause/Resume
//	R         - Reset simulation
//	Tab       - Cycle tunable parameter
//	Up/Down   - Adjust selected parameter
//	Left/Right- Move the trace cursor
//	?         - Toggle full help
//	Q         - Quit
package viz

// Package viz renders attractor trajectories in the terminal.
//
//   - [Canvas]: braille pixel grid for high-resolution plots
//   - [Camera]: rotating perspective projection of phase space
//   - [Model]: Bubble Tea program animating a live integration
//
// The live view advances the integrator a bounded number of steps per
// frame tick, so arbitrarily long runs never block the event loop. When a
// trajectory diverges to NaN/Inf the view pauses and flags it; divergence
// is display information here, never an integration error.
package viz

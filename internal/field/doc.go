// Package field defines the supported chaotic vector fields and their
// registry.
//
// Each attractor implements [dynamo.VectorField] with a pure Derive method:
//
//   - [Lorenz]: atmospheric convection, the butterfly attractor
//   - [Rossler]: single-band spiral chaos
//   - [Thomas]: cyclically symmetric damped sine flow
//   - [Aizawa]: six-parameter toroidal attractor
//
// [Lookup] resolves a name to a [Definition] carrying the field, its default
// coefficients and initial condition, and display metadata. The registry is
// fixed at build time and read-only, so lookups are safe from any goroutine.
package field

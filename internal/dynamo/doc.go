// Package dynamo provides the core primitives for integrating chaotic
// dynamical systems in three-dimensional phase space:
//
//   - [State]: a point (x, y, z) in phase space
//   - [Params]: named coefficients of a vector field
//   - [VectorField]: the ODE right-hand side dS/dt = f(S, p)
//   - [Stepper]: a one-step explicit numerical integrator
//
// Everything in this package is stateless and side-effect free; values may
// be used concurrently from multiple goroutines without synchronization.
package dynamo

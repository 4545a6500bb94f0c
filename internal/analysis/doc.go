// Package analysis provides chaos diagnostics over vector fields.
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LargestLyapunov(def.Field, stepper, params, def.Init, dt, steps, 1e-8)
//	if lambda > 0 {
//	    // sensitive dependence on initial conditions
//	}
package analysis

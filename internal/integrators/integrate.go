package integrators

import (
	"fmt"

	"github.com/tmolnar/chaoscope/internal/dynamo"
)

// Integrate advances s0 through steps fixed increments of dt and returns
// the trajectory. Element i holds the state after i+1 steps; the raw
// initial condition is not included. A non-positive steps count yields an
// empty trajectory.
//
// Integration never fails: divergence to NaN/Inf is valid output and the
// caller's concern. The result is freshly allocated, deterministic, and
// bit-reproducible for identical inputs.
func Integrate(st dynamo.Stepper, f dynamo.VectorField, p dynamo.Params, s0 dynamo.State, dt float64, steps int) []dynamo.State {
	if steps <= 0 {
		return []dynamo.State{}
	}
	traj := make([]dynamo.State, steps)
	s := s0
	for i := range traj {
		s = st.Step(f, s, p, dt)
		traj[i] = s
	}
	return traj
}

var steppers = map[string]func() dynamo.Stepper{
	"rk4":   func() dynamo.Stepper { return NewRK4() },
	"euler": func() dynamo.Stepper { return NewEuler() },
}

// New returns the named stepper, failing for names outside the fixed set.
func New(name string) (dynamo.Stepper, error) {
	fn, ok := steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

// Names lists the available stepper names.
func Names() []string {
	return []string{"euler", "rk4"}
}

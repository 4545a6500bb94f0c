package integrators

import "github.com/tmolnar/chaoscope/internal/dynamo"

// Euler is the explicit first-order stepper, kept for accuracy comparison
// against RK4.
type Euler struct{}

func NewEuler() Euler { return Euler{} }

func (Euler) Step(f dynamo.VectorField, s dynamo.State, p dynamo.Params, dt float64) dynamo.State {
	return s.Add(f.Derive(s, p).Scale(dt))
}

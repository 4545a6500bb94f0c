package integrators

import "github.com/tmolnar/chaoscope/internal/dynamo"

// RK4 is the classical fourth-order Runge-Kutta stepper.
type RK4 struct{}

func NewRK4() RK4 { return RK4{} }

func (RK4) Step(f dynamo.VectorField, s dynamo.State, p dynamo.Params, dt float64) dynamo.State {
	k1 := f.Derive(s, p)
	k2 := f.Derive(s.Add(k1.Scale(0.5*dt)), p)
	k3 := f.Derive(s.Add(k2.Scale(0.5*dt)), p)
	k4 := f.Derive(s.Add(k3.Scale(dt)), p)
	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return s.Add(sum.Scale(dt / 6.0))
}

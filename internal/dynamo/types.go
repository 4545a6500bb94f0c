package dynamo

import "math"

// State is a point in three-dimensional phase space. It is a value type:
// every operation returns a fresh State, so trajectories never alias.
type State [3]float64

func (s State) Add(o State) State {
	return State{s[0] + o[0], s[1] + o[1], s[2] + o[2]}
}

func (s State) Sub(o State) State {
	return State{s[0] - o[0], s[1] - o[1], s[2] - o[2]}
}

func (s State) Scale(c float64) State {
	return State{s[0] * c, s[1] * c, s[2] * c}
}

func (s State) Norm() float64 {
	return math.Sqrt(s[0]*s[0] + s[1]*s[1] + s[2]*s[2])
}

// IsFinite reports whether all components are finite real numbers.
func (s State) IsFinite() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Params maps coefficient names to values for one vector field.
type Params map[string]float64

func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// VectorField is the right-hand side of an autonomous ODE system
// dS/dt = f(S, p). Implementations must be pure: no mutation of inputs,
// no dependence on prior calls. RK4 evaluates the field several times at
// intermediate states within a single step and relies on this.
type VectorField interface {
	Derive(s State, p Params) State
}

// Stepper advances a state by one fixed time increment.
type Stepper interface {
	Step(f VectorField, s State, p Params, dt float64) State
}

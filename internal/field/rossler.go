package field

import "github.com/tmolnar/chaoscope/internal/dynamo"

type Rossler struct{}

// Derive computes the Rössler system derivatives.
func (Rossler) Derive(s dynamo.State, p dynamo.Params) dynamo.State {
	return dynamo.State{
		-s[1] - s[2],
		s[0] + p["a"]*s[1],
		p["b"] + s[2]*(s[0]-p["c"]),
	}
}

func rosslerDefinition() Definition {
	return Definition{
		Name:   "Rossler",
		Field:  Rossler{},
		Params: dynamo.Params{"a": 0.2, "b": 0.2, "c": 5.7},
		Init:   dynamo.State{0, 1, 0},
		Equations: []string{
			"dx/dt = -y - z",
			"dy/dt = x + ay",
			"dz/dt = b + z(x - c)",
		},
		Description: "Otto Rössler's 1976 system, designed to be simpler than the Lorenz " +
			"equations while still continuously chaotic. The trajectory spirals outward in " +
			"the xy-plane and folds back through z, forming a single band.",
		Tooltips: map[string]string{
			"a": "Controls rate of rotation in xy-plane",
			"b": "Linear term in z equation",
			"c": "Controls z-height of rotation center",
		},
	}
}

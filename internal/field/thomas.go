package field

import (
	"math"

	"github.com/tmolnar/chaoscope/internal/dynamo"
)

type Thomas struct{}

// Derive computes the cyclically symmetric Thomas system derivatives.
func (Thomas) Derive(s dynamo.State, p dynamo.Params) dynamo.State {
	b := p["b"]
	return dynamo.State{
		math.Sin(s[1]) - b*s[0],
		math.Sin(s[2]) - b*s[1],
		math.Sin(s[0]) - b*s[2],
	}
}

func thomasDefinition() Definition {
	return Definition{
		Name:   "Thomas",
		Field:  Thomas{},
		Params: dynamo.Params{"b": 0.208186},
		Init:   dynamo.State{0.1, 0, 0},
		Equations: []string{
			"dx/dt = sin(y) - bx",
			"dy/dt = sin(z) - by",
			"dz/dt = sin(x) - bz",
		},
		Description: "René Thomas's cyclically symmetric system. A single damping parameter " +
			"controls dissipation; near b ≈ 0.208 the flow settles into smooth intertwined " +
			"loops, and as b approaches zero it wanders a labyrinth through all of space.",
		Tooltips: map[string]string{
			"b": "Damping parameter - controls dissipation rate",
		},
	}
}

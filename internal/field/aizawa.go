package field

import "github.com/tmolnar/chaoscope/internal/dynamo"

type Aizawa struct{}

// Derive computes the Aizawa system derivatives.
func (Aizawa) Derive(s dynamo.State, p dynamo.Params) dynamo.State {
	x, y, z := s[0], s[1], s[2]
	return dynamo.State{
		(z-p["b"])*x - p["d"]*y,
		p["d"]*x + (z-p["b"])*y,
		p["c"] + p["a"]*z - (z*z*z)/3 - (x*x+y*y)*(1+p["e"]*z) + p["f"]*z*(x*x*x),
	}
}

func aizawaDefinition() Definition {
	return Definition{
		Name:   "Aizawa",
		Field:  Aizawa{},
		Params: dynamo.Params{"a": 0.95, "b": 0.7, "c": 0.6, "d": 3.5, "e": 0.25, "f": 0.1},
		Init:   dynamo.State{0.1, 0, 0},
		Equations: []string{
			"dx/dt = (z - b)x - dy",
			"dy/dt = dx + (z - b)y",
			"dz/dt = c + az - z³/3 - (x² + y²)(1 + ez) + fz(x³)",
		},
		Description: "A six-parameter system producing intricate toroidal structures with " +
			"twisted bands. Tuning the coefficients morphs the flow between simple limit " +
			"cycles and highly complex strange attractors.",
		Tooltips: map[string]string{
			"a": "Linear z coefficient",
			"b": "Shift parameter for x and y equations",
			"c": "Constant term in z equation",
			"d": "Coupling coefficient between x and y",
			"e": "Nonlinear z coupling factor",
			"f": "Cubic x coupling to z",
		},
	}
}

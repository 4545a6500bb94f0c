package field

import "github.com/tmolnar/chaoscope/internal/dynamo"

type Lorenz struct{}

// Derive computes the Lorenz system derivatives.
func (Lorenz) Derive(s dynamo.State, p dynamo.Params) dynamo.State {
	return dynamo.State{
		p["sigma"] * (s[1] - s[0]),
		s[0]*(p["rho"]-s[2]) - s[1],
		s[0]*s[1] - p["beta"]*s[2],
	}
}

func lorenzDefinition() Definition {
	return Definition{
		Name:   "Lorenz",
		Field:  Lorenz{},
		Params: dynamo.Params{"sigma": 10.0, "rho": 28.0, "beta": 8.0 / 3.0},
		Init:   dynamo.State{0.1, 0, 0},
		Equations: []string{
			"dx/dt = σ(y - x)",
			"dy/dt = x(ρ - z) - y",
			"dz/dt = xy - βz",
		},
		Description: "Simplified model of atmospheric convection discovered by Edward Lorenz " +
			"in 1963. The canonical example of sensitive dependence on initial conditions, " +
			"tracing the famous two-lobed butterfly shape.",
		Tooltips: map[string]string{
			"sigma": "Prandtl number - ratio of momentum to thermal diffusivity",
			"rho":   "Rayleigh number - temperature difference driving convection",
			"beta":  "Geometric factor related to physical dimensions",
		},
	}
}

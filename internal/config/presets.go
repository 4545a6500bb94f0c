package config

import (
	"sort"

	"github.com/tmolnar/chaoscope/internal/dynamo"
)

// Presets are curated parameter sets per attractor. Keys are lowercase
// attractor names, matching the field registry.
var Presets = map[string]map[string]*Config{
	"lorenz": {
		"classic": {
			Attractor: "Lorenz", Integrator: "rk4", Dt: 0.01, Steps: 20000,
			BurnIn: 1000, Stride: 2,
		},
		"stable": {
			Attractor: "Lorenz", Integrator: "rk4", Dt: 0.01, Steps: 20000,
			BurnIn: 500, Stride: 1,
			Params: dynamo.Params{"rho": 14.0},
		},
		"wide": {
			Attractor: "Lorenz", Integrator: "rk4", Dt: 0.005, Steps: 40000,
			BurnIn: 2000, Stride: 2,
			Params: dynamo.Params{"rho": 45.0},
		},
	},
	"rossler": {
		"band": {
			Attractor: "Rossler", Integrator: "rk4", Dt: 0.02, Steps: 30000,
			BurnIn: 1000, Stride: 2,
		},
		"funnel": {
			Attractor: "Rossler", Integrator: "rk4", Dt: 0.02, Steps: 40000,
			BurnIn: 2000, Stride: 2,
			Params: dynamo.Params{"c": 14.0},
		},
	},
	"thomas": {
		"classic": {
			Attractor: "Thomas", Integrator: "rk4", Dt: 0.05, Steps: 40000,
			BurnIn: 2000, Stride: 2,
		},
		"labyrinth": {
			Attractor: "Thomas", Integrator: "rk4", Dt: 0.05, Steps: 60000,
			BurnIn: 2000, Stride: 3,
			Params: dynamo.Params{"b": 0.1},
		},
	},
	"aizawa": {
		"torus": {
			Attractor: "Aizawa", Integrator: "rk4", Dt: 0.01, Steps: 40000,
			BurnIn: 2000, Stride: 2,
		},
		"tangle": {
			Attractor: "Aizawa", Integrator: "rk4", Dt: 0.01, Steps: 60000,
			BurnIn: 3000, Stride: 2,
			Params: dynamo.Params{"e": 0.35, "f": 0.08},
		},
	},
}

func GetPreset(attractor, preset string) *Config {
	group, ok := Presets[attractor]
	if !ok {
		return nil
	}
	cfg, ok := group[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(attractor string) []string {
	group, ok := Presets[attractor]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

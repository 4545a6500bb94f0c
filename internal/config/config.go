package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tmolnar/chaoscope/internal/dynamo"
	"github.com/tmolnar/chaoscope/internal/field"
)

const (
	DefaultDt     = 0.01
	DefaultSteps  = 20000
	DefaultBurnIn = 1000
	DefaultStride = 2
)

type Config struct {
	Attractor  string          `yaml:"attractor"`
	Integrator string          `yaml:"integrator"`
	Dt         float64         `yaml:"dt"`
	Steps      int             `yaml:"steps"`
	BurnIn     int             `yaml:"burn_in"`
	Stride     int             `yaml:"stride"`
	Init       *InitConfig     `yaml:"init,omitempty"`
	Params     dynamo.Params   `yaml:"params,omitempty"`
	Theme      string          `yaml:"theme"`
	DataDir    string          `yaml:"data_dir"`
}

// InitConfig overrides the attractor's default initial condition.
type InitConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func Default() *Config {
	return &Config{
		Attractor:  "Lorenz",
		Integrator: "rk4",
		Dt:         DefaultDt,
		Steps:      DefaultSteps,
		BurnIn:     DefaultBurnIn,
		Stride:     DefaultStride,
		Theme:      "phosphor",
		DataDir:    ".chaoscope",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// InitState resolves the initial condition: the explicit override if set,
// otherwise the attractor's default.
func (c *Config) InitState(def field.Definition) dynamo.State {
	if c.Init != nil {
		return dynamo.State{c.Init.X, c.Init.Y, c.Init.Z}
	}
	return def.Init
}

// MergedParams overlays the config's coefficient overrides onto the
// attractor's defaults.
func (c *Config) MergedParams(def field.Definition) dynamo.Params {
	return def.MergeParams(c.Params)
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tmolnar/chaoscope/internal/dynamo"
	"github.com/tmolnar/chaoscope/internal/field"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Attractor != "Lorenz" {
		t.Errorf("attractor = %q, want Lorenz", cfg.Attractor)
	}
	if cfg.Integrator != "rk4" {
		t.Errorf("integrator = %q, want rk4", cfg.Integrator)
	}
	if cfg.Dt != DefaultDt || cfg.Steps != DefaultSteps {
		t.Errorf("dt/steps = %v/%d, want %v/%d", cfg.Dt, cfg.Steps, DefaultDt, DefaultSteps)
	}
	if cfg.BurnIn != DefaultBurnIn || cfg.Stride != DefaultStride {
		t.Errorf("burn_in/stride = %d/%d, want %d/%d", cfg.BurnIn, cfg.Stride, DefaultBurnIn, DefaultStride)
	}
	if cfg.Init != nil {
		t.Error("default config should not override the initial condition")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chaoscope.yaml")

	cfg := Default()
	cfg.Attractor = "Rossler"
	cfg.Dt = 0.02
	cfg.Steps = 30000
	cfg.Params = dynamo.Params{"c": 14.0}
	cfg.Init = &InitConfig{X: 0.5, Y: -0.5, Z: 0.1}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Attractor != "Rossler" || loaded.Dt != 0.02 || loaded.Steps != 30000 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.Params["c"] != 14.0 {
		t.Errorf("params lost: %v", loaded.Params)
	}
	if loaded.Init == nil || loaded.Init.X != 0.5 || loaded.Init.Y != -0.5 {
		t.Errorf("init lost: %+v", loaded.Init)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("attractor: Thomas\ndt: 0.05\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Attractor != "Thomas" || cfg.Dt != 0.05 {
		t.Errorf("explicit fields wrong: %+v", cfg)
	}
	if cfg.Steps != DefaultSteps || cfg.Integrator != "rk4" {
		t.Errorf("omitted fields should keep defaults: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInitState(t *testing.T) {
	def, _ := field.Lookup("lorenz")

	cfg := Default()
	if got := cfg.InitState(def); got != def.Init {
		t.Errorf("default init = %v, want %v", got, def.Init)
	}

	cfg.Init = &InitConfig{X: 1, Y: 2, Z: 3}
	if got := cfg.InitState(def); got != (dynamo.State{1, 2, 3}) {
		t.Errorf("override init = %v, want (1,2,3)", got)
	}
}

func TestMergedParams(t *testing.T) {
	def, _ := field.Lookup("lorenz")
	cfg := Default()
	cfg.Params = dynamo.Params{"rho": 45.0}

	merged := cfg.MergedParams(def)
	if merged["rho"] != 45.0 {
		t.Errorf("override lost: rho = %v", merged["rho"])
	}
	if merged["sigma"] != 10.0 || merged["beta"] != 8.0/3.0 {
		t.Errorf("defaults lost: %v", merged)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lorenz", "stable")
	if cfg == nil {
		t.Fatal("lorenz/stable preset missing")
	}
	if cfg.Params["rho"] != 14.0 {
		t.Errorf("stable preset rho = %v, want 14", cfg.Params["rho"])
	}

	if GetPreset("lorenz", "nope") != nil {
		t.Error("unknown preset should return nil")
	}
	if GetPreset("nope", "classic") != nil {
		t.Error("unknown attractor should return nil")
	}
}

func TestPresetsCoverEveryAttractor(t *testing.T) {
	for _, def := range field.All() {
		names := ListPresets(strings.ToLower(def.Name))
		if len(names) == 0 {
			t.Errorf("no presets for %s", def.Name)
		}
	}
}

func TestPresetParamsAreKnownCoefficients(t *testing.T) {
	for attractor, group := range Presets {
		def, err := field.Lookup(attractor)
		if err != nil {
			t.Fatalf("preset group %q names an unknown attractor", attractor)
		}
		for preset, cfg := range group {
			for name := range cfg.Params {
				if _, ok := def.Params[name]; !ok {
					t.Errorf("%s/%s sets unknown coefficient %q", attractor, preset, name)
				}
			}
		}
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets("lorenz")
	want := []string{"classic", "stable", "wide"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

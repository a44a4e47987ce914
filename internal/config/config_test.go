package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/diatomic/internal/dynamo"
	"github.com/san-kum/diatomic/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != dynamo.ModelHarmonic {
		t.Errorf("expected model harmonic, got %s", cfg.Model)
	}
	if cfg.Timestep <= 0 {
		t.Error("timestep should be positive")
	}
	if cfg.Duration < cfg.Timestep {
		t.Error("duration should cover at least one step")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Model = dynamo.ModelMorse
	cfg.Temperature = 1200
	cfg.MaxSamples = 1000

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("element: Ar\nmodel: lennard-jones\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Element != "Ar" || cfg.Model != dynamo.ModelLennardJones {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Timestep != DefaultTimestep || cfg.Chart.Width != DefaultChartWidth {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("duration: [1, 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		patch func(*Config)
		field string
	}{
		{"no model", func(c *Config) { c.Model = "" }, "model"},
		{"no element", func(c *Config) { c.Element = "" }, "element"},
		{"negative max samples", func(c *Config) { c.MaxSamples = -1 }, "max_samples"},
		{"empty chart", func(c *Config) { c.Chart.Width = 0 }, "chart"},
		{"zero timestep", func(c *Config) { c.Timestep = 0 }, "timestep"},
		{"cold", func(c *Config) { c.Temperature = 0 }, "temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.patch(cfg)

			err := cfg.Validate()
			if !errors.Is(err, dynamo.ErrInvalidParameters) {
				t.Fatalf("expected ErrInvalidParameters, got %v", err)
			}
			var pe *dynamo.ParamError
			if !errors.As(err, &pe) || pe.Field != tt.field {
				t.Errorf("expected field %s, got %v", tt.field, err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset(dynamo.ModelLennardJones, "argon-dimer")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Element != "Ar" || cfg.Temperature != 100 {
		t.Errorf("unexpected preset %+v", cfg)
	}

	cfg.Temperature = 1
	if Presets[dynamo.ModelLennardJones]["argon-dimer"].Temperature != 100 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset(dynamo.ModelMorse, "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "room-h2"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets(dynamo.ModelMorse)
	if len(presets) != 3 || presets[0] != "hot-h2" {
		t.Errorf("unexpected morse presets %v", presets)
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestPresetsRun(t *testing.T) {
	for model := range Presets {
		for _, name := range ListPresets(model) {
			cfg := GetPreset(model, name)
			if cfg.Model != model {
				t.Errorf("%s/%s is filed under the wrong model", model, name)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", model, name, err)
				continue
			}
			if _, err := sim.New(sim.WithMaxSamples(100)).Run(cfg.Params()); !errors.Is(err, dynamo.ErrInvalidParameters) {
				t.Errorf("%s/%s: sample limit not enforced: %v", model, name, err)
			}
			p := cfg.Params()
			p2 := dynamo.NewParams(p.Model(), p.Element(), p.Timestep()*10, p.Timestep(), p.Temperature())
			if _, err := sim.Simulate(p2); err != nil {
				t.Errorf("%s/%s: %v", model, name, err)
			}
		}
	}
}

func TestTemperatureRange(t *testing.T) {
	got := TemperatureRange(100, 500, 5)
	expected := []float64{100, 200, 300, 400, 500}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("got %v, want %v", got, expected)
			break
		}
	}

	if got := TemperatureRange(300, 900, 1); len(got) != 1 || got[0] != 300 {
		t.Errorf("single temperature: got %v", got)
	}
}

func TestWithTemperature(t *testing.T) {
	cfg := DefaultConfig()
	hot := cfg.WithTemperature(2000)
	if hot.Temperature != 2000 || cfg.Temperature != DefaultTemperature {
		t.Errorf("WithTemperature should copy: %v %v", hot.Temperature, cfg.Temperature)
	}
}

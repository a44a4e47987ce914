package config

import (
	"sort"

	"github.com/san-kum/diatomic/internal/dynamo"
)

var Presets = map[string]map[string]*Config{
	dynamo.ModelHarmonic: {
		"room-h2": {
			Model: dynamo.ModelHarmonic, Element: "H", Duration: 1000.0, Timestep: 0.5, Temperature: 300,
		},
		"cold-h2": {
			Model: dynamo.ModelHarmonic, Element: "H", Duration: 1000.0, Timestep: 0.5, Temperature: 10,
		},
		"mercury": {
			Model: dynamo.ModelHarmonic, Element: "Hg", Duration: 200000.0, Timestep: 20.0, Temperature: 300,
		},
		"argon": {
			Model: dynamo.ModelHarmonic, Element: "Ar", Duration: 200000.0, Timestep: 20.0, Temperature: 100,
		},
	},
	dynamo.ModelMorse: {
		"room-h2": {
			Model: dynamo.ModelMorse, Element: "H", Duration: 1000.0, Timestep: 0.5, Temperature: 300,
		},
		"hot-h2": {
			Model: dynamo.ModelMorse, Element: "H", Duration: 1000.0, Timestep: 0.25, Temperature: 5000,
		},
		"near-dissociation": {
			Model: dynamo.ModelMorse, Element: "H", Duration: 2000.0, Timestep: 0.1, Temperature: 40000,
		},
	},
	dynamo.ModelLennardJones: {
		"argon-dimer": {
			Model: dynamo.ModelLennardJones, Element: "Ar", Duration: 200000.0, Timestep: 20.0, Temperature: 100,
		},
		"mercury-dimer": {
			Model: dynamo.ModelLennardJones, Element: "Hg", Duration: 200000.0, Timestep: 20.0, Temperature: 300,
		},
	},
}

// GetPreset returns a copy of the named preset with the default chart size,
// or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	cp := *cfg
	if cp.Chart.Width == 0 || cp.Chart.Height == 0 {
		cp.Chart = ChartConfig{Width: DefaultChartWidth, Height: DefaultChartHeight}
	}
	return &cp
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

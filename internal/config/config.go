package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/diatomic/internal/dynamo"
)

const (
	DefaultModel       = dynamo.ModelHarmonic
	DefaultElement     = "H"
	DefaultDuration    = 1000.0
	DefaultTimestep    = 0.5
	DefaultTemperature = 300.0
	DefaultChartWidth  = 1024
	DefaultChartHeight = 512
)

type Config struct {
	Model       string      `yaml:"model"`
	Element     string      `yaml:"element"`
	Duration    float64     `yaml:"duration"`
	Timestep    float64     `yaml:"timestep"`
	Temperature float64     `yaml:"temperature"`
	MaxSamples  int         `yaml:"max_samples,omitempty"`
	Chart       ChartConfig `yaml:"chart"`
}

type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Element:     DefaultElement,
		Duration:    DefaultDuration,
		Timestep:    DefaultTimestep,
		Temperature: DefaultTemperature,
		Chart: ChartConfig{
			Width:  DefaultChartWidth,
			Height: DefaultChartHeight,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys
// it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// Validate checks the fields the simulator does not: names must be set and
// the chart must have a size. Numeric run parameters go through
// dynamo.Params.Validate.
func (c *Config) Validate() error {
	if c.Model == "" {
		return &dynamo.ParamError{Field: "model", Value: 0, Reason: "must be set"}
	}
	if c.Element == "" {
		return &dynamo.ParamError{Field: "element", Value: 0, Reason: "must be set"}
	}
	if c.MaxSamples < 0 {
		return &dynamo.ParamError{Field: "max_samples", Value: float64(c.MaxSamples), Reason: "must not be negative"}
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return &dynamo.ParamError{
			Field:  "chart",
			Value:  float64(c.Chart.Width) * float64(c.Chart.Height),
			Reason: fmt.Sprintf("size %dx%d must be positive", c.Chart.Width, c.Chart.Height),
		}
	}
	return c.Params().Validate()
}

func (c *Config) Params() dynamo.Params {
	return dynamo.NewParams(c.Model, c.Element, c.Duration, c.Timestep, c.Temperature)
}

// WithTemperature returns a copy of c at temperature t.
func (c *Config) WithTemperature(t float64) *Config {
	cp := *c
	cp.Temperature = t
	return &cp
}

// TemperatureRange returns n evenly spaced temperatures from lo to hi
// inclusive. n < 2 yields just lo.
func TemperatureRange(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

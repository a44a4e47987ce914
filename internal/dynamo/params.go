package dynamo

import "math"

// Params describes one simulation run. It is immutable once built; use the
// accessors to introspect it, e.g. when labeling a plot.
type Params struct {
	model       string
	element     string
	duration    float64
	timestep    float64
	temperature float64
}

func NewParams(model, element string, duration, timestep, temperature float64) Params {
	return Params{
		model:       model,
		element:     element,
		duration:    duration,
		timestep:    timestep,
		temperature: temperature,
	}
}

func (p Params) Model() string        { return p.model }
func (p Params) Element() string      { return p.element }
func (p Params) Duration() float64    { return p.duration }
func (p Params) Timestep() float64    { return p.timestep }
func (p Params) Temperature() float64 { return p.temperature }

// Steps is the number of integration steps, truncated from duration/timestep.
// The division runs in single precision like the integrator itself, so
// 10/0.1 yields 100 rather than 99.
func (p Params) Steps() int {
	if p.timestep <= 0 {
		return 0
	}
	return int(float32(p.duration) / float32(p.timestep))
}

// Validate reports the first parameter outside its valid range. The returned
// error wraps ErrInvalidParameters.
func (p Params) Validate() error {
	switch {
	case !finite(p.timestep) || p.timestep <= 0:
		return &ParamError{Field: "timestep", Value: p.timestep, Reason: "must be positive"}
	case !finite(p.duration):
		return &ParamError{Field: "duration", Value: p.duration, Reason: "must be finite"}
	case p.duration < p.timestep:
		return &ParamError{Field: "duration", Value: p.duration, Reason: "must be at least one timestep"}
	case !finite(p.temperature) || p.temperature <= 0:
		return &ParamError{Field: "temperature", Value: p.temperature, Reason: "must be positive"}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

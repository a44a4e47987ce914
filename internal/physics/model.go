package physics

import (
	"fmt"

	"github.com/san-kum/diatomic/internal/dynamo"
	"github.com/san-kum/diatomic/internal/elements"
)

// Model is a force law that also knows how to turn the harmonic thermal seed
// into its own initial bond extension.
type Model interface {
	dynamo.Potential
	InitialDisplacement(seed float32) (float32, error)
	GetParams() map[string]float64
}

// initialEnergy is implemented by models whose energy at t=0 is evaluated
// apart from Energy.
type initialEnergy interface {
	InitialEnergy(r float32) float32
}

var constructors = map[string]func(elements.Properties) Model{
	dynamo.ModelHarmonic:     func(p elements.Properties) Model { return NewHarmonic(p) },
	dynamo.ModelMorse:        func(p elements.Properties) Model { return NewMorse(p) },
	dynamo.ModelLennardJones: func(p elements.Properties) Model { return NewLennardJones(p) },
}

// New builds the named model from an element's constants.
func New(name string, p elements.Properties) (Model, error) {
	fn, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", dynamo.ErrUnknownModel, name, dynamo.Models)
	}
	return fn(p), nil
}

// ThermalSeed is the harmonic extension in metres that stores 2·k_B·T of
// potential energy in a spring of constant kSI. Every model starts from it.
func ThermalSeed(kSI float32, temperature float64) float32 {
	return sqrt32((2.0 * KB * float32(temperature)) / kSI)
}

// InitialState derives the state at t=0 analytically: the bond is at rest at
// the model's initial displacement, so total energy equals potential energy.
func InitialState(m Model, p elements.Properties, temperature float64) (dynamo.State, error) {
	fail := func(reason string) error {
		return &dynamo.InitialConditionError{Model: m.Name(), Element: p.Symbol, Temperature: temperature, Reason: reason}
	}

	if !p.Supports(m.Name()) {
		return dynamo.State{}, fail(fmt.Sprintf("%s has no %s constants", p.Name, m.Name()))
	}

	r0, err := m.InitialDisplacement(ThermalSeed(p.SpringConstantSI, temperature))
	if err != nil {
		return dynamo.State{}, fail(err.Error())
	}

	force := m.Force(r0)
	u := m.Energy(r0)
	if ie, ok := m.(initialEnergy); ok {
		u = ie.InitialEnergy(r0)
	}
	s := dynamo.State{
		Displacement: r0,
		Force:        force,
		Acceleration: force / p.MassAU,
		Potential:    u,
		Total:        u,
	}
	if !s.IsValid() {
		return dynamo.State{}, fail("initial state is not finite")
	}
	return s, nil
}

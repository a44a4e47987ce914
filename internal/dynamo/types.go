package dynamo

import (
	"fmt"
	"math"
)

// Model names accepted by NewParams.
const (
	ModelHarmonic     = "harmonic"
	ModelMorse        = "morse"
	ModelLennardJones = "lennard-jones"
)

// Models lists the supported potential models in display order.
var Models = []string{ModelHarmonic, ModelMorse, ModelLennardJones}

// State is the instantaneous state of the bond. Every field is evolved in
// single precision to match the precision of the reference constants.
type State struct {
	Time         float32
	Displacement float32
	Force        float32
	Acceleration float32
	Velocity     float32
	Kinetic      float32
	Potential    float32
	Total        float32
}

func (s State) IsValid() bool {
	for _, v := range [...]float32{s.Time, s.Displacement, s.Force, s.Acceleration, s.Velocity, s.Kinetic, s.Potential, s.Total} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (s State) String() string {
	return fmt.Sprintf("t=%.4f r=%.6g v=%.6g F=%.6g E=%.6g", s.Time, s.Displacement, s.Velocity, s.Force, s.Total)
}

// Potential is a one-dimensional force law acting on the bond displacement r.
type Potential interface {
	Name() string
	Force(r float32) float32
	Energy(r float32) float32
}

// Integrator advances a state by one fixed timestep under a potential.
type Integrator interface {
	Step(pot Potential, mass float32, s *State, dt float32)
}

type Metric interface {
	Name() string
	Observe(s State)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s State)
}

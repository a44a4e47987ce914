package integrators

import "github.com/san-kum/diatomic/internal/dynamo"

// Verlet is the position form of velocity-Verlet: drift half a step, kick
// with the force at the midpoint, drift the remaining half. Each step
// evaluates its own midpoint force; the force stored in the state after a
// step is diagnostic only.
type Verlet struct{}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(pot dynamo.Potential, mass float32, s *dynamo.State, dt float32) {
	halfDt := dt * 0.5

	// float32 conversions round each product, so no platform fuses them
	// into a multiply-add.
	rHalf := s.Displacement + float32(s.Velocity*halfDt)
	acc := pot.Force(rHalf) / mass

	s.Velocity += float32(acc * dt)
	s.Displacement = rHalf + float32(s.Velocity*halfDt)

	s.Force = pot.Force(s.Displacement)
	s.Acceleration = s.Force / mass

	s.Kinetic = 0.5 * mass * s.Velocity * s.Velocity
	s.Potential = pot.Energy(s.Displacement)
	s.Total = s.Kinetic + s.Potential

	s.Time += dt
}

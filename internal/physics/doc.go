// Package physics provides the bond force laws and the initial-state
// derivation for the diatomic simulation.
//
// Each model implements [dynamo.Potential] over the displacement r from
// equilibrium, in atomic units:
//
//   - [Harmonic]: F = -k r
//   - [Morse]: F = -2Dα e^{-αr}(1 - e^{-αr})
//   - [LennardJones]: 12-6 potential about r*
//
// # Initial Conditions
//
// All models start from the same thermal seed, the harmonic extension
// sqrt(2 k_B T / k) in metres, and map it to their own initial displacement:
//
//	m, _ := physics.New("morse", props)
//	s0, err := physics.InitialState(m, props, 300)
//
// The Morse inversion fails once k_B·T reaches the well depth; the error
// wraps [dynamo.ErrInvalidInitialCondition].
package physics

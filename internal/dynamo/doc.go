// Package dynamo provides the core types shared by the diatomic simulation.
//
// The package defines the values and interfaces that flow between the
// element table, the force laws and the integrator:
//
//   - [Params]: immutable description of one run
//   - [State]: the eight scalars evolved each step
//   - [Result]: six parallel time series, one sample per step
//   - [Potential]: a one-dimensional force law F(r), U(r)
//   - [Integrator]: fixed-timestep stepper over a [Potential]
//
// # Errors
//
// Every failure is reported before the first step and wraps one of
// [ErrUnknownElement], [ErrUnknownModel], [ErrInvalidInitialCondition] or
// [ErrInvalidParameters]; test for them with errors.Is:
//
//	res, err := sim.Simulate(p)
//	if errors.Is(err, dynamo.ErrUnknownElement) {
//	    // report the symbol
//	}
package dynamo

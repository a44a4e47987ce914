package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrUnknownElement indicates an element symbol absent from the property table.
	ErrUnknownElement = errors.New("dynamo: unknown element")

	// ErrUnknownModel indicates a model name outside the supported set.
	ErrUnknownModel = errors.New("dynamo: unknown model")

	// ErrInvalidInitialCondition indicates the initial displacement could not be
	// derived, e.g. the temperature exceeds what the potential well can hold.
	ErrInvalidInitialCondition = errors.New("dynamo: invalid initial condition")

	// ErrInvalidParameters indicates a run parameter outside its valid range.
	ErrInvalidParameters = errors.New("dynamo: invalid parameters")
)

// ParamError reports which run parameter was rejected and why.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %s", ErrInvalidParameters, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameters
}

// InitialConditionError wraps ErrInvalidInitialCondition with the model and
// element that produced it.
type InitialConditionError struct {
	Model       string
	Element     string
	Temperature float64
	Reason      string
}

func (e *InitialConditionError) Error() string {
	return fmt.Sprintf("%s: %s/%s at %gK: %s", ErrInvalidInitialCondition, e.Model, e.Element, e.Temperature, e.Reason)
}

func (e *InitialConditionError) Unwrap() error {
	return ErrInvalidInitialCondition
}

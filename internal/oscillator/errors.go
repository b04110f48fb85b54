package oscillator

import (
	"errors"
	"fmt"
)

// ErrParameterBounds indicates a parameter value outside its valid range.
var ErrParameterBounds = errors.New("oscillator: parameter out of valid bounds")

// ConfigError reports which parameter violated its invariant. It unwraps to
// ErrParameterBounds so callers can match with errors.Is.
type ConfigError struct {
	Param string
	Value float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("oscillator: %s=%g out of valid bounds", e.Param, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrParameterBounds
}

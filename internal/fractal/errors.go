package fractal

import (
	"errors"
	"fmt"
)

// Domain errors for generation parameters.
var (
	// ErrZeroAreaWindow indicates a complex-plane window whose corners
	// coincide along at least one axis.
	ErrZeroAreaWindow = errors.New("fractal: window has zero area")

	// ErrInvalidSize indicates a non-positive output extent.
	ErrInvalidSize = errors.New("fractal: output size must be positive")

	// ErrInvalidBudget indicates a non-positive iteration budget.
	ErrInvalidBudget = errors.New("fractal: iteration budget must be positive")

	// ErrUnknownGenerator indicates a name with no catalog entry.
	ErrUnknownGenerator = errors.New("fractal: unknown generator")

	// ErrUnknownPalette indicates a name with no palette entry.
	ErrUnknownPalette = errors.New("fractal: unknown palette")

	// ErrKindMismatch indicates an output payload consumed as the wrong
	// kind.
	ErrKindMismatch = errors.New("fractal: output kind mismatch")
)

// ParamError wraps a sentinel with the parameter that failed validation.
type ParamError struct {
	Field   string
	Value   any
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s (%s=%v)", e.Wrapped.Error(), e.Field, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

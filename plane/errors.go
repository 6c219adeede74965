package plane

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every InvalidInputError.
var ErrInvalidInput = errors.New("input is not acceptable")

// InvalidInputError names the field that aborted a redraw.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s is not acceptable: %q", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

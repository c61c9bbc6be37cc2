package internal

import (
	"errors"
	"fmt"
)

// InfrastructureError represents a failure of the host environment the
// lifecycle sources sit on (SDL could not open a window, the power key device
// could not be read, ...). Lifecycle tracking itself never fails.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "open_window", "open_input_device")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("foreground: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("foreground: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

package foreground

import "github.com/BrandonKowalski/foreground/pkg/foreground/internal"

// InfrastructureError represents a failure of the host environment a
// lifecycle source depends on (SDL window creation, the power key device).
// Lifecycle tracking itself never fails.
type InfrastructureError = internal.InfrastructureError

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return internal.NewInfrastructureError(op, err)
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	return internal.IsInfrastructureError(err)
}

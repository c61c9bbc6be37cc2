//go:build !linux

package power

import "context"

// Watch is unavailable off Linux.
func Watch(ctx context.Context, cfg ButtonConfig, onChange func(suspended bool)) error {
	return ErrUnsupported
}

package monitor

import (
	"fmt"
	"strings"
	"weak"
)

// Entry is the last reported state of one screen.
type Entry[T any] struct {
	ref   weak.Pointer[T]
	state State
}

// Screen returns the tracked screen, or nil once it has been collected.
func (e Entry[T]) Screen() *T {
	return e.ref.Value()
}

func (e Entry[T]) State() State {
	return e.state
}

// Expired reports whether the screen behind the entry no longer exists.
func (e Entry[T]) Expired() bool {
	return e.ref.Value() == nil
}

// Is reports whether the entry tracks screen. It stays accurate after the
// screen has been collected.
func (e Entry[T]) Is(screen *T) bool {
	return screen != nil && e.ref == weak.Make(screen)
}

func describe[T any](screen *T) string {
	if screen == nil {
		return "<nil>"
	}
	if s, ok := any(screen).(fmt.Stringer); ok {
		return s.String()
	}
	name := fmt.Sprintf("%T", screen)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimPrefix(name, "*")
}

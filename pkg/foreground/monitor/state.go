package monitor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidState is returned when a state name cannot be parsed.
var ErrInvalidState = errors.New("invalid lifecycle state")

// State is the last lifecycle stage reported for a screen.
// The numeric values carry no ordering; use Rank or Compare.
type State int

const (
	StateCreated State = iota
	StateStarted
	StateResumed
	StatePaused
	StateStopped
	StateDestroyed
)

// States lists every lifecycle state in declaration order.
var States = []State{
	StateCreated,
	StateStarted,
	StateResumed,
	StatePaused,
	StateStopped,
	StateDestroyed,
}

func (s State) GetName() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateStarted:
		return "Started"
	case StateResumed:
		return "Resumed"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	case StateDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

func (s State) String() string {
	return s.GetName()
}

// ParseState parses a state name case-insensitively ("resumed", "Paused", ...).
func ParseState(raw string) (State, error) {
	name := strings.TrimSpace(raw)
	for _, s := range States {
		if strings.EqualFold(s.GetName(), name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidState, raw)
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.GetName()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

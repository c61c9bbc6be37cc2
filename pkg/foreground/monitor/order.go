package monitor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOrdering is returned when an ordering name cannot be parsed.
var ErrInvalidOrdering = errors.New("invalid ordering")

// Ordering selects which activeness table ranks lifecycle states.
type Ordering int

const (
	// Strict treats any screen that has begun appearing (Created, Started)
	// as more active than a Paused one, and keeps the app foreground for it.
	Strict Ordering = iota
	// Relaxed only trusts Resumed or Paused screens as foreground.
	Relaxed
)

// DefaultOrdering is used when no ordering is configured.
const DefaultOrdering = Strict

// Least to most active. Every state appears exactly once in each table.
var (
	relaxedOrder = [...]State{
		StateDestroyed,
		StateStopped,
		StateCreated,
		StateStarted,
		StatePaused,
		StateResumed,
	}
	strictOrder = [...]State{
		StateDestroyed,
		StateStopped,
		StatePaused,
		StateCreated,
		StateStarted,
		StateResumed,
	}
)

func (o Ordering) String() string {
	switch o {
	case Strict:
		return "strict"
	case Relaxed:
		return "relaxed"
	default:
		return "unknown"
	}
}

// normalize maps values outside the enum to DefaultOrdering.
func (o Ordering) normalize() Ordering {
	if o != Strict && o != Relaxed {
		return DefaultOrdering
	}
	return o
}

// Table returns the ordering's states from least to most active.
// Values outside the enum use the DefaultOrdering table.
func (o Ordering) Table() []State {
	if o == Relaxed {
		return relaxedOrder[:]
	}
	return strictOrder[:]
}

// ParseOrdering accepts "strict" or "relaxed" in any case. An empty string
// yields DefaultOrdering.
func ParseOrdering(raw string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return DefaultOrdering, nil
	case "strict":
		return Strict, nil
	case "relaxed":
		return Relaxed, nil
	default:
		return DefaultOrdering, fmt.Errorf("%w: %q", ErrInvalidOrdering, raw)
	}
}

// Rank returns the zero-based position of s in the ordering's table,
// or -1 for a value outside the enum.
func Rank(s State, o Ordering) int {
	table := o.Table()
	for i := range table {
		if table[i] == s {
			return i
		}
	}
	return -1
}

// Compare reports how much more active left is than right:
// negative if less, zero if equal, positive if more.
func Compare(left, right State, o Ordering) int {
	return Rank(left, o) - Rank(right, o)
}

// IsForegroundState is the decision rule applied to the top screen.
// Values outside the enum decide like DefaultOrdering, matching Table.
func IsForegroundState(s State, o Ordering) bool {
	switch s {
	case StateResumed, StatePaused:
		return true
	case StateStarted, StateCreated:
		return o.normalize() == Strict
	default:
		return false
	}
}

func (o Ordering) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Ordering) UnmarshalText(text []byte) error {
	parsed, err := ParseOrdering(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Package power watches the device power key and turns short presses into
// suspend and wake notifications for lifecycle sources.
package power

import (
	"errors"
	"time"
)

// ErrUnsupported is returned by Watch on platforms without evdev.
var ErrUnsupported = errors.New("power key watching is not supported on this platform")

// DefaultButtonCode is KEY_POWER.
const DefaultButtonCode = 116

// ButtonConfig describes the power key device and how presses are classified.
type ButtonConfig struct {
	ButtonCode    int           // evdev key code of the power key
	DevicePath    string        // Input device, e.g. /dev/input/event1
	ShortPressMax time.Duration // Longer presses are left to the system
	CoolDown      time.Duration // Presses this soon after a toggle are ignored
}

func (c ButtonConfig) withDefaults() ButtonConfig {
	if c.ButtonCode == 0 {
		c.ButtonCode = DefaultButtonCode
	}
	if c.ShortPressMax <= 0 {
		c.ShortPressMax = 2 * time.Second
	}
	if c.CoolDown <= 0 {
		c.CoolDown = time.Second
	}
	return c
}

// Key event values as delivered by evdev.
const (
	keyReleased = 0
	keyPressed  = 1
)

// pressTracker toggles the suspended state on short presses.
type pressTracker struct {
	cfg        ButtonConfig
	pressedAt  time.Time
	lastToggle time.Time
	suspended  bool
}

func newPressTracker(cfg ButtonConfig) *pressTracker {
	return &pressTracker{cfg: cfg.withDefaults()}
}

// observe feeds one key event and reports the suspended state and whether it
// just changed. Auto-repeat events are ignored.
func (p *pressTracker) observe(value int32, at time.Time) (suspended bool, changed bool) {
	switch value {
	case keyPressed:
		p.pressedAt = at
	case keyReleased:
		if p.pressedAt.IsZero() {
			break
		}
		held := at.Sub(p.pressedAt)
		p.pressedAt = time.Time{}

		if held > p.cfg.ShortPressMax {
			break
		}
		if !p.lastToggle.IsZero() && at.Sub(p.lastToggle) < p.cfg.CoolDown {
			break
		}

		p.lastToggle = at
		p.suspended = !p.suspended
		return p.suspended, true
	}
	return p.suspended, false
}

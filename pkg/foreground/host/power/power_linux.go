//go:build linux

package power

import (
	"context"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/foreground/pkg/foreground/internal"
)

// Watch reads the power key device until ctx is done and calls onChange with
// the new suspended state after every accepted short press.
func Watch(ctx context.Context, cfg ButtonConfig, onChange func(suspended bool)) error {
	cfg = cfg.withDefaults()
	logger := internal.GetInternalLogger()

	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return internal.NewInfrastructureError("open_input_device", err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		// Unblocks ReadOne
		dev.Close()
	}()

	logger.Debug("Watching power key", "device", cfg.DevicePath, "code", cfg.ButtonCode)

	tracker := newPressTracker(cfg)
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return internal.NewInfrastructureError("read_input_device", err)
		}

		if ev.Type != evdev.EV_KEY || ev.Code != evdev.EvCode(cfg.ButtonCode) {
			continue
		}

		suspended, changed := tracker.observe(ev.Value, time.Unix(ev.Time.Unix()))
		if changed {
			logger.Debug("Power key toggled suspend", "suspended", suspended)
			onChange(suspended)
		}
	}
}

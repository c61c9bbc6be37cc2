package main

import (
	"log/slog"

	"github.com/BrandonKowalski/foreground/pkg/foreground"
	"github.com/BrandonKowalski/foreground/pkg/foreground/config"
	"github.com/BrandonKowalski/foreground/pkg/foreground/notify"
	"github.com/BrandonKowalski/foreground/pkg/foreground/router"
)

const (
	screenHome router.Screen = iota
	screenSettings
	screenAbout
)

var screenNames = map[router.Screen]string{
	screenHome:     "Home",
	screenSettings: "Settings",
	screenAbout:    "About",
}

// runScripted walks Home -> Settings -> About -> back to Home -> exit.
func runScripted(cfg *config.Config, toast *notify.Notifier, logger *slog.Logger) error {
	m := foreground.NewMonitor[router.Instance](cfg)
	m.Subscribe(toast)

	show := func(input any) (any, error) {
		top, _ := m.TopScreen()
		state, _ := m.TopState()
		if top != nil {
			logger.Info("Showing screen", "screen", screenNames[top.Screen], "state", state, "foreground", m.IsForeground(), "screens", m.Len())
		}
		return input, nil
	}

	visits := make(map[router.Screen]int)

	r := router.New().
		Register(screenHome, show).
		Register(screenSettings, show).
		Register(screenAbout, show).
		ReportTo(m).
		OnTransition(func(from router.Screen, _ any, stack *router.Stack) (router.Screen, any) {
			visits[from]++
			switch from {
			case screenHome:
				if visits[from] > 1 {
					return router.ScreenExit, nil
				}
				stack.Push(from, nil, nil)
				return screenSettings, nil
			case screenSettings:
				stack.Push(from, nil, nil)
				return screenAbout, nil
			case screenAbout:
				// Back to the top of the history, dropping Settings
				stack.Clear()
				return screenHome, nil
			}
			return router.ScreenExit, nil
		})

	if err := r.Run(screenHome, nil); err != nil {
		return err
	}

	logger.Info("Finished", "foreground", m.IsForeground(), "ordering", m.Ordering())
	return nil
}

// Package sdlhost turns SDL window events into screen lifecycle events.
//
// Each SDL window is one screen. A Tracker maps window events to lifecycle
// states and forwards them to a Reporter, usually a
// *monitor.Monitor[sdlhost.Window]:
//
//	SHOWN, RESTORED    -> Started
//	FOCUS_GAINED       -> Resumed
//	FOCUS_LOST         -> Paused
//	HIDDEN, MINIMIZED  -> Stopped
//	CLOSE              -> Destroyed
//
// All SDL calls must happen on the thread that called Init.
package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/foreground/pkg/foreground/internal"
)

// Init initializes the SDL video subsystem.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return internal.NewInfrastructureError("sdl_init", err)
	}
	return nil
}

// Quit shuts SDL down. Close every window first.
func Quit() {
	sdl.Quit()
}

package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/foreground/pkg/foreground/constants"
	"github.com/BrandonKowalski/foreground/pkg/foreground/internal"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
)

// Window wraps an SDL window and renderer. Its address is the screen
// identity reported to the monitor.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	id              uint32
	hasVSync        bool
	lastPresentTime uint64
}

// OpenWindow creates a window with a renderer. Sizes come from
// WINDOW_WIDTH and WINDOW_HEIGHT when set.
func OpenWindow(title string, winOpts WindowOptions) (*Window, error) {
	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	width := constants.EnvInt32(constants.WindowWidthEnvVar, defaultWidth)
	height := constants.EnvInt32(constants.WindowHeightEnvVar, defaultHeight)

	internal.GetInternalLogger().Debug("Initializing SDL Window", "title", title, "width", width, "height", height)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, internal.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, internal.NewInfrastructureError("create_renderer", err)
	}

	id, err := window.GetID()
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, internal.NewInfrastructureError("window_id", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		id:       id,
		hasVSync: vsync,
	}, nil
}

// ID returns the SDL window id events refer to.
func (w *Window) ID() uint32 {
	return w.id
}

func (w *Window) String() string {
	return w.Title
}

// Fill clears the window to a solid color.
func (w *Window) Fill(color sdl.Color) {
	w.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close releases the renderer and window.
func (w *Window) Close() {
	if w.Renderer != nil {
		w.Renderer.Destroy()
	}
	if w.Window != nil {
		w.Window.Destroy()
	}
}

package sdlhost

import (
	"context"
	"slices"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/foreground/pkg/foreground/monitor"
)

// Reporter receives window lifecycle events.
// *monitor.Monitor[sdlhost.Window] satisfies it.
type Reporter interface {
	ReportEvent(window *Window, state monitor.State)
}

// StateForWindowEvent maps an SDL window event id to a lifecycle state.
// The second result is false for events that say nothing about the lifecycle.
func StateForWindowEvent(event uint8) (monitor.State, bool) {
	switch event {
	case sdl.WINDOWEVENT_SHOWN, sdl.WINDOWEVENT_RESTORED:
		return monitor.StateStarted, true
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		return monitor.StateResumed, true
	case sdl.WINDOWEVENT_FOCUS_LOST:
		return monitor.StatePaused, true
	case sdl.WINDOWEVENT_HIDDEN, sdl.WINDOWEVENT_MINIMIZED:
		return monitor.StateStopped, true
	case sdl.WINDOWEVENT_CLOSE:
		return monitor.StateDestroyed, true
	default:
		return 0, false
	}
}

// Tracker keeps every tracked window alive and forwards its window events as
// lifecycle events. A closed window is reported Destroyed and released.
type Tracker struct {
	reporter Reporter

	mu      sync.Mutex
	windows map[uint32]*Window
	focused uint32

	suspended *atomic.Bool
}

// NewTracker creates a Tracker reporting to reporter.
func NewTracker(reporter Reporter) *Tracker {
	return &Tracker{
		reporter:  reporter,
		windows:   make(map[uint32]*Window),
		suspended: atomic.NewBool(false),
	}
}

// Track starts following w and reports it Created.
func (t *Tracker) Track(w *Window) {
	t.mu.Lock()
	t.windows[w.ID()] = w
	t.mu.Unlock()

	t.reporter.ReportEvent(w, monitor.StateCreated)
}

// Untrack reports the window Destroyed and stops following it.
// It returns the window so the caller can close it.
func (t *Tracker) Untrack(id uint32) (*Window, bool) {
	t.mu.Lock()
	w, ok := t.windows[id]
	delete(t.windows, id)
	if t.focused == id {
		t.focused = 0
	}
	t.mu.Unlock()

	if ok {
		t.reporter.ReportEvent(w, monitor.StateDestroyed)
	}
	return w, ok
}

// Len returns the number of tracked windows.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.windows)
}

// HandleEvent forwards SDL window events for tracked windows and reports
// whether the event was consumed.
func (t *Tracker) HandleEvent(ev sdl.Event) bool {
	we, ok := ev.(*sdl.WindowEvent)
	if !ok {
		return false
	}
	return t.HandleWindowEvent(we.WindowID, we.Event)
}

// HandleWindowEvent forwards a single window event. Events for untracked
// windows, and everything but CLOSE while suspended, are ignored.
func (t *Tracker) HandleWindowEvent(windowID uint32, event uint8) bool {
	state, ok := StateForWindowEvent(event)
	if !ok {
		return false
	}

	if state == monitor.StateDestroyed {
		_, tracked := t.Untrack(windowID)
		return tracked
	}

	if t.suspended.Load() {
		return false
	}

	t.mu.Lock()
	w, tracked := t.windows[windowID]
	if tracked {
		switch state {
		case monitor.StateResumed:
			t.focused = windowID
		case monitor.StatePaused, monitor.StateStopped:
			if t.focused == windowID {
				t.focused = 0
			}
		}
	}
	t.mu.Unlock()

	if !tracked {
		return false
	}

	t.reporter.ReportEvent(w, state)
	return true
}

// Suspend reports every tracked window Stopped, pausing the focused one
// first. Window events other than CLOSE are ignored until Wake.
func (t *Tracker) Suspend() {
	if t.suspended.Swap(true) {
		return
	}

	windows, focused := t.sorted()
	for _, w := range windows {
		if w.ID() == focused {
			t.reporter.ReportEvent(w, monitor.StatePaused)
		}
		t.reporter.ReportEvent(w, monitor.StateStopped)
	}
}

// Wake reports every tracked window Started again and resumes the window
// that had focus when the device was suspended.
func (t *Tracker) Wake() {
	if !t.suspended.Swap(false) {
		return
	}

	windows, focused := t.sorted()
	var resume *Window
	for _, w := range windows {
		t.reporter.ReportEvent(w, monitor.StateStarted)
		if w.ID() == focused {
			resume = w
		}
	}
	if resume != nil {
		t.reporter.ReportEvent(resume, monitor.StateResumed)
	}
}

// SetSuspended calls Suspend or Wake.
func (t *Tracker) SetSuspended(suspended bool) {
	if suspended {
		t.Suspend()
	} else {
		t.Wake()
	}
}

// Suspended reports whether the tracker is suspended.
func (t *Tracker) Suspended() bool {
	return t.suspended.Load()
}

func (t *Tracker) sorted() ([]*Window, uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	windows := make([]*Window, 0, len(t.windows))
	for _, w := range t.windows {
		windows = append(windows, w)
	}
	slices.SortFunc(windows, func(a, b *Window) int {
		return int(a.ID()) - int(b.ID())
	})
	return windows, t.focused
}

// Pump polls SDL events on the calling thread and hands them to the tracker
// until ctx is done, SDL reports quit, or the last tracked window closes.
// onFrame, if set, runs once per polling pass.
func Pump(ctx context.Context, t *Tracker, onFrame func()) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, quit := ev.(*sdl.QuitEvent); quit {
				return nil
			}
			t.HandleEvent(ev)
		}

		if t.Len() == 0 {
			return nil
		}

		if onFrame != nil {
			onFrame()
		} else {
			sdl.Delay(16)
		}
	}
}

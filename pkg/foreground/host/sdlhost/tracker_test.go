package sdlhost

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/foreground/pkg/foreground/monitor"
)

type recordingReporter struct {
	events []string
}

func (r *recordingReporter) ReportEvent(w *Window, state monitor.State) {
	r.events = append(r.events, fmt.Sprintf("%s %s", w.Title, state))
}

func fakeWindow(id uint32, title string) *Window {
	return &Window{Title: title, id: id}
}

func TestStateForWindowEvent(t *testing.T) {
	tests := []struct {
		event uint8
		state monitor.State
		ok    bool
	}{
		{sdl.WINDOWEVENT_SHOWN, monitor.StateStarted, true},
		{sdl.WINDOWEVENT_RESTORED, monitor.StateStarted, true},
		{sdl.WINDOWEVENT_FOCUS_GAINED, monitor.StateResumed, true},
		{sdl.WINDOWEVENT_FOCUS_LOST, monitor.StatePaused, true},
		{sdl.WINDOWEVENT_HIDDEN, monitor.StateStopped, true},
		{sdl.WINDOWEVENT_MINIMIZED, monitor.StateStopped, true},
		{sdl.WINDOWEVENT_CLOSE, monitor.StateDestroyed, true},
		{sdl.WINDOWEVENT_EXPOSED, 0, false},
		{sdl.WINDOWEVENT_MOVED, 0, false},
		{sdl.WINDOWEVENT_RESIZED, 0, false},
	}

	for _, tt := range tests {
		state, ok := StateForWindowEvent(tt.event)
		require.Equal(t, tt.ok, ok, "event %d", tt.event)
		if tt.ok {
			require.Equal(t, tt.state, state, "event %d", tt.event)
		}
	}
}

func TestTrackerForwardsWindowEvents(t *testing.T) {
	rec := &recordingReporter{}
	tr := NewTracker(rec)
	tr.Track(fakeWindow(1, "main"))

	require.True(t, tr.HandleWindowEvent(1, sdl.WINDOWEVENT_SHOWN))
	require.True(t, tr.HandleWindowEvent(1, sdl.WINDOWEVENT_FOCUS_GAINED))
	require.False(t, tr.HandleWindowEvent(1, sdl.WINDOWEVENT_EXPOSED))
	require.False(t, tr.HandleWindowEvent(2, sdl.WINDOWEVENT_FOCUS_GAINED))
	require.True(t, tr.HandleWindowEvent(1, sdl.WINDOWEVENT_MINIMIZED))
	require.True(t, tr.HandleWindowEvent(1, sdl.WINDOWEVENT_CLOSE))
	require.False(t, tr.HandleWindowEvent(1, sdl.WINDOWEVENT_CLOSE))

	require.Zero(t, tr.Len())
	require.Equal(t, []string{
		"main Created",
		"main Started",
		"main Resumed",
		"main Stopped",
		"main Destroyed",
	}, rec.events)
}

func TestHandleEventIgnoresOtherEvents(t *testing.T) {
	tr := NewTracker(&recordingReporter{})
	tr.Track(fakeWindow(1, "main"))

	require.False(t, tr.HandleEvent(&sdl.KeyboardEvent{}))
	require.True(t, tr.HandleEvent(&sdl.WindowEvent{WindowID: 1, Event: sdl.WINDOWEVENT_FOCUS_LOST}))
}

func TestSuspendAndWake(t *testing.T) {
	rec := &recordingReporter{}
	tr := NewTracker(rec)
	tr.Track(fakeWindow(2, "settings"))
	tr.Track(fakeWindow(1, "main"))
	tr.HandleWindowEvent(1, sdl.WINDOWEVENT_FOCUS_GAINED)
	rec.events = nil

	tr.Suspend()
	tr.Suspend()
	require.True(t, tr.Suspended())
	require.False(t, tr.HandleWindowEvent(1, sdl.WINDOWEVENT_FOCUS_GAINED))

	tr.Wake()
	tr.Wake()
	require.False(t, tr.Suspended())

	require.Equal(t, []string{
		"main Paused",
		"main Stopped",
		"settings Stopped",
		"main Started",
		"settings Started",
		"main Resumed",
	}, rec.events)
}

func TestCloseWhileSuspended(t *testing.T) {
	rec := &recordingReporter{}
	tr := NewTracker(rec)
	tr.Track(fakeWindow(1, "main"))

	tr.SetSuspended(true)
	require.True(t, tr.HandleWindowEvent(1, sdl.WINDOWEVENT_CLOSE))
	require.Zero(t, tr.Len())
}

func TestTrackerDrivesMonitor(t *testing.T) {
	m := monitor.New[Window](monitor.Options{
		Ordering: monitor.Relaxed,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	var changes []bool
	m.Notify(func(fg bool) { changes = append(changes, fg) })

	tr := NewTracker(m)
	win := fakeWindow(1, "main")
	tr.Track(win)
	tr.HandleWindowEvent(1, sdl.WINDOWEVENT_SHOWN)
	require.False(t, m.IsForeground())

	tr.HandleWindowEvent(1, sdl.WINDOWEVENT_FOCUS_GAINED)
	require.True(t, m.IsForeground())

	tr.Suspend()
	require.False(t, m.IsForeground())

	tr.Wake()
	require.True(t, m.IsForeground())
	top, ok := m.TopScreen()
	require.True(t, ok)
	require.Same(t, win, top)

	tr.HandleWindowEvent(1, sdl.WINDOWEVENT_CLOSE)
	require.False(t, m.IsForeground())
	require.Equal(t, []bool{true, false, true, false}, changes)
}

func TestWindowOptionsFlags(t *testing.T) {
	require.True(t, WindowOptions{}.IsZero())

	flags := WindowOptions{Resizable: true, Borderless: true}.ToSDLFlags()
	require.NotZero(t, flags&sdl.WINDOW_SHOWN)
	require.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	require.NotZero(t, flags&sdl.WINDOW_BORDERLESS)
	require.Zero(t, flags&sdl.WINDOW_FULLSCREEN)

	hidden := WindowOptions{Hidden: true}.ToSDLFlags()
	require.NotZero(t, hidden&sdl.WINDOW_HIDDEN)
	require.Zero(t, hidden&sdl.WINDOW_SHOWN)
}

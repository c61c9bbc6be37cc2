package router

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/foreground/pkg/foreground/monitor"
)

const (
	screenA Screen = iota
	screenB
	screenC
)

type event struct {
	instance *Instance
	state    monitor.State
}

type recordingReporter struct {
	events []event
}

func (r *recordingReporter) ReportEvent(instance *Instance, state monitor.State) {
	r.events = append(r.events, event{instance: instance, state: state})
}

func (r *recordingReporter) lines() []string {
	names := map[Screen]string{screenA: "A", screenB: "B", screenC: "C"}
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, fmt.Sprintf("%s %s", names[e.instance.Screen], e.state))
	}
	return out
}

func (r *recordingReporter) instancesOf(screen Screen) map[*Instance]bool {
	seen := make(map[*Instance]bool)
	for _, e := range r.events {
		if e.instance.Screen == screen {
			seen[e.instance] = true
		}
	}
	return seen
}

func passThrough(input any) (any, error) {
	return input, nil
}

func TestRunRequiresTransition(t *testing.T) {
	err := New().Register(screenA, passThrough).Run(screenA, nil)
	require.EqualError(t, err, "router: no transition function set")
}

func TestRunRejectsUnregisteredStart(t *testing.T) {
	rec := &recordingReporter{}
	err := New().
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil }).
		ReportTo(rec).
		Run(screenA, nil)

	require.EqualError(t, err, "router: screen 0 not registered")
	require.Empty(t, rec.events)
}

func TestReplaceDestroysPrevious(t *testing.T) {
	rec := &recordingReporter{}
	r := New().
		Register(screenA, passThrough).
		Register(screenB, passThrough).
		ReportTo(rec).
		OnTransition(func(from Screen, _ any, _ *Stack) (Screen, any) {
			if from == screenA {
				return screenB, nil
			}
			return ScreenExit, nil
		})

	require.NoError(t, r.Run(screenA, nil))
	require.Equal(t, []string{
		"A Created", "A Started", "A Resumed", "A Paused",
		"B Created", "B Started", "B Resumed",
		"A Destroyed",
		"B Paused", "B Destroyed",
	}, rec.lines())
}

func TestBackNavigationReusesInstance(t *testing.T) {
	rec := &recordingReporter{}
	step := 0
	r := New().
		Register(screenA, passThrough).
		Register(screenB, passThrough).
		ReportTo(rec).
		OnTransition(func(from Screen, _ any, stack *Stack) (Screen, any) {
			step++
			switch step {
			case 1:
				stack.Push(from, nil, nil)
				return screenB, nil
			case 2:
				entry := stack.Pop()
				require.NotNil(t, entry.Instance())
				return entry.Screen, entry.Input
			}
			return ScreenExit, nil
		})

	require.NoError(t, r.Run(screenA, nil))
	require.Len(t, rec.instancesOf(screenA), 1)
	require.Equal(t, []string{
		"A Created", "A Started", "A Resumed", "A Paused",
		"B Created", "B Started", "B Resumed",
		"A Stopped",
		"B Paused",
		"A Started", "A Resumed",
		"B Destroyed",
		"A Paused", "A Destroyed",
	}, rec.lines())
}

func TestClearDestroysStackedInstances(t *testing.T) {
	rec := &recordingReporter{}
	step := 0
	r := New().
		Register(screenA, passThrough).
		Register(screenB, passThrough).
		Register(screenC, passThrough).
		ReportTo(rec).
		OnTransition(func(from Screen, _ any, stack *Stack) (Screen, any) {
			step++
			switch step {
			case 1:
				stack.Push(from, nil, nil)
				return screenB, nil
			case 2:
				stack.Push(from, nil, nil)
				return screenC, nil
			case 3:
				stack.Clear()
				return screenA, nil
			}
			return ScreenExit, nil
		})

	require.NoError(t, r.Run(screenA, nil))

	// Returning to a cleared screen still reuses its instance; B is dropped.
	require.Len(t, rec.instancesOf(screenA), 1)
	require.Equal(t, []string{
		"A Created", "A Started", "A Resumed", "A Paused",
		"B Created", "B Started", "B Resumed", "A Stopped", "B Paused",
		"C Created", "C Started", "C Resumed", "B Stopped", "C Paused",
		"A Started", "A Resumed", "C Destroyed", "B Destroyed",
		"A Paused", "A Destroyed",
	}, rec.lines())
}

func TestClearThenNavigateElsewhere(t *testing.T) {
	rec := &recordingReporter{}
	step := 0
	r := New().
		Register(screenA, passThrough).
		Register(screenB, passThrough).
		Register(screenC, passThrough).
		ReportTo(rec).
		OnTransition(func(from Screen, _ any, stack *Stack) (Screen, any) {
			step++
			switch step {
			case 1:
				stack.Push(from, nil, nil)
				return screenB, nil
			case 2:
				stack.Clear()
				return screenC, nil
			}
			return ScreenExit, nil
		})

	require.NoError(t, r.Run(screenA, nil))
	require.Equal(t, []string{
		"A Created", "A Started", "A Resumed", "A Paused",
		"B Created", "B Started", "B Resumed", "A Stopped", "B Paused",
		"C Created", "C Started", "C Resumed", "B Destroyed", "A Destroyed",
		"C Paused", "C Destroyed",
	}, rec.lines())
}

func TestScreenErrorDestroysEverything(t *testing.T) {
	rec := &recordingReporter{}
	boom := errors.New("boom")
	r := New().
		Register(screenA, passThrough).
		Register(screenB, func(any) (any, error) { return nil, boom }).
		ReportTo(rec).
		OnTransition(func(from Screen, _ any, stack *Stack) (Screen, any) {
			stack.Push(from, nil, nil)
			return screenB, nil
		})

	err := r.Run(screenA, nil)
	require.ErrorIs(t, err, boom)
	require.EqualError(t, err, "router: screen 1 error: boom")
	require.Equal(t, []string{
		"A Created", "A Started", "A Resumed", "A Paused",
		"B Created", "B Started", "B Resumed", "A Stopped",
		"B Paused", "B Destroyed", "A Destroyed",
	}, rec.lines())

	// The stack entry survives but no longer holds a live instance.
	require.Equal(t, 1, r.Stack().Len())
	require.Nil(t, r.Stack().Peek().Instance())
}

func TestUnregisteredNextScreen(t *testing.T) {
	rec := &recordingReporter{}
	r := New().
		Register(screenA, passThrough).
		ReportTo(rec).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return screenC, nil })

	require.EqualError(t, r.Run(screenA, nil), "router: screen 2 not registered")
	require.Equal(t, []string{
		"A Created", "A Started", "A Resumed", "A Paused", "A Destroyed",
	}, rec.lines())
}

func TestRouterDrivesMonitor(t *testing.T) {
	m := monitor.New[Instance](monitor.Options{Ordering: monitor.Strict})
	var changes []bool
	m.Notify(func(fg bool) { changes = append(changes, fg) })

	var duringB bool
	step := 0
	r := New().
		Register(screenA, passThrough).
		Register(screenB, func(any) (any, error) {
			top, ok := m.TopScreen()
			duringB = ok && top.Screen == screenB && m.IsForeground()
			return nil, nil
		}).
		ReportTo(m).
		OnTransition(func(from Screen, _ any, stack *Stack) (Screen, any) {
			step++
			if step == 1 {
				stack.Push(from, nil, nil)
				return screenB, nil
			}
			return ScreenExit, nil
		})

	require.NoError(t, r.Run(screenA, nil))
	require.True(t, duringB)
	require.Equal(t, []bool{true, false}, changes)
	require.Zero(t, m.Len())
}

func TestRunWithoutReporter(t *testing.T) {
	r := New().
		Register(screenA, passThrough).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil })
	require.NoError(t, r.Run(screenA, nil))
}

func TestStackBasics(t *testing.T) {
	s := NewStack()
	require.True(t, s.IsEmpty())
	require.Nil(t, s.Pop())
	require.Nil(t, s.Peek())

	s.Push(screenA, "a", 1)
	s.Push(screenB, "b", nil)
	require.Equal(t, 2, s.Len())
	require.Equal(t, screenB, s.Peek().Screen)

	entry := s.Pop()
	require.Equal(t, screenB, entry.Screen)
	require.Equal(t, "b", entry.Input)
	require.Nil(t, entry.Instance())

	s.Clear()
	require.True(t, s.IsEmpty())
}

func TestReleaseAllDetachesInstances(t *testing.T) {
	s := NewStack()
	a := &Instance{Screen: screenA}
	b := &Instance{Screen: screenB}

	s.beginTransition(a)
	s.Push(screenA, nil, nil)
	s.endTransition()

	s.beginTransition(b)
	s.Push(screenB, nil, nil)
	s.Pop()

	released := s.releaseAll()
	require.Equal(t, []*Instance{b, a}, released)
	require.Equal(t, 1, s.Len())
	require.Nil(t, s.Peek().Instance())
	require.Empty(t, s.releaseAll())
}

func TestTransitionsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	rec := &recordingReporter{}
	r := New().
		Register(screenA, passThrough).
		ReportTo(rec).
		LogTo(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil })

	require.NoError(t, r.Run(screenA, nil))
	require.NotEmpty(t, rec.events)

	id := rec.events[0].instance.ID.String()
	require.Equal(t, len(rec.events), strings.Count(buf.String(), `"instance":"`+id+`"`))
	require.Contains(t, buf.String(), `"state":"Destroyed"`)
}

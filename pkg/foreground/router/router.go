package router

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/foreground/pkg/foreground/internal"
	"github.com/BrandonKowalski/foreground/pkg/foreground/monitor"
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota.
//
// Example:
//
//	const (
//	    ScreenMain Screen = iota
//	    ScreenSettings
//	    ScreenDetail
//	)
type Screen int

// ScreenFunc is a function that runs a screen.
// It takes an input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the screen that just completed, its result, and the navigation stack.
// It returns the next screen to navigate to and its input.
//
// Return (screen, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (-1, nil) to exit the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// Instance is one live occurrence of a screen. Navigating to a screen creates
// a new Instance; navigating back to a stacked screen reuses the one kept on
// the stack. ID tells two runs of the same screen apart in the transition log.
type Instance struct {
	Screen Screen
	ID     uuid.UUID
}

func (i *Instance) String() string {
	return fmt.Sprintf("screen %d (%s)", i.Screen, i.ID)
}

// Reporter receives the lifecycle of every screen instance the router runs.
// *monitor.Monitor[router.Instance] satisfies it.
type Reporter interface {
	ReportEvent(instance *Instance, state monitor.State)
}

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions, and a single transition
// function handles all routing logic in one place.
type Router struct {
	screens    map[Screen]ScreenFunc
	transition TransitionFunc
	stack      *Stack
	reporter   Reporter
	logger     *slog.Logger
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		stack:   NewStack(),
		logger:  internal.GetInternalLogger(),
	}
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// ReportTo sets where screen lifecycle events are sent.
//
// A screen being entered is Created, Started and Resumed. When its function
// returns it is Paused. Once the next screen is up it is Stopped if the
// transition pushed it on the stack and Destroyed otherwise. Navigating back
// to a stacked screen Starts and Resumes its existing instance. Exiting
// destroys every instance the router still holds.
func (r *Router) ReportTo(reporter Reporter) *Router {
	r.reporter = reporter
	return r
}

// LogTo sets the logger that records every reported transition at debug
// level. The internal logger is used by default.
func (r *Router) LogTo(logger *slog.Logger) *Router {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Run starts the router at the given screen with the given input.
// It continues running until the transition function returns ScreenExit
// or an error occurs.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	if _, ok := r.screens[start]; !ok {
		return fmt.Errorf("router: screen %d not registered", start)
	}

	current := r.open(start)
	defer func() {
		r.closeAll(current)
	}()

	currentInput := input

	for {
		// Run the screen
		result, err := r.screens[current.Screen](currentInput)
		r.report(current, monitor.StatePaused)
		if err != nil {
			return fmt.Errorf("router: screen %d error: %w", current.Screen, err)
		}

		// Determine next screen
		r.stack.beginTransition(current)
		next, nextInput := r.transition(current.Screen, result, r.stack)
		pushed, popped := r.stack.endTransition()

		// Check for exit
		if next == ScreenExit {
			r.destroy(popped...)
			return nil
		}

		if _, ok := r.screens[next]; !ok {
			r.destroy(popped...)
			return fmt.Errorf("router: screen %d not registered", next)
		}

		// Bring the next screen up before taking the previous one down so the
		// application never looks empty in between.
		following, leftovers := r.bringUp(next, popped)
		if following != current {
			if pushed {
				r.report(current, monitor.StateStopped)
			} else {
				r.report(current, monitor.StateDestroyed)
			}
		}
		r.destroy(leftovers...)

		// Move to next screen
		current = following
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}

func (r *Router) open(screen Screen) *Instance {
	instance := &Instance{Screen: screen, ID: uuid.New()}
	r.report(instance, monitor.StateCreated)
	r.report(instance, monitor.StateStarted)
	r.report(instance, monitor.StateResumed)
	return instance
}

// bringUp resumes the most recently popped instance of screen, or opens a new
// one. The other popped instances are returned for destruction.
func (r *Router) bringUp(screen Screen, popped []*Instance) (*Instance, []*Instance) {
	for i := len(popped) - 1; i >= 0; i-- {
		if popped[i].Screen != screen {
			continue
		}
		instance := popped[i]
		leftovers := append(popped[:i:i], popped[i+1:]...)
		r.report(instance, monitor.StateStarted)
		r.report(instance, monitor.StateResumed)
		return instance, leftovers
	}
	return r.open(screen), popped
}

func (r *Router) closeAll(current *Instance) {
	r.destroy(current)
	r.destroy(r.stack.releaseAll()...)
}

func (r *Router) destroy(instances ...*Instance) {
	for _, instance := range instances {
		r.report(instance, monitor.StateDestroyed)
	}
}

func (r *Router) report(instance *Instance, state monitor.State) {
	if r.reporter == nil || instance == nil {
		return
	}
	r.logger.Debug("Screen transition", "screen", int(instance.Screen), "instance", instance.ID.String(), "state", state)
	r.reporter.ReportEvent(instance, state)
}

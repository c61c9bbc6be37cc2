package monitor

import (
	"log/slog"
	"slices"
	"sync"
	"weak"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/foreground/pkg/foreground/internal"
)

// Options configures a Monitor.
type Options struct {
	Ordering Ordering     // Activeness table used to rank screens (Strict by default and for unknown values)
	Debug    bool         // Log every event with the resulting top screen and flag
	Logger   *slog.Logger // Destination for diagnostics; defaults to the internal logger
}

// snapshot is published after every reconcile and never mutated afterwards.
type snapshot[T any] struct {
	entries    []Entry[T]
	foreground bool
}

// Monitor tracks the lifecycle state of every live screen and derives whether
// the application is in the foreground.
//
// ReportEvent and SetOrdering are serialized internally. Foreground changes
// are queued in the order they happen and delivered outside the lock by
// whichever caller finds no delivery in progress, so a listener may report
// further events; those are delivered after the current notification pass.
// Read accessors never block and observe the latest state.
type Monitor[T any] struct {
	mu         sync.Mutex
	entries    []Entry[T]
	ordering   Ordering
	foreground bool

	// pending holds foreground changes not yet delivered; dispatching is set
	// while one caller drains it.
	pending     []bool
	dispatching bool

	current atomic.Pointer[snapshot[T]]
	order   atomic.Int64
	debug   *atomic.Bool
	logger  *slog.Logger

	listenersMu sync.Mutex
	listeners   atomic.Pointer[[]Listener]
}

// New creates an empty Monitor. The host constructs one at start-up and hands
// it to every producer and consumer of lifecycle events.
func New[T any](opts Options) *Monitor[T] {
	logger := opts.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	ordering := opts.Ordering.normalize()
	m := &Monitor[T]{
		ordering: ordering,
		debug:    atomic.NewBool(opts.Debug),
		logger:   logger,
	}
	m.order.Store(int64(ordering))
	m.current.Store(&snapshot[T]{})
	m.listeners.Store(&[]Listener{})
	return m
}

// ReportEvent records that screen has reached state, then re-ranks all
// screens and notifies listeners if the foreground flag changed.
// Reporting the same state twice is harmless. A nil screen is ignored.
func (m *Monitor[T]) ReportEvent(screen *T, state State) {
	if screen == nil {
		m.logger.Debug("Ignoring lifecycle event without a screen", "state", state)
		return
	}

	ref := weak.Make(screen)

	m.mu.Lock()

	m.entries = slices.DeleteFunc(m.entries, func(e Entry[T]) bool {
		return e.ref == ref
	})
	m.entries = append(m.entries, Entry[T]{ref: ref, state: state})

	changed := m.reconcile()

	if m.debug.Load() {
		top, _ := m.TopScreen()
		m.logger.Debug("Screen lifecycle event",
			"screen", describe(screen),
			"state", state,
			"top", describe(top),
			"foreground", m.foreground,
			"screens", len(m.entries))
	}

	drain := m.enqueue(changed)
	m.mu.Unlock()

	if drain {
		m.drain()
	}
}

// reconcile purges destroyed and collected screens, re-ranks the rest and
// recomputes the foreground flag. It reports whether the flag changed.
// Callers hold m.mu.
func (m *Monitor[T]) reconcile() bool {
	m.entries = slices.DeleteFunc(m.entries, func(e Entry[T]) bool {
		return e.state == StateDestroyed || e.Expired()
	})

	// Stable: among equal ranks the most recently reported screen stays last.
	slices.SortStableFunc(m.entries, func(a, b Entry[T]) int {
		return Compare(a.state, b.state, m.ordering)
	})

	foreground := false
	if n := len(m.entries); n > 0 {
		foreground = IsForegroundState(m.entries[n-1].state, m.ordering)
	}

	changed := foreground != m.foreground
	m.foreground = foreground

	m.current.Store(&snapshot[T]{
		entries:    slices.Clone(m.entries),
		foreground: foreground,
	})

	return changed
}

// IsForeground reports whether the top screen keeps the application in the
// foreground. An application without screens is in the background.
func (m *Monitor[T]) IsForeground() bool {
	return m.current.Load().foreground
}

// TopScreen returns the most active live screen. The second result is false
// when no screen is tracked or the top screen has been collected.
func (m *Monitor[T]) TopScreen() (*T, bool) {
	entries := m.current.Load().entries
	if len(entries) == 0 {
		return nil, false
	}
	screen := entries[len(entries)-1].Screen()
	return screen, screen != nil
}

// TopState returns the state of the top screen, if any.
func (m *Monitor[T]) TopState() (State, bool) {
	entries := m.current.Load().entries
	if len(entries) == 0 {
		return 0, false
	}
	return entries[len(entries)-1].state, true
}

// Len returns the number of screens tracked after the last event.
func (m *Monitor[T]) Len() int {
	return len(m.current.Load().entries)
}

// Entries returns the tracked screens from least to most active.
func (m *Monitor[T]) Entries() []Entry[T] {
	return slices.Clone(m.current.Load().entries)
}

// Ordering returns the activeness table in use.
func (m *Monitor[T]) Ordering() Ordering {
	return Ordering(m.order.Load())
}

// SetOrdering switches the activeness table. The screens are re-ranked right
// away and listeners are notified if that flips the foreground flag.
// Values outside the enum select DefaultOrdering.
func (m *Monitor[T]) SetOrdering(o Ordering) {
	o = o.normalize()
	m.mu.Lock()

	if o == m.ordering {
		m.mu.Unlock()
		return
	}
	m.ordering = o
	m.order.Store(int64(o))

	drain := m.enqueue(m.reconcile())
	m.mu.Unlock()

	if drain {
		m.drain()
	}
}

// SetDebug toggles per-event diagnostics. It has no effect on behaviour.
func (m *Monitor[T]) SetDebug(debug bool) {
	m.debug.Store(debug)
}

// Subscribe adds l unless it is already subscribed and reports whether it
// was added. Changes made while a notification is being delivered apply from
// the next notification on.
func (m *Monitor[T]) Subscribe(l Listener) bool {
	if l == nil {
		return false
	}

	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()

	current := *m.listeners.Load()
	if indexOfListener(current, l) >= 0 {
		return false
	}

	next := make([]Listener, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, l)
	m.listeners.Store(&next)
	return true
}

// Unsubscribe removes l and reports whether it was subscribed.
func (m *Monitor[T]) Unsubscribe(l Listener) bool {
	if l == nil {
		return false
	}

	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()

	current := *m.listeners.Load()
	i := indexOfListener(current, l)
	if i < 0 {
		return false
	}

	next := slices.Delete(slices.Clone(current), i, i+1)
	m.listeners.Store(&next)
	return true
}

// Notify subscribes fn and returns a function that unsubscribes it.
// Each call registers a distinct listener.
func (m *Monitor[T]) Notify(fn func(foreground bool)) (cancel func()) {
	l := &funcListener{fn: fn}
	m.Subscribe(l)
	return func() {
		m.Unsubscribe(l)
	}
}

// enqueue records a foreground change and reports whether the caller must
// drain the queue. Callers hold m.mu.
func (m *Monitor[T]) enqueue(changed bool) bool {
	if !changed {
		return false
	}
	m.pending = append(m.pending, m.foreground)
	if m.dispatching {
		return false
	}
	m.dispatching = true
	return true
}

// drain delivers queued changes in order until none are left.
func (m *Monitor[T]) drain() {
	for {
		m.mu.Lock()
		if len(m.pending) == 0 {
			m.pending = nil
			m.dispatching = false
			m.mu.Unlock()
			return
		}
		foreground := m.pending[0]
		m.pending = m.pending[1:]
		m.mu.Unlock()

		m.dispatch(foreground)
	}
}

func (m *Monitor[T]) dispatch(foreground bool) {
	for _, l := range *m.listeners.Load() {
		m.deliver(l, foreground)
	}
}

func (m *Monitor[T]) deliver(l Listener, foreground bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Foreground listener panicked", "foreground", foreground, "panic", r)
		}
	}()
	l.OnForegroundChange(foreground)
}

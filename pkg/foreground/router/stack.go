package router

// StackEntry represents a single entry in the navigation stack.
// It stores the screen identifier, the input that was used to call the screen,
// and any resume state returned by the screen.
type StackEntry struct {
	Screen Screen
	Input  any
	Resume any

	instance *Instance
}

// Instance returns the live screen instance kept on the stack, or nil if the
// entry was pushed for a screen that was not running.
func (e *StackEntry) Instance() *Instance {
	return e.instance
}

// Stack manages navigation history for back navigation.
// It stores entries that allow returning to previous screens
// with their original input and resume state.
//
// Entries pushed for the screen that just finished keep that screen's
// Instance alive (Stopped) until it is popped and navigated back to.
type Stack struct {
	entries []StackEntry

	// running is the instance that just finished; the first Push for its
	// screen adopts it.
	running *Instance
	// popped holds instances removed by Pop or Clear since the last transition.
	popped []*Instance
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a new entry to the stack.
// Called when navigating forward to a new screen.
func (s *Stack) Push(screen Screen, input any, resume any) {
	entry := StackEntry{
		Screen: screen,
		Input:  input,
		Resume: resume,
	}
	if s.running != nil && s.running.Screen == screen {
		entry.instance = s.running
		s.running = nil
	}
	s.entries = append(s.entries, entry)
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	if entry.instance != nil {
		s.popped = append(s.popped, entry.instance)
	}
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	for _, entry := range s.entries {
		if entry.instance != nil {
			s.popped = append(s.popped, entry.instance)
		}
	}
	s.entries = s.entries[:0]
}

// beginTransition marks the instance a following Push may adopt.
func (s *Stack) beginTransition(running *Instance) {
	s.running = running
}

// endTransition reports whether the running instance was pushed and hands
// back everything popped during the transition, oldest first.
func (s *Stack) endTransition() (pushed bool, popped []*Instance) {
	pushed = s.running == nil
	s.running = nil
	popped, s.popped = s.popped, nil
	return pushed, popped
}

// releaseAll detaches every live instance from the stack so that later runs
// start those screens afresh.
func (s *Stack) releaseAll() []*Instance {
	released := s.popped
	s.popped = nil
	for i := range s.entries {
		if s.entries[i].instance != nil {
			released = append(released, s.entries[i].instance)
			s.entries[i].instance = nil
		}
	}
	s.running = nil
	return released
}

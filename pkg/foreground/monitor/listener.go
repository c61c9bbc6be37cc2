package monitor

import "reflect"

// Listener is told whenever the application's foreground flag flips.
type Listener interface {
	OnForegroundChange(foreground bool)
}

type funcListener struct {
	fn func(foreground bool)
}

func (f *funcListener) OnForegroundChange(foreground bool) {
	f.fn(foreground)
}

// sameListener compares listener identity. Listeners whose dynamic type is not
// comparable never match, so they can be added but not removed; use pointers.
func sameListener(a, b Listener) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

func indexOfListener(listeners []Listener, l Listener) int {
	for i, existing := range listeners {
		if sameListener(existing, l) {
			return i
		}
	}
	return -1
}

// Package monitor tracks which screen of an application the user is currently
// looking at and whether the application as a whole is in the foreground.
//
// A host feeds lifecycle events for its screens into a Monitor:
//
//	m := monitor.New[Screen](monitor.Options{Ordering: monitor.Strict})
//	m.ReportEvent(home, monitor.StateCreated)
//	m.ReportEvent(home, monitor.StateResumed)
//
// The Monitor keeps one entry per live screen, ordered from least to most
// active under the configured Ordering. The last entry is the top screen and
// its state alone decides the foreground flag. Listeners hear about every
// change of that flag and nothing else:
//
//	cancel := m.Notify(func(foreground bool) {
//	    log.Println("foreground:", foreground)
//	})
//	defer cancel()
//
// # Screen identity
//
// Entries hold weak pointers to screens. The Monitor never keeps a screen
// alive: once the host drops its last reference and the collector reclaims
// it, the entry is discarded on the next event as if the screen had been
// destroyed. Two events refer to the same screen when they carry the same
// pointer, so T must not be a zero-size type.
//
// # Orderings
//
// Relaxed ranks Destroyed < Stopped < Created < Started < Paused < Resumed and
// treats only Resumed or Paused top screens as foreground.
//
// Strict ranks Destroyed < Stopped < Paused < Created < Started < Resumed and
// also treats Created or Started top screens as foreground, so a screen that
// is still appearing keeps the application foregrounded.
package monitor

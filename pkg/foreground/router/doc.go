// Package router provides screen navigation with explicit data flow and
// reports the lifecycle of every screen it runs.
//
// Router uses explicit input/output types for each screen and a centralized
// transition function for all routing logic. Every screen it enters becomes a
// live Instance whose lifecycle (Created, Started, Resumed, Paused, Stopped,
// Destroyed) is sent to a Reporter, typically a foreground monitor.
//
// # Basic Usage
//
//	const (
//	    ScreenList router.Screen = iota
//	    ScreenDetail
//	)
//
//	m := monitor.New[router.Instance](monitor.Options{})
//	r := router.New().ReportTo(m)
//
//	r.Register(ScreenList, func(input any) (any, error) {
//	    return listScreen(input.(ListInput)), nil
//	})
//
//	r.Register(ScreenDetail, func(input any) (any, error) {
//	    return detailScreen(input.(DetailInput)), nil
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenList:
//	        res := result.(ListResult)
//	        // Push keeps the list instance alive (Stopped) behind the detail
//	        stack.Push(from, input, res.Resume)
//	        return ScreenDetail, DetailInput{Item: res.Selected}
//	    case ScreenDetail:
//	        if entry := stack.Pop(); entry != nil {
//	            // The popped list instance is Started and Resumed again
//	            return entry.Screen, entry.Input
//	        }
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	r.Run(ScreenList, ListInput{Items: items})
//
// # Lifecycle
//
// The next screen is always brought up before the previous one is stopped or
// destroyed, so a monitor fed by the router never sees an empty application
// while navigating. Instances popped or cleared from the stack and not
// navigated back to are destroyed. When Run returns, every instance the
// router still holds is destroyed.
//
// # Resume State
//
// Screens can return resume state (like scroll position) that gets stored
// on the stack when navigating forward. When navigating back, this state
// is passed back to the screen via its input, allowing it to restore position.
package router

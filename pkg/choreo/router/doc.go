// Package router provides a navigation container for screens built on view
// trees, with hook points for animated transitions.
//
// Every controller carries a typed Screen identifier, so transitions can be
// chosen by the pair of screens they connect without relying on type names.
//
// # Basic Usage
//
//	// Define screen identifiers as typed constants
//	const (
//	    ScreenHome router.Screen = iota
//	    ScreenDetail
//	)
//
//	type HomeScreen struct{ view *view.View }
//
//	func (h *HomeScreen) Screen() router.Screen { return ScreenHome }
//	func (h *HomeScreen) View() *view.View      { return h.view }
//
//	// Create the navigation container with its root screen
//	r := router.New(home, view.Rect{W: 1024, H: 768})
//
//	// Ask a delegate for push and pop transitions
//	r.SetDelegate(delegate)
//
//	r.Push(detail, true)
//	r.Pop(true)
//
// # Transitions
//
// When a delegate returns a Transitioning for a navigation, the router hands
// it a Context holding both controllers, their views and the container view
// the animation happens in. The navigation is committed when the transition
// calls CompleteTransition(true); passing false rolls it back. Without a
// transition, or when not animated, views are swapped immediately.
//
// Only one transition runs at a time. Navigation requested while one is in
// flight fails with ErrTransitionInProgress.
//
// # Modals
//
// Present shows a controller above the whole navigation container and
// Dismiss removes it. Their transitions come from the ModalDelegate. A
// dismissal is looked up with the router itself as the presenting controller,
// which is a Container whose Top is the screen the modal was presented from.
package router

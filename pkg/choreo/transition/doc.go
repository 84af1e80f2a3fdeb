// Package transition animates navigation between screens of a router.
//
// A Registry maps pairs of screens to transitions. A Provider serves a
// Registry to a router as both its push/pop and its present/dismiss delegate:
//
//	provider := transition.ProviderFor(r)
//	transition.New(ScreenHome, ScreenSecond, timing, newToSecond).AddTo(provider)
//
// A Driver runs one transition definition, a Shape, through a fixed routine:
// the destination view is added to the container, both views are laid out,
// then the shape is prepared, started, animated inside one animation and
// completed when that animation ends. A fresh Shape is built for every
// navigation.
package transition

package router

import (
	"errors"
	"fmt"
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo/internal"
	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
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

// ScreenNavigation identifies a navigation container.
const ScreenNavigation Screen = -1

// Controller is one screen: an identifier and the view showing it.
type Controller interface {
	Screen() Screen
	View() *view.View
}

// Container is a controller that shows one of several child controllers.
type Container interface {
	Controller
	// Top returns the child on screen, or nil.
	Top() Controller
}

// Operation is the kind of navigation a transition animates.
type Operation int

const (
	OperationPush Operation = iota
	OperationPop
	OperationPresent
	OperationDismiss
)

func (o Operation) String() string {
	switch o {
	case OperationPush:
		return "push"
	case OperationPop:
		return "pop"
	case OperationPresent:
		return "present"
	case OperationDismiss:
		return "dismiss"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Transitioning animates one navigation.
type Transitioning interface {
	Duration() time.Duration
	// AnimateTransition runs the animation and must eventually call
	// ctx.CompleteTransition.
	AnimateTransition(ctx Context)
}

// Delegate supplies transitions for push and pop.
type Delegate interface {
	// TransitionFor returns the transition from one controller to another,
	// or nil for none.
	TransitionFor(op Operation, from, to Controller) Transitioning
}

// ModalDelegate supplies transitions for present and dismiss.
type ModalDelegate interface {
	// PresentTransition returns the transition for presented appearing over
	// presenting, or nil. source is the controller that asked to present.
	PresentTransition(presented, presenting, source Controller) Transitioning
	// DismissTransition returns the transition for dismissed leaving to
	// presenting, or nil.
	DismissTransition(dismissed, presenting Controller) Transitioning
}

// TransitionFunc is called after each navigation settles.
type TransitionFunc func(op Operation, from, to Controller, finished bool)

// Errors returned by navigation.
var (
	ErrEmptyStack           = errors.New("router: no controller to pop to")
	ErrTransitionInProgress = errors.New("router: a transition is in progress")
	ErrNothingPresented     = errors.New("router: nothing is presented")
	ErrAlreadyPresenting    = errors.New("router: a controller is already presented")
)

// Router is a navigation container. It keeps a stack of controllers whose top
// view fills the container, and optionally one modal controller above it.
//
// A Router must only be used on the main scheduling context.
type Router struct {
	window  *view.View
	content *view.View
	stack   *Stack

	presented Controller

	delegate      Delegate
	modalDelegate ModalDelegate
	observers     []TransitionFunc

	inTransition bool
}

// New creates a Router showing root in a window of the given frame.
func New(root Controller, frame view.Rect) *Router {
	r := &Router{
		window:  view.New("window", frame),
		content: view.New("navigation", view.Rect{W: frame.W, H: frame.H}),
		stack:   NewStack(),
	}
	r.window.AddSubview(r.content)
	if root != nil {
		r.stack.Push(root)
		r.show(root)
	}
	return r
}

// Screen identifies the router as a navigation container.
func (r *Router) Screen() Screen {
	return ScreenNavigation
}

// View returns the container view holding the stack's top view.
func (r *Router) View() *view.View {
	return r.content
}

// Window returns the root view, which holds the container view and any
// presented controller's view.
func (r *Router) Window() *view.View {
	return r.window
}

// Top returns the controller on top of the stack.
func (r *Router) Top() Controller {
	return r.stack.Peek()
}

// Presented returns the modal controller, or nil.
func (r *Router) Presented() Controller {
	return r.presented
}

// Stack returns the navigation stack.
func (r *Router) Stack() *Stack {
	return r.stack
}

// InTransition returns true while a transition is running.
func (r *Router) InTransition() bool {
	return r.inTransition
}

// SetDelegate sets the delegate asked for push and pop transitions.
func (r *Router) SetDelegate(d Delegate) *Router {
	r.delegate = d
	return r
}

// Delegate returns the push and pop delegate.
func (r *Router) Delegate() Delegate {
	return r.delegate
}

// SetModalDelegate sets the delegate asked for present and dismiss transitions.
func (r *Router) SetModalDelegate(d ModalDelegate) *Router {
	r.modalDelegate = d
	return r
}

// ModalDelegate returns the present and dismiss delegate.
func (r *Router) ModalDelegate() ModalDelegate {
	return r.modalDelegate
}

// OnTransition registers fn to be called after each navigation settles.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.observers = append(r.observers, fn)
	return r
}

func (r *Router) show(c Controller) {
	if c == nil {
		return
	}
	v := c.View()
	if v == nil {
		return
	}
	v.SetFrame(r.content.Bounds())
	r.content.AddSubview(v)
}

func detach(c Controller) {
	if c == nil {
		return
	}
	if v := c.View(); v != nil {
		v.RemoveFromSuperview()
	}
}

// Push shows c on top of the stack.
func (r *Router) Push(c Controller, animated bool) error {
	if c == nil {
		return fmt.Errorf("router: cannot push a nil controller")
	}
	if r.inTransition {
		return ErrTransitionInProgress
	}

	from := r.Top()
	r.stack.Push(c)
	if v := c.View(); v != nil {
		v.SetFrame(r.content.Bounds())
	}

	var t Transitioning
	if animated && r.delegate != nil && from != nil {
		t = r.delegate.TransitionFor(OperationPush, from, c)
	}
	r.run(OperationPush, from, c, r.content, t, func(finished bool) {
		if finished {
			detach(from)
			r.show(c)
			return
		}
		r.stack.Pop()
		detach(c)
		r.show(from)
	})
	return nil
}

// Pop removes the top controller and shows the one below it.
func (r *Router) Pop(animated bool) error {
	if r.inTransition {
		return ErrTransitionInProgress
	}
	if r.stack.Len() < 2 {
		return ErrEmptyStack
	}

	from := r.stack.Pop()
	to := r.Top()

	var t Transitioning
	if animated && r.delegate != nil {
		t = r.delegate.TransitionFor(OperationPop, from, to)
	}
	r.run(OperationPop, from, to, r.content, t, func(finished bool) {
		if finished {
			detach(from)
			r.show(to)
			return
		}
		r.stack.Push(from)
		detach(to)
		r.show(from)
	})
	return nil
}

// PopToRoot removes every controller above the root.
func (r *Router) PopToRoot(animated bool) error {
	if r.inTransition {
		return ErrTransitionInProgress
	}
	if r.stack.Len() < 2 {
		return ErrEmptyStack
	}

	dropped := r.stack.Truncate(1)
	from := dropped[len(dropped)-1]
	to := r.Top()

	var t Transitioning
	if animated && r.delegate != nil {
		t = r.delegate.TransitionFor(OperationPop, from, to)
	}
	r.run(OperationPop, from, to, r.content, t, func(finished bool) {
		if finished {
			detach(from)
			r.show(to)
			return
		}
		for _, c := range dropped {
			r.stack.Push(c)
		}
		detach(to)
		r.show(from)
	})
	return nil
}

// Present shows c above the navigation container.
func (r *Router) Present(c Controller, animated bool) error {
	if c == nil {
		return fmt.Errorf("router: cannot present a nil controller")
	}
	if r.inTransition {
		return ErrTransitionInProgress
	}
	if r.presented != nil {
		return ErrAlreadyPresenting
	}

	r.presented = c
	if v := c.View(); v != nil {
		v.SetFrame(r.window.Bounds())
	}

	var t Transitioning
	if animated && r.modalDelegate != nil {
		t = r.modalDelegate.PresentTransition(c, r, r.Top())
	}
	r.run(OperationPresent, r, c, r.window, t, func(finished bool) {
		if finished {
			if v := c.View(); v != nil && v.Superview() != r.window {
				r.window.AddSubview(v)
			}
			return
		}
		r.presented = nil
		detach(c)
	})
	return nil
}

// Dismiss removes the presented controller.
func (r *Router) Dismiss(animated bool) error {
	if r.inTransition {
		return ErrTransitionInProgress
	}
	if r.presented == nil {
		return ErrNothingPresented
	}

	dismissed := r.presented
	r.presented = nil

	var t Transitioning
	if animated && r.modalDelegate != nil {
		t = r.modalDelegate.DismissTransition(dismissed, r)
	}
	r.run(OperationDismiss, dismissed, r, r.window, t, func(finished bool) {
		// The transition may have moved the top view out of the container or
		// raised the container above the modal.
		r.show(r.Top())
		if subviews := r.window.Subviews(); len(subviews) > 0 && subviews[0] != r.content {
			r.window.InsertSubviewBelow(r.content, subviews[0])
		}
		if finished {
			detach(dismissed)
			return
		}
		r.presented = dismissed
		if v := dismissed.View(); v != nil {
			r.window.AddSubview(v)
		}
	})
	return nil
}

func (r *Router) run(op Operation, from, to Controller, container *view.View, t Transitioning, settle func(finished bool)) {
	r.inTransition = true
	ctx := &transitionContext{
		op:        op,
		from:      from,
		to:        to,
		container: container,
		animated:  t != nil,
		done: func(finished bool) {
			settle(finished)
			r.inTransition = false
			internal.GetInternalLogger().Debug("Navigation settled",
				"operation", op.String(), "from", screenOf(from), "to", screenOf(to), "finished", finished)
			for _, observer := range r.observers {
				observer(op, from, to, finished)
			}
		},
	}

	if t == nil {
		ctx.CompleteTransition(true)
		return
	}
	internal.GetInternalLogger().Debug("Navigation transition started",
		"operation", op.String(), "from", screenOf(from), "to", screenOf(to), "duration", t.Duration())
	t.AnimateTransition(ctx)
}

func screenOf(c Controller) Screen {
	if c == nil {
		return ScreenNavigation
	}
	return c.Screen()
}

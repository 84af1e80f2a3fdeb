package router

import "github.com/BrandonKowalski/choreo/pkg/choreo/view"

// Key selects one side of a transition.
type Key int

const (
	// KeyFrom is the controller being navigated away from.
	KeyFrom Key = iota
	// KeyTo is the controller being navigated to.
	KeyTo
)

// Context is what a transition sees of the navigation it animates.
type Context interface {
	Operation() Operation
	// Controller returns the controller for key, or nil.
	Controller(key Key) Controller
	// View returns the view of the controller for key, or nil.
	View(key Key) *view.View
	// ContainerView is the view the transition happens in.
	ContainerView() *view.View
	// FinalFrame is where the controller for key ends up, in container
	// coordinates.
	FinalFrame(key Key) view.Rect
	IsAnimated() bool
	// CompleteTransition commits the navigation, or rolls it back when
	// finished is false. Only the first call has an effect.
	CompleteTransition(finished bool)
}

type transitionContext struct {
	op        Operation
	from, to  Controller
	container *view.View
	animated  bool
	completed bool
	done      func(finished bool)
}

func (c *transitionContext) Operation() Operation {
	return c.op
}

func (c *transitionContext) Controller(key Key) Controller {
	switch key {
	case KeyFrom:
		return c.from
	case KeyTo:
		return c.to
	default:
		return nil
	}
}

func (c *transitionContext) View(key Key) *view.View {
	controller := c.Controller(key)
	if controller == nil {
		return nil
	}
	return controller.View()
}

func (c *transitionContext) ContainerView() *view.View {
	return c.container
}

func (c *transitionContext) FinalFrame(key Key) view.Rect {
	if key == KeyFrom && (c.op == OperationDismiss || c.op == OperationPop) {
		// Leaving controllers end wherever the transition puts them.
		if v := c.View(KeyFrom); v != nil {
			return v.Frame()
		}
	}
	return c.container.Bounds()
}

func (c *transitionContext) IsAnimated() bool {
	return c.animated
}

func (c *transitionContext) CompleteTransition(finished bool) {
	if c.completed {
		return
	}
	c.completed = true
	c.done(finished)
}

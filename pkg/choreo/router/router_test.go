package router_test

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo/router"
	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
	"github.com/stretchr/testify/require"
)

type screen struct {
	id   router.Screen
	view *view.View
}

func newScreen(id router.Screen, name string) *screen {
	return &screen{id: id, view: view.New(name, view.Rect{})}
}

func (s *screen) Screen() router.Screen { return s.id }
func (s *screen) View() *view.View      { return s.view }

// heldTransition keeps the context so the test decides when it completes.
type heldTransition struct {
	ctx router.Context
}

func (t *heldTransition) Duration() time.Duration { return time.Second }

func (t *heldTransition) AnimateTransition(ctx router.Context) {
	t.ctx = ctx
}

type delegateFunc func(op router.Operation, from, to router.Controller) router.Transitioning

func (f delegateFunc) TransitionFor(op router.Operation, from, to router.Controller) router.Transitioning {
	return f(op, from, to)
}

type modalDelegate struct {
	present, dismiss router.Transitioning
	source           router.Controller
	presenting       router.Controller
}

func (m *modalDelegate) PresentTransition(presented, presenting, source router.Controller) router.Transitioning {
	m.source = source
	return m.present
}

func (m *modalDelegate) DismissTransition(dismissed, presenting router.Controller) router.Transitioning {
	m.presenting = presenting
	return m.dismiss
}

const (
	screenHome router.Screen = iota
	screenDetail
	screenSettings
)

func TestPushAndPopWithoutTransition(t *testing.T) {
	home := newScreen(screenHome, "home")
	detail := newScreen(screenDetail, "detail")
	r := router.New(home, view.Rect{W: 320, H: 240})

	require.Equal(t, router.ScreenNavigation, r.Screen())
	require.Same(t, home.view.Superview(), r.View())
	require.Equal(t, view.Rect{W: 320, H: 240}, home.view.Frame())

	require.NoError(t, r.Push(detail, true))
	require.Equal(t, router.Controller(detail), r.Top())
	require.Nil(t, home.view.Superview())
	require.Same(t, r.View(), detail.view.Superview())
	require.Equal(t, view.Rect{W: 320, H: 240}, detail.view.Frame())

	require.NoError(t, r.Pop(false))
	require.Equal(t, router.Controller(home), r.Top())
	require.Nil(t, detail.view.Superview())

	require.ErrorIs(t, r.Pop(false), router.ErrEmptyStack)
}

func TestPushAsksDelegateAndWaitsForCompletion(t *testing.T) {
	home := newScreen(screenHome, "home")
	detail := newScreen(screenDetail, "detail")
	held := &heldTransition{}
	var asked []router.Operation

	r := router.New(home, view.Rect{W: 100, H: 100})
	r.SetDelegate(delegateFunc(func(op router.Operation, from, to router.Controller) router.Transitioning {
		asked = append(asked, op)
		require.Equal(t, screenHome, from.Screen())
		require.Equal(t, screenDetail, to.Screen())
		return held
	}))

	var settled []bool
	r.OnTransition(func(op router.Operation, from, to router.Controller, finished bool) {
		settled = append(settled, finished)
	})

	require.NoError(t, r.Push(detail, true))
	require.Equal(t, []router.Operation{router.OperationPush}, asked)
	require.True(t, r.InTransition())
	require.True(t, held.ctx.IsAnimated())
	require.Same(t, r.View(), held.ctx.ContainerView())
	require.Same(t, home.view, held.ctx.View(router.KeyFrom))
	require.Same(t, detail.view, held.ctx.View(router.KeyTo))

	require.ErrorIs(t, r.Push(newScreen(screenSettings, "settings"), true), router.ErrTransitionInProgress)
	require.ErrorIs(t, r.Pop(true), router.ErrTransitionInProgress)

	held.ctx.CompleteTransition(true)
	held.ctx.CompleteTransition(false)

	require.False(t, r.InTransition())
	require.Equal(t, []bool{true}, settled)
	require.Equal(t, router.Controller(detail), r.Top())
	require.Equal(t, 2, r.Stack().Len())
}

func TestCancelledPushRollsBack(t *testing.T) {
	home := newScreen(screenHome, "home")
	detail := newScreen(screenDetail, "detail")
	held := &heldTransition{}

	r := router.New(home, view.Rect{W: 100, H: 100})
	r.SetDelegate(delegateFunc(func(router.Operation, router.Controller, router.Controller) router.Transitioning {
		return held
	}))

	require.NoError(t, r.Push(detail, true))
	held.ctx.CompleteTransition(false)

	require.Equal(t, router.Controller(home), r.Top())
	require.Equal(t, 1, r.Stack().Len())
	require.Same(t, r.View(), home.view.Superview())
	require.Nil(t, detail.view.Superview())
}

func TestPopToRoot(t *testing.T) {
	home := newScreen(screenHome, "home")
	detail := newScreen(screenDetail, "detail")
	settings := newScreen(screenSettings, "settings")
	held := &heldTransition{}

	r := router.New(home, view.Rect{W: 100, H: 100})
	require.NoError(t, r.Push(detail, false))
	require.NoError(t, r.Push(settings, false))

	r.SetDelegate(delegateFunc(func(op router.Operation, from, to router.Controller) router.Transitioning {
		require.Equal(t, router.OperationPop, op)
		require.Equal(t, screenSettings, from.Screen())
		require.Equal(t, screenHome, to.Screen())
		return held
	}))

	require.NoError(t, r.PopToRoot(true))
	held.ctx.CompleteTransition(false)
	require.Equal(t, 3, r.Stack().Len(), "rollback restores every popped controller")
	require.Equal(t, router.Controller(settings), r.Top())

	require.NoError(t, r.PopToRoot(false))
	require.Equal(t, 1, r.Stack().Len())
	require.Equal(t, router.Controller(home), r.Top())
	require.ErrorIs(t, r.PopToRoot(false), router.ErrEmptyStack)
}

func TestPresentAndDismiss(t *testing.T) {
	home := newScreen(screenHome, "home")
	settings := newScreen(screenSettings, "settings")
	present := &heldTransition{}
	dismiss := &heldTransition{}
	modals := &modalDelegate{present: present, dismiss: dismiss}

	r := router.New(home, view.Rect{W: 100, H: 100})
	r.SetModalDelegate(modals)

	require.ErrorIs(t, r.Dismiss(true), router.ErrNothingPresented)

	require.NoError(t, r.Present(settings, true))
	require.Equal(t, router.Controller(home), modals.source)
	require.Same(t, r.Window(), present.ctx.ContainerView())
	require.Equal(t, router.OperationPresent, present.ctx.Operation())
	present.ctx.CompleteTransition(true)

	require.Equal(t, router.Controller(settings), r.Presented())
	require.Same(t, r.Window(), settings.view.Superview())
	require.ErrorIs(t, r.Present(newScreen(screenDetail, "detail"), false), router.ErrAlreadyPresenting)

	require.NoError(t, r.Dismiss(true))
	container, ok := modals.presenting.(router.Container)
	require.True(t, ok, "dismissals are looked up against the navigation container")
	require.Equal(t, screenHome, container.Top().Screen())

	// A transition may bring the container view to the front.
	r.Window().AddSubview(r.View())
	dismiss.ctx.CompleteTransition(true)

	require.Nil(t, r.Presented())
	require.Nil(t, settings.view.Superview())
	require.Same(t, r.View(), r.Window().Subviews()[0])
}

func TestCancelledDismissKeepsModal(t *testing.T) {
	home := newScreen(screenHome, "home")
	settings := newScreen(screenSettings, "settings")
	dismiss := &heldTransition{}

	r := router.New(home, view.Rect{W: 100, H: 100})
	r.SetModalDelegate(&modalDelegate{dismiss: dismiss})

	require.NoError(t, r.Present(settings, true))
	require.Same(t, r.Window(), settings.view.Superview(), "nil transition presents at once")

	require.NoError(t, r.Dismiss(true))
	dismiss.ctx.CompleteTransition(false)

	require.Equal(t, router.Controller(settings), r.Presented())
	require.Same(t, r.Window(), settings.view.Superview())
}

func TestOperationString(t *testing.T) {
	require.Equal(t, "push", router.OperationPush.String())
	require.Equal(t, "dismiss", router.OperationDismiss.String())
	require.Equal(t, "Operation(9)", router.Operation(9).String())
}

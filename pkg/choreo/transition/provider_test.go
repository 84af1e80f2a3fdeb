package transition_test

import (
	"testing"

	"github.com/BrandonKowalski/choreo/pkg/choreo/router"
	"github.com/BrandonKowalski/choreo/pkg/choreo/transition"
	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
	"github.com/stretchr/testify/require"
)

func TestProviderTransitionFor(t *testing.T) {
	home, second := newHome(), newSecond()
	p := transition.NewProvider(nil).
		Register(screenHome, screenSecond, namedTransition("push"))

	require.Equal(t, namedTransition("push"), p.TransitionFor(router.OperationPush, home, second))
	require.Nil(t, p.TransitionFor(router.OperationPop, second, home))
}

func TestProviderDismissFallsBackToContainerTop(t *testing.T) {
	home, settings := newHome(), newSettings()
	nav := router.New(home, view.Rect{W: 100, H: 100})

	p := transition.NewProvider(nil).
		Register(screenSettings, screenHome, namedTransition("dismiss"))

	require.Equal(t, namedTransition("dismiss"), p.DismissTransition(settings, nav))

	// A direct entry wins over the fallback.
	p.Register(screenSettings, router.ScreenNavigation, namedTransition("direct"))
	require.Equal(t, namedTransition("direct"), p.DismissTransition(settings, nav))

	require.Nil(t, p.DismissTransition(home, settings))
}

func TestProviderPresentUsesSource(t *testing.T) {
	home, settings := newHome(), newSettings()
	nav := router.New(home, view.Rect{W: 100, H: 100})

	p := transition.NewProvider(nil).
		Register(screenHome, screenSettings, namedTransition("present"))

	require.Equal(t, namedTransition("present"), p.PresentTransition(settings, nav, home))
	require.Nil(t, p.PresentTransition(settings, nav, nil))
}

func TestProviderForAttachesOnce(t *testing.T) {
	nav := router.New(newHome(), view.Rect{W: 100, H: 100})

	p := transition.ProviderFor(nav)
	require.Same(t, p, transition.ProviderFor(nav))
	require.Equal(t, router.Delegate(p), nav.Delegate())
	require.Equal(t, router.ModalDelegate(p), nav.ModalDelegate())
}

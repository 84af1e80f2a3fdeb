package transition

import (
	"github.com/BrandonKowalski/choreo/pkg/choreo/internal"
	"github.com/BrandonKowalski/choreo/pkg/choreo/router"
)

// Provider serves transitions from a Registry to a router.
type Provider struct {
	registry *Registry
}

// NewProvider creates a provider over registry. A nil registry gets a new one.
func NewProvider(registry *Registry) *Provider {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Provider{registry: registry}
}

// ProviderFor returns the provider attached to r, attaching a new one as its
// delegate the first time. It also becomes the modal delegate unless r
// already has one.
func ProviderFor(r *router.Router) *Provider {
	if p, ok := r.Delegate().(*Provider); ok {
		return p
	}
	p := NewProvider(nil)
	r.SetDelegate(p)
	if r.ModalDelegate() == nil {
		r.SetModalDelegate(p)
	}
	return p
}

// Registry returns the registry the provider reads from.
func (p *Provider) Registry() *Registry {
	return p.registry
}

// Register sets the transition from one screen to another.
func (p *Provider) Register(from, to router.Screen, t router.Transitioning) *Provider {
	p.registry.Register(from, to, t)
	return p
}

func (p *Provider) lookup(from, to router.Screen) router.Transitioning {
	t, ok := p.registry.Lookup(from, to)
	if !ok {
		return nil
	}
	return t
}

// TransitionFor returns the transition registered for the pair of screens.
func (p *Provider) TransitionFor(op router.Operation, from, to router.Controller) router.Transitioning {
	t := p.lookup(from.Screen(), to.Screen())
	internal.GetInternalLogger().Debug("Transition lookup",
		"operation", op.String(), "from", from.Screen(), "to", to.Screen(), "found", t != nil)
	return t
}

// PresentTransition returns the transition registered from the screen that
// asked to present to the presented screen. Without a source, the presenting
// screen is used.
func (p *Provider) PresentTransition(presented, presenting, source router.Controller) router.Transitioning {
	from := presenting
	if source != nil {
		from = source
	}
	return p.lookup(from.Screen(), presented.Screen())
}

// DismissTransition returns the transition registered from the dismissed
// screen to the presenting one. When there is none and the presenting screen
// is a container, its top screen is tried instead.
func (p *Provider) DismissTransition(dismissed, presenting router.Controller) router.Transitioning {
	if t := p.lookup(dismissed.Screen(), presenting.Screen()); t != nil {
		return t
	}
	container, ok := presenting.(router.Container)
	if !ok {
		return nil
	}
	top := container.Top()
	if top == nil {
		return nil
	}
	return p.lookup(dismissed.Screen(), top.Screen())
}

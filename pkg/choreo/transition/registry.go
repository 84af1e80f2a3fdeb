package transition

import (
	"sync"

	"github.com/BrandonKowalski/choreo/pkg/choreo/router"
)

// Registry maps (from, to) screen pairs to transitions.
type Registry struct {
	mu          sync.RWMutex
	transitions map[router.Screen]map[router.Screen]router.Transitioning
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		transitions: make(map[router.Screen]map[router.Screen]router.Transitioning),
	}
}

// Register sets the transition from one screen to another, replacing any
// transition registered for the same pair.
func (r *Registry) Register(from, to router.Screen, t router.Transitioning) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets, ok := r.transitions[from]
	if !ok {
		targets = make(map[router.Screen]router.Transitioning)
		r.transitions[from] = targets
	}
	targets[to] = t
	return r
}

// Lookup returns the transition registered from one screen to another.
func (r *Registry) Lookup(from, to router.Screen) (router.Transitioning, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transitions[from][to]
	return t, ok
}

// Remove deletes the transition for a pair.
func (r *Registry) Remove(from, to router.Screen) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.transitions[from], to)
	if len(r.transitions[from]) == 0 {
		delete(r.transitions, from)
	}
}

// Len returns the number of registered pairs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, targets := range r.transitions {
		n += len(targets)
	}
	return n
}

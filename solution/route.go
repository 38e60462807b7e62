// SPDX-License-Identifier: MIT
package solution

import (
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/routestate"
	"github.com/katalvlaran/vrpcore/tour"
)

// RouteContext is a Route (Actor + Tour) plus its RouteState, with
// clone-on-write semantics: CloneShallow is O(1) and aliases the parent's
// Tour/State; EnsureOwned performs the one deep copy a clone ever needs,
// the moment it is first mutated.
type RouteContext struct {
	Actor *model.Actor

	t     *tour.Tour
	s     *routestate.State
	owned bool
	dirty bool
}

// NewRouteContext returns a freshly owned, empty RouteContext for actor.
func NewRouteContext(actor *model.Actor) *RouteContext {
	return &RouteContext{Actor: actor, t: tour.New(), s: routestate.New(), owned: true}
}

// Tour returns the underlying Tour. Structural mutations made through it
// are only safe once EnsureOwned has run (callers that mutate a
// RouteContext always go through EnsureOwned first; read-only callers,
// e.g. the insertion evaluator scanning legs, never need to).
func (r *RouteContext) Tour() *tour.Tour { return r.t }

// State returns the underlying RouteState.
func (r *RouteContext) State() *routestate.State { return r.s }

// CloneShallow returns a clone that aliases this RouteContext's Tour and
// State until its own EnsureOwned call.
func (r *RouteContext) CloneShallow() *RouteContext {
	return &RouteContext{Actor: r.Actor, t: r.t, s: r.s, owned: false}
}

// EnsureOwned deep-copies Tour and State on a shared clone's first mutation.
// A no-op on a RouteContext that already owns its storage.
func (r *RouteContext) EnsureOwned() {
	if r.owned {
		return
	}
	r.t = r.t.DeepCopy()
	r.s = r.s.Clone()
	r.owned = true
	r.dirty = true
}

// Dirty reports whether this clone has taken its own copy via EnsureOwned
// since it was created via CloneShallow — the shadow-context flag of
// spec.md §9.
func (r *RouteContext) Dirty() bool { return r.dirty }

// DeepCopy returns a fully independent RouteContext.
func (r *RouteContext) DeepCopy() *RouteContext {
	return &RouteContext{Actor: r.Actor, t: r.t.DeepCopy(), s: r.s.Clone(), owned: true}
}

// SPDX-License-Identifier: MIT
package solution

import (
	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/vrpcore/model"
)

// Registry owns Actors, grouped by Detail so equal-Detail actors pool
// together, and hands out the next unused one per group.
type Registry struct {
	groups []detailGroup
	logger hclog.Logger
}

type detailGroup struct {
	detail model.Detail
	actors []*model.Actor
	used   map[*model.Actor]bool
}

// NewRegistry builds a Registry over actors, grouped by Detail equality. A
// nil logger defaults to hclog.NewNullLogger() so diagnostic tracing costs
// nothing when the caller does not want it.
func NewRegistry(actors []*model.Actor, logger hclog.Logger) *Registry {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	reg := &Registry{logger: logger}
	for _, a := range actors {
		reg.add(a)
	}
	return reg
}

func (r *Registry) add(a *model.Actor) {
	for i := range r.groups {
		if r.groups[i].detail.Equal(a.Detail) {
			r.groups[i].actors = append(r.groups[i].actors, a)
			r.groups[i].used[a] = false
			return
		}
	}
	r.groups = append(r.groups, detailGroup{
		detail: a.Detail,
		actors: []*model.Actor{a},
		used:   map[*model.Actor]bool{a: false},
	})
}

// Next returns the next unused Actor, or nil if every Actor is in use.
// Ties are broken by group declaration order then actor declaration order,
// keeping the determinism contract of spec.md §5.
func (r *Registry) Next() *model.Actor {
	for i := range r.groups {
		g := &r.groups[i]
		for _, a := range g.actors {
			if !g.used[a] {
				return a
			}
		}
	}
	return nil
}

// UseActor marks actor as in use.
func (r *Registry) UseActor(a *model.Actor) {
	for i := range r.groups {
		if _, ok := r.groups[i].used[a]; ok {
			r.groups[i].used[a] = true
			r.logger.Trace("actor acquired", "actor", a.ID)
			return
		}
	}
}

// FreeActor returns actor to the pool.
func (r *Registry) FreeActor(a *model.Actor) {
	for i := range r.groups {
		if _, ok := r.groups[i].used[a]; ok {
			r.groups[i].used[a] = false
			r.logger.Trace("actor released", "actor", a.ID)
			return
		}
	}
}

// AllActors returns every actor the Registry knows about, in declaration order.
func (r *Registry) AllActors() []*model.Actor {
	var out []*model.Actor
	for _, g := range r.groups {
		out = append(out, g.actors...)
	}
	return out
}

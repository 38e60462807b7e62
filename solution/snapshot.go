// SPDX-License-Identifier: MIT
package solution

import "github.com/katalvlaran/vrpcore/model"

// Solution is an immutable snapshot: the routes produced plus every job
// left unassigned with its reason code. SolutionContext.ToSolution
// produces one; vrpcore.NewFromSolution rehydrates a SolutionContext from one.
type Solution struct {
	Routes      []*RouteContext
	Unassigned  map[model.Job]int
	Ignored     []model.Job
}

// ToSolution snapshots the current routes, unassigned and ignored jobs. It
// takes no extras; vrpcore.InsertionContext.ToSolution is the caller that
// attaches out-of-band data (e.g. timing stats) to the snapshot.
func (s *SolutionContext) ToSolution() Solution {
	routes := make([]*RouteContext, len(s.Routes))
	copy(routes, s.Routes)
	return Solution{
		Routes:     routes,
		Unassigned: s.UnassignedJobs(),
		Ignored:    s.Ignored(),
	}
}

// DeepCopy returns an independent SolutionContext: every RouteContext is
// deep-copied, and required/ignored/locked/unassigned are copied by value.
// Registry is shared by reference — actor usage state lives with the
// Registry on purpose, mirroring spec.md §3's "Actors are shared
// immutably; the Registry tracks which are in use by identity."
func (s *SolutionContext) DeepCopy() *SolutionContext {
	out := &SolutionContext{
		required:   s.required.Copy(),
		ignored:    s.ignored.Copy(),
		locked:     s.locked.Copy(),
		unassigned: make(map[model.Job]int, len(s.unassigned)),
		Registry:   s.Registry,
		Routes:     make([]*RouteContext, len(s.Routes)),
	}
	for j, c := range s.unassigned {
		out.unassigned[j] = c
	}
	for i, r := range s.Routes {
		out.Routes[i] = r.DeepCopy()
	}
	return out
}

// SPDX-License-Identifier: MIT
package insertion

import "github.com/katalvlaran/vrpcore/solution"

// ApplyInsertion commits an InsertionSuccess returned by EvaluateJobInsertion
// against the very same sol it was computed from: splices every planned
// Activity in the order recorded (already ascending leg index, each one
// already accounting for the shift every earlier splice produced — spec.md
// §4.H), acquires a fresh Actor from the Registry when the success names
// one, then runs the pipeline's accept_route_state and accept_insertion
// hooks and clears job from every SolutionContext bucket. Returns the index
// into sol.Routes the job landed on.
func (e *Evaluator) ApplyInsertion(sol *solution.SolutionContext, success *InsertionSuccess) int {
	routeIdx := success.RouteIndex
	var route *solution.RouteContext

	if routeIdx == -1 {
		route = bareRoute(success.NewActor)
		sol.Registry.UseActor(success.NewActor)
		sol.Routes = append(sol.Routes, route)
		routeIdx = len(sol.Routes) - 1
	} else {
		route = sol.Routes[routeIdx]
	}

	route.EnsureOwned()
	for _, pa := range success.Activities {
		_ = route.Tour().InsertAt(pa.Activity, success.Job, pa.Index)
	}

	e.Pipeline.AcceptRouteState(route)
	sol.RemoveFromAllBuckets(success.Job)
	e.Pipeline.AcceptInsertion(sol, routeIdx, success.Job)

	return routeIdx
}

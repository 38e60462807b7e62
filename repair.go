// SPDX-License-Identifier: MIT
package vrpcore

import (
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/schedule"
	"github.com/katalvlaran/vrpcore/solution"
)

// CodeRepairDropped is the reason code Repair assigns a job it pulled off
// a route.
const CodeRepairDropped = 901

// Repair is a best-effort reconciliation pass, grounded on
// repair_solution.rs: every route's state is re-propagated, then checked
// against the arrival-feasibility invariant of spec.md §8
// (LATEST_ARRIVAL(a_i) >= a_i.schedule.arrival). A violation means the
// route could not actually have been produced by this Pipeline — the
// offending job is pulled off the tour and surfaces as unassigned with
// CodeRepairDropped instead of silently corrupting the solution or
// panicking. NewFromSolution is Repair's only caller; a context built by
// New never needs it, since EvaluateJobInsertion/ApplyInsertion can only
// ever produce a feasible route. AcceptSolutionState then runs once over
// every surviving route, the same "once per outer iteration" boundary a
// completed batch of insertions would trigger.
func (ctx *InsertionContext) Repair() {
	pipeline := ctx.Problem.Pipeline
	for _, route := range ctx.Solution.Routes {
		pipeline.AcceptRouteState(route)
		for ctx.repairOnePass(route) {
			pipeline.AcceptRouteState(route)
		}
	}
	pipeline.AcceptSolutionState(ctx.Solution)
}

// repairOnePass drops at most one job per call, since removing an activity
// shifts every later index and invalidates the rest of the scan. Returns
// whether it dropped one, so Repair knows whether to re-propagate and scan
// again.
func (ctx *InsertionContext) repairOnePass(route *solution.RouteContext) bool {
	activities := route.Tour().AllActivities()
	for idx, a := range activities {
		if !a.HasJob() {
			continue
		}

		latest := a.TimeWindow.End
		if v, ok := route.State().GetActivityState(route.Tour().RefAt(idx), schedule.LatestArrival); ok {
			latest = v.(model.Timestamp)
		}
		if latest >= a.Schedule.Arrival {
			continue
		}

		route.EnsureOwned()
		job, err := route.Tour().RemoveActivityAt(idx)
		if err != nil {
			continue
		}
		route.Tour().Remove(job) // clean up any remaining sibling activities of a Multi
		ctx.Solution.MarkUnassigned(job, CodeRepairDropped)
		return true
	}
	return false
}

// SPDX-License-Identifier: MIT
package schedule

import (
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
)

var (
	_ feature.Constraint   = (*Feature)(nil)
	_ feature.StateUpdater = (*Feature)(nil)
	_ feature.Objective    = (*Feature)(nil)
)

// Evaluate implements feature.Constraint. Timing has no route-level hard
// rule (any actor may attempt any job; the activity-level check is where
// feasibility actually lives), so MoveRoute always passes.
func (f *Feature) Evaluate(ctx *feature.MoveContext) *feature.ConstraintViolation {
	if ctx.Kind != feature.MoveActivity {
		return nil
	}
	return f.hardActivityCheck(ctx)
}

// AcceptRouteState implements feature.StateUpdater: a full forward sweep
// (Schedule, totals) followed by a full backward sweep (LatestArrival,
// Waiting). The activity-state cache is discarded first rather than pruned
// entry by entry, since every job-bearing activity is about to be
// rewritten anyway.
func (f *Feature) AcceptRouteState(route *solution.RouteContext) {
	route.State().ResetActivityStates()
	f.ForwardPass(route)
	f.BackwardPass(route)
}

// AcceptSolutionState implements feature.StateUpdater. Departure reschedule
// only ever runs once every job is placed (or permanently set aside) —
// reordering routes while jobs remain required would make an earlier
// reschedule stale before the outer loop even finishes this pass.
func (f *Feature) AcceptSolutionState(sol *solution.SolutionContext) {
	if len(sol.Required()) != 0 {
		return
	}
	for _, route := range sol.Routes {
		f.AcceptRouteState(route)
		f.rescheduleDeparture(route)
	}
}

// AcceptInsertion implements feature.StateUpdater. Timing carries no
// per-job bucket side effects of its own — AcceptRouteState (always run by
// the insertion evaluator right after splicing) already recomputes
// everything this feature owns.
func (f *Feature) AcceptInsertion(*solution.SolutionContext, int, model.Job) {}

// SoftRouteCost implements feature.Objective. Timing has no route-level
// soft term; every cost it contributes is activity-scoped.
func (f *Feature) SoftRouteCost(*feature.MoveContext) model.Cost { return 0 }

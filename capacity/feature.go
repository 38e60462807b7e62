// SPDX-License-Identifier: MIT
package capacity

import (
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/routestate"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

var (
	_ feature.Constraint   = (*Feature)(nil)
	_ feature.StateUpdater = (*Feature)(nil)
	_ feature.Objective    = (*Feature)(nil)
)

// loadAt resolves the cached value for (a, key) on route, defaulting to the
// monoid identity when nothing has been propagated yet — a fresh activity,
// or one whose ref fell off a stale generation (spec.md §9).
func loadAt(route *solution.RouteContext, a *tour.Activity, key routestate.Key) model.Load {
	if a == nil {
		return model.Zero()
	}
	if idx, ok := route.Tour().PositionOf(a); ok {
		if v, ok := route.State().GetActivityState(route.Tour().RefAt(idx), key); ok {
			return v.(model.Load)
		}
	}
	return model.Zero()
}

// Intervals returns the cached ReloadIntervals for route, computing them
// afresh if Propagate has never stored any on route. The cache is
// route-scoped, not generation-stamped.
func Intervals(route *solution.RouteContext) []Interval {
	if v, ok := route.State().GetRouteState(ReloadIntervals); ok {
		return v.([]Interval)
	}
	return ComputeIntervals(route)
}

// Evaluate implements feature.Constraint: spec.md §4.F's hard demand check
// for inserting ctx.Target between ctx.Prev and ctx.Next, plus the
// reload-placement check when Target itself is a reload marker.
func (f *Feature) Evaluate(ctx *feature.MoveContext) *feature.ConstraintViolation {
	if ctx.Kind != feature.MoveActivity {
		return nil
	}
	if ctx.Target.Single != nil && ctx.Target.Single.Dimensions.Reload {
		return f.reloadPlacementCheck(ctx)
	}
	return f.demandCheck(ctx)
}

// demandCheck implements the three-step hard demand check of spec.md §4.F
// against ctx.Prev's cached capacity state. A Multi's constituent Single
// gets the same single-anchor check: it is not retried across later reload
// Intervals, and neither this path nor package insertion calls
// CheckAcrossIntervals.
func (f *Feature) demandCheck(ctx *feature.MoveContext) *feature.ConstraintViolation {
	cap := ctx.Route.Actor.Vehicle.Capacity
	d := demandAt(ctx.Target)
	return checkDemand(ctx.Route, ctx.Prev, cap, d)
}

// checkDemand is the pure predicate behind demandCheck / CheckAcrossIntervals.
func checkDemand(route *solution.RouteContext, prev *tour.Activity, cap model.Load, d model.Demand) *feature.ConstraintViolation {
	delta := d.Change()

	if deliveryStatic := orZeroLoad(d.Delivery.Static); !deliveryStatic.IsEmpty() {
		if !loadAt(route, prev, MaxPastCapacity).Add(deliveryStatic).CanFit(cap) {
			return &feature.ConstraintViolation{Code: CodeCapacityPastExceeded, Stopped: true}
		}
	}

	if isPositive(delta) {
		if !loadAt(route, prev, MaxFutureCapacity).Add(delta).CanFit(cap) {
			return &feature.ConstraintViolation{Code: CodeCapacityFutureExceeded, Stopped: true}
		}
	}

	if !loadAt(route, prev, CurrentCapacity).Add(delta).CanFit(cap) {
		return &feature.ConstraintViolation{Code: CodeCapacityExceeded, Stopped: false}
	}
	return nil
}

// isPositive reports whether any dimension of l is strictly positive —
// the sign test spec.md §4.F applies to demand_change before consulting
// MaxFutureCapacity.
func isPositive(l model.Load) bool {
	v, ok := l.(model.VectorLoad)
	if !ok {
		return false
	}
	for _, x := range v {
		if x > 0 {
			return true
		}
	}
	return false
}

// CheckAcrossIntervals is the Multi-job variant of the hard demand check:
// it succeeds if ANY Interval ending at or after insertIdx can absorb d,
// trying each candidate Interval's activity at insertIdx-1 (or the
// Interval's own Start activity when insertIdx-1 precedes it) as the
// "prev" anchor (spec.md §4.F).
func CheckAcrossIntervals(route *solution.RouteContext, insertIdx int, cap model.Load, d model.Demand) *feature.ConstraintViolation {
	intervals := Intervals(route)
	acts := route.Tour().AllActivities()
	var last *feature.ConstraintViolation
	for _, iv := range intervals {
		if iv.End < insertIdx {
			continue
		}
		prevIdx := insertIdx - 1
		if prevIdx < iv.Start {
			prevIdx = iv.Start
		}
		if prevIdx < 0 || prevIdx >= len(acts) {
			continue
		}
		v := checkDemand(route, acts[prevIdx], cap, d)
		if v == nil {
			return nil
		}
		last = v
	}
	return last
}

// reloadPlacementCheck implements spec.md §4.F's reload-activity hard
// check: reject (not stopped) as the very first job on the tour, or
// wherever no real job follows in the very next position (the very end).
func (f *Feature) reloadPlacementCheck(ctx *feature.MoveContext) *feature.ConstraintViolation {
	prev := ctx.Prev
	next := ctx.Next
	if !prev.HasJob() {
		return &feature.ConstraintViolation{Code: CodeReloadMisplaced, Stopped: false}
	}
	if next == nil || !next.HasJob() {
		return &feature.ConstraintViolation{Code: CodeReloadMisplaced, Stopped: false}
	}
	return nil
}

// AcceptRouteState implements feature.StateUpdater: a full re-propagation
// over every Interval of route (spec.md §4.F).
func (f *Feature) AcceptRouteState(route *solution.RouteContext) {
	f.Propagate(route)
}

// AcceptSolutionState implements feature.StateUpdater: drops trivially
// unused reloads from every route (spec.md §4.F) — at the very start or
// very end, consecutive reloads, or an Interval that is obsolete (capacity
// suffices to merge it with its neighbour without breach; grounded on
// vrp-core's route_intervals.rs is_marker_assignable).
func (f *Feature) AcceptSolutionState(sol *solution.SolutionContext) {
	for _, route := range sol.Routes {
		f.pruneObsoleteReloads(route)
	}
}

func (f *Feature) pruneObsoleteReloads(route *solution.RouteContext) {
	acts := route.Tour().AllActivities()
	cap := route.Actor.Vehicle.Capacity
	var toRemove []model.Job

	isReload := func(a *tour.Activity) bool {
		return a.HasJob() && a.Single.Dimensions.Reload
	}

	for i, a := range acts {
		if !isReload(a) {
			continue
		}
		if !acts[i-1].HasJob() {
			toRemove = append(toRemove, singleJob(a))
			continue
		}
		if i+1 < len(acts) && isReload(acts[i+1]) {
			toRemove = append(toRemove, singleJob(a))
			continue
		}
		if i == len(acts)-1 || !acts[i+1].HasJob() {
			toRemove = append(toRemove, singleJob(a))
			continue
		}
		if f.intervalMergeable(route, i, cap) {
			toRemove = append(toRemove, singleJob(a))
		}
	}

	if len(toRemove) == 0 {
		return
	}
	route.EnsureOwned()
	for _, job := range toRemove {
		route.Tour().Remove(job)
	}
}

// intervalMergeable implements the "obsolete interval" predicate: the two
// Intervals straddling the reload at position idx could be propagated as
// one without breaching capacity at any point.
func (f *Feature) intervalMergeable(route *solution.RouteContext, idx int, cap model.Load) bool {
	intervals := Intervals(route)
	var left, right Interval
	found := false
	for i, iv := range intervals {
		if iv.End == idx {
			left = iv
			if i+1 < len(intervals) {
				right = intervals[i+1]
				found = true
			}
			break
		}
	}
	if !found {
		return false
	}
	acts := route.Tour().AllActivities()
	merged := Interval{Start: left.Start, End: right.End}
	probe := solution.NewRouteContext(route.Actor)
	probe.State().PutRouteState(ReloadIntervals, []Interval{merged})
	var scratch Feature
	scratch.propagateInterval(probe, acts, merged, model.Zero())
	for i := merged.Start; i <= merged.End; i++ {
		ref := probe.Tour().RefAt(i)
		v, _ := probe.State().GetActivityState(ref, MaxPastCapacity)
		if lv, ok := v.(model.Load); ok && !lv.CanFit(cap) {
			return false
		}
	}
	return true
}

func singleJob(a *tour.Activity) model.Job {
	return model.NewSingleJob(a.Single)
}

// AcceptInsertion implements feature.StateUpdater: reload-marker bookkeeping
// (spec.md §4.F).
//
//   - Inserting a reload itself moves the route's other unassigned reload
//     markers back to ignored (they are no longer forced candidates).
//   - Inserting a non-reload job that pushes MaxPastCapacity at the route's
//     end past Threshold×capacity pulls every remaining reload marker for
//     this route out of ignored/required and into required+locked, forcing
//     their assignment.
func (f *Feature) AcceptInsertion(sol *solution.SolutionContext, routeIdx int, job model.Job) {
	if routeIdx < 0 || routeIdx >= len(sol.Routes) {
		return
	}
	route := sol.Routes[routeIdx]

	if job.IsReload() {
		for _, other := range reloadSiblings(sol, route) {
			_ = sol.MoveToIgnored(other)
		}
		return
	}

	acts := route.Tour().AllActivities()
	if len(acts) == 0 {
		return
	}
	end := acts[len(acts)-1]
	cap := route.Actor.Vehicle.Capacity
	reached := loadAt(route, end, MaxPastCapacity)
	if !overThreshold(reached, cap, f.threshold()) {
		return
	}
	for _, other := range reloadSiblings(sol, route) {
		sol.UnlockToRequired(other)
		sol.MoveToLocked(other)
	}
}

// reloadSiblings returns every job in required or ignored that is a
// reload marker targeting route's Actor (see jobTargetsActor).
func reloadSiblings(sol *solution.SolutionContext, route *solution.RouteContext) []model.Job {
	var out []model.Job
	candidates := append(append([]model.Job{}, sol.Required()...), sol.Ignored()...)
	for _, j := range candidates {
		if j.IsReload() && jobTargetsActor(j, route.Actor) {
			out = append(out, j)
		}
	}
	return out
}

// jobTargetsActor reports whether job carries an "actor" tag pinning it to
// actor specifically; reload markers with no such tag are global and match
// every actor (problem construction assigns one reload job per vehicle by
// convention, tagging Dimensions.Tags["actor"] with the Actor.ID).
func jobTargetsActor(job model.Job, actor *model.Actor) bool {
	for _, s := range job.Singles() {
		if tag, ok := s.Dimensions.Tags["actor"]; ok {
			return tag == actor.ID
		}
	}
	return true
}

func overThreshold(reached, cap model.Load, ratio float64) bool {
	rv, ok1 := reached.(model.VectorLoad)
	cv, ok2 := cap.(model.VectorLoad)
	if !ok1 || !ok2 || len(cv) == 0 {
		return false
	}
	rv, cv = widenPublic(rv, cv)
	for i := range cv {
		if cv[i] == 0 {
			continue
		}
		if float64(rv[i]) >= ratio*float64(cv[i]) {
			return true
		}
	}
	return false
}

// widenPublic mirrors model's unexported widen: VectorLoad arithmetic
// already pads mismatched arity, but the threshold scan needs both slices
// at the same length up front.
func widenPublic(a, b model.VectorLoad) (model.VectorLoad, model.VectorLoad) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	wa := make(model.VectorLoad, n)
	wb := make(model.VectorLoad, n)
	copy(wa, a)
	copy(wb, b)
	return wa, wb
}

// SoftRouteCost implements feature.Objective: capacity carries no
// route-level soft term.
func (f *Feature) SoftRouteCost(*feature.MoveContext) model.Cost { return 0 }

// SoftActivityCost implements feature.Objective: capacity carries no
// activity-level soft term in this design — multi-trip cost (extra
// distance/time to revisit a depot for reload) is already priced by the
// schedule feature once the reload activity itself occupies a tour
// position.
func (f *Feature) SoftActivityCost(*feature.MoveContext) model.Cost { return 0 }

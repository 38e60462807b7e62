// SPDX-License-Identifier: MIT
package capacity

import (
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

// ComputeIntervals splits route's tour into reload-bounded Intervals. A
// route with no reload-marker activities yields a single Interval covering
// every index.
func ComputeIntervals(route *solution.RouteContext) []Interval {
	acts := route.Tour().AllActivities()
	var intervals []Interval
	start := 0
	for i, a := range acts {
		if a.HasJob() && a.Single.Dimensions.Reload {
			intervals = append(intervals, Interval{Start: start, End: i})
			start = i + 1
		}
	}
	intervals = append(intervals, Interval{Start: start, End: len(acts) - 1})
	return intervals
}

// IntervalContaining returns the Interval holding idx, and whether one was
// found (false when idx lies outside every Interval, e.g. out of range).
func IntervalContaining(intervals []Interval, idx int) (Interval, bool) {
	for _, iv := range intervals {
		if idx >= iv.Start && idx <= iv.End {
			return iv, true
		}
	}
	return Interval{}, false
}

func demandAt(a *tour.Activity) model.Demand {
	if a == nil || a.Single == nil {
		return model.Demand{}
	}
	return a.Single.Demand()
}

// Propagate recomputes CurrentCapacity/MaxPastCapacity/MaxFutureCapacity
// for every activity across every Interval, left to right, threading the
// carry between consecutive intervals, and stores ReloadIntervals on the
// route (spec.md §4.F).
func (f *Feature) Propagate(route *solution.RouteContext) {
	acts := route.Tour().AllActivities()
	intervals := ComputeIntervals(route)
	route.State().PutRouteState(ReloadIntervals, intervals)

	carry := model.Zero()
	for _, iv := range intervals {
		if iv.Start > iv.End || iv.Start >= len(acts) {
			continue
		}
		carry = f.propagateInterval(route, acts, iv, carry)
	}
}

// propagateInterval runs the forward fold (current, max_past) then the
// backward fold (max_future) over one Interval and returns the carry this
// interval passes to the next one: current(end) minus the interval's
// static pickups (spec.md §4.F).
func (f *Feature) propagateInterval(route *solution.RouteContext, acts []*tour.Activity, iv Interval, carryIn model.Load) model.Load {
	t := route.Tour()

	var staticDeliveries, staticPickups model.Load = model.Zero(), model.Zero()
	for i := iv.Start; i <= iv.End; i++ {
		d := demandAt(acts[i])
		staticDeliveries = staticDeliveries.Add(orZeroLoad(d.Delivery.Static))
		staticPickups = staticPickups.Add(orZeroLoad(d.Pickup.Static))
	}
	initialAboard := carryIn.Add(staticDeliveries)

	current := make([]model.Load, iv.End-iv.Start+1)
	maxPast := make([]model.Load, len(current))
	running := initialAboard
	for i := iv.Start; i <= iv.End; i++ {
		idx := i - iv.Start
		running = running.Add(demandAt(acts[i]).Change())
		current[idx] = running
		if idx == 0 {
			maxPast[idx] = running
		} else {
			maxPast[idx] = maxPast[idx-1].Max(running)
		}
	}

	maxFuture := make([]model.Load, len(current))
	for idx := len(current) - 1; idx >= 0; idx-- {
		if idx == len(current)-1 {
			maxFuture[idx] = current[idx]
		} else {
			maxFuture[idx] = current[idx].Max(maxFuture[idx+1])
		}
	}

	for i := iv.Start; i <= iv.End; i++ {
		idx := i - iv.Start
		ref := t.RefAt(i)
		route.State().PutActivityState(ref, CurrentCapacity, current[idx])
		route.State().PutActivityState(ref, MaxPastCapacity, maxPast[idx])
		route.State().PutActivityState(ref, MaxFutureCapacity, maxFuture[idx])
	}

	last := current[len(current)-1]
	return last.Sub(staticPickups)
}

// orZeroLoad substitutes the VectorLoad identity for a nil Load.
func orZeroLoad(l model.Load) model.Load {
	if l == nil {
		return model.Zero()
	}
	return l
}

// SPDX-License-Identifier: MIT
package schedule

import (
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
)

// ForwardPass recomputes Schedule.Arrival/Departure for every activity after
// the start, in tour order, and accumulates TotalDistance/TotalDuration
// route-state totals. The start activity's own Schedule.Departure is left
// untouched — it is owned by whatever set it (route construction, or this
// feature's own rescheduleDeparture) and is the anchor this pass walks from.
func (f *Feature) ForwardPass(route *solution.RouteContext) {
	acts := route.Tour().AllActivities()
	if len(acts) == 0 {
		return
	}
	profile := profileOf(route.Actor)

	loc := acts[0].Location
	dep := acts[0].Schedule.Departure
	acts[0].Schedule.Arrival = dep

	var totalDistance model.Distance
	var totalDuration model.Duration
	for i := 1; i < len(acts); i++ {
		a := acts[i]
		travelTime := model.AtDeparture(dep)
		travel := f.Transport.Duration(profile, loc, a.Location, travelTime)

		a.Schedule.Arrival = dep + model.Timestamp(travel)
		a.Schedule.Departure = f.Activity.EstimateDeparture(route.Actor, a, a.Schedule.Arrival)

		totalDistance += f.Transport.Distance(profile, loc, a.Location, travelTime)
		totalDuration += travel

		loc = a.Location
		dep = a.Schedule.Departure
	}
	route.State().PutRouteState(TotalDistance, totalDistance)
	route.State().PutRouteState(TotalDuration, totalDuration)
}

// BackwardPass recomputes the LatestArrival and Waiting caches for every
// job-bearing activity, walking right-to-left from the shift's end carrying
// a running (latest-feasible-arrival, location, accumulated-waiting) triple.
func (f *Feature) BackwardPass(route *solution.RouteContext) {
	acts := route.Tour().AllActivities()
	n := len(acts)
	if n == 0 {
		return
	}
	actor := route.Actor
	profile := profileOf(actor)

	endTime := actor.Detail.Shift.End
	var loc model.Location
	switch {
	case actor.Detail.End != nil:
		loc = *actor.Detail.End
	case actor.Detail.Start != nil:
		loc = *actor.Detail.Start
	default:
		loc = acts[0].Location
	}
	waiting := model.Duration(0)

	for i := n - 1; i >= 0; i-- {
		a := acts[i]
		if !a.HasJob() {
			continue
		}

		travel := f.Transport.Duration(profile, a.Location, loc, model.AtArrival(endTime))
		deadline := endTime - model.Timestamp(travel)
		latest := f.Activity.EstimateArrival(actor, a, deadline)

		futureWaiting := waiting
		if a.TimeWindow.Start > a.Schedule.Arrival {
			futureWaiting += model.Duration(a.TimeWindow.Start - a.Schedule.Arrival)
		}

		ref := route.Tour().RefAt(i)
		route.State().PutActivityState(ref, LatestArrival, latest)
		route.State().PutActivityState(ref, Waiting, futureWaiting)

		endTime = latest
		loc = a.Location
		waiting = futureWaiting
	}
}

// rescheduleDeparture shifts the start activity's departure later when the
// first job's own window leaves slack the vehicle need not burn waiting at
// the depot — only ever safe to apply once nothing remains required (spec.md
// §4.E), since an empty required bucket is the only point at which every
// route's final job order is settled.
func (f *Feature) rescheduleDeparture(route *solution.RouteContext) {
	acts := route.Tour().AllActivities()
	if len(acts) < 2 {
		return
	}
	start, first := acts[0], acts[1]
	profile := profileOf(route.Actor)

	earliest := start.TimeWindow.Start
	travel := f.Transport.Duration(profile, start.Location, first.Location, model.AtDeparture(earliest))
	newDeparture := first.TimeWindow.Start - model.Timestamp(travel)
	if newDeparture < earliest {
		newDeparture = earliest
	}

	if newDeparture > earliest {
		start.Schedule.Departure = newDeparture
		f.ForwardPass(route)
		f.BackwardPass(route)
	}
}

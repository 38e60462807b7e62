// SPDX-License-Identifier: MIT
package schedule

import (
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

// latestArrivalAt resolves the cached LatestArrival for a. A job-less (end)
// activity resolves to the shift end, the anchor BackwardPass starts from;
// a job activity with nothing cached (never propagated, or fell off a stale
// generation — spec.md §9) falls back to its own window end.
func (f *Feature) latestArrivalAt(route *solution.RouteContext, a *tour.Activity) model.Timestamp {
	if !a.HasJob() {
		return route.Actor.Detail.Shift.End
	}
	if idx, ok := route.Tour().PositionOf(a); ok {
		if v, ok := route.State().GetActivityState(route.Tour().RefAt(idx), LatestArrival); ok {
			return v.(model.Timestamp)
		}
	}
	return a.TimeWindow.End
}

// waitingAt resolves the cached Waiting for a, defaulting to zero.
func (f *Feature) waitingAt(route *solution.RouteContext, a *tour.Activity) model.Duration {
	if idx, ok := route.Tour().PositionOf(a); ok {
		if v, ok := route.State().GetActivityState(route.Tour().RefAt(idx), Waiting); ok {
			return v.(model.Duration)
		}
	}
	return 0
}

// hardActivityCheck implements spec.md §4.E's six-step feasibility check for
// inserting target between prev and next (next nil at an open tour's
// trailing leg). The step numbering in the comments matches the spec text.
func (f *Feature) hardActivityCheck(ctx *feature.MoveContext) *feature.ConstraintViolation {
	route := ctx.Route
	actor := ctx.Route.Actor
	prev, target, next := ctx.Prev, ctx.Target, ctx.Next
	profile := profileOf(actor)
	departure := prev.Schedule.Departure
	shiftEnd := actor.Detail.Shift.End

	// 1: the shift cannot possibly reach prev, target, or next at all.
	if shiftEnd < prev.TimeWindow.Start || shiftEnd < target.TimeWindow.Start ||
		(next != nil && shiftEnd < next.TimeWindow.Start) {
		return &feature.ConstraintViolation{Code: CodeShiftExceeded, Stopped: true}
	}

	// 2: resolve the location/deadline of whatever comes after target.
	var nextLoc model.Location
	var latestAtNext model.Timestamp
	if next != nil {
		nextLoc = next.Location
		latestAtNext = f.latestArrivalAt(route, next)
	} else {
		nextLoc = target.Location
		latestAtNext = target.TimeWindow.End
		if shiftEnd < latestAtNext {
			latestAtNext = shiftEnd
		}
	}

	// 3: can prev even reach that deadline at all (hard, route-ending)?
	arrAtNext := departure + model.Timestamp(f.Transport.Duration(profile, prev.Location, nextLoc, model.AtDeparture(departure)))
	if arrAtNext > latestAtNext {
		return &feature.ConstraintViolation{Code: CodeLatestArrivalExceeded, Stopped: true}
	}

	// 4: target's own window can no longer be met at all (soft, try next position).
	if target.TimeWindow.Start > latestAtNext {
		return &feature.ConstraintViolation{Code: CodeTimeWindowMissed, Stopped: false}
	}

	arrAtTarget := departure + model.Timestamp(f.Transport.Duration(profile, prev.Location, target.Location, model.AtDeparture(departure)))
	endAtTarget := f.Activity.EstimateDeparture(actor, target, arrAtTarget)

	backOff := f.Transport.Duration(profile, target.Location, nextLoc, model.AtArrival(latestAtNext))
	latestAtTarget := f.Activity.EstimateArrival(actor, target, latestAtNext-model.Timestamp(backOff))

	// 5: target's own window, checked against what next actually allows.
	if arrAtTarget > latestAtTarget {
		return &feature.ConstraintViolation{Code: CodeTimeWindowMissed, Stopped: false}
	}

	if next == nil {
		return nil
	}

	// 6: with target inserted, can we still reach next in time?
	arrAtNextAct := endAtTarget + model.Timestamp(f.Transport.Duration(profile, target.Location, nextLoc, model.AtDeparture(endAtTarget)))
	if arrAtNextAct > latestAtNext {
		return &feature.ConstraintViolation{Code: CodeTimeWindowMissed, Stopped: false}
	}
	return nil
}

// analyzeLeg walks one leg (start -> end) departing at t, returning the
// transport/activity cost of traversing it and the departure it produces.
func (f *Feature) analyzeLeg(actor *model.Actor, start, end *tour.Activity, t model.Timestamp) (model.Cost, model.Cost, model.Timestamp) {
	profile := profileOf(actor)
	travelTime := model.AtDeparture(t)
	travel := f.Transport.Duration(profile, start.Location, end.Location, travelTime)
	arrival := t + model.Timestamp(travel)
	departure := f.Activity.EstimateDeparture(actor, end, arrival)

	transportCost := f.Transport.Cost(profile, start.Location, end.Location, travelTime)
	activityCost := f.Activity.Cost(actor, end, arrival)
	return transportCost, activityCost, departure
}

// isFastService reports whether target is the supplemented fast-service
// shape (grounded on vrp-core's fast_service.rs): an instantaneous,
// single-place, single-span job that can never itself absorb predicted
// waiting time at the next stop, so the waiting-credit term can be skipped.
func isFastService(a *tour.Activity) bool {
	if a.Duration != 0 || a.Single == nil {
		return false
	}
	if len(a.Single.Places) != 1 {
		return false
	}
	return len(a.Single.Places[0].Spans) == 1
}

// SoftActivityCost implements feature.Objective: the cost delta of inserting
// target between prev and next versus leaving prev connected straight to
// next, crediting back whatever waiting time at next the insertion absorbs.
func (f *Feature) SoftActivityCost(ctx *feature.MoveContext) model.Cost {
	route := ctx.Route
	actor := ctx.Route.Actor
	prev, target, next := ctx.Prev, ctx.Target, ctx.Next

	tpLeft, actLeft, depLeft := f.analyzeLeg(actor, prev, target, prev.Schedule.Departure)

	var tpRight, actRight model.Cost
	var depRight model.Timestamp
	if next != nil {
		tpRight, actRight, depRight = f.analyzeLeg(actor, target, next, depLeft)
	}

	newCosts := tpLeft + tpRight + actLeft + actRight

	if route.Tour().ActivityCount() == 0 || next == nil {
		return newCosts
	}

	tpOld, actOld, depOld := f.analyzeLeg(actor, prev, next, prev.Schedule.Departure)

	var waitingCost model.Cost
	if !f.FastService || !isFastService(target) {
		waitingTime := f.waitingAt(route, next)
		credit := model.Duration(0)
		if depRight > depOld {
			credit = model.Duration(depRight - depOld)
		}
		if credit > waitingTime {
			credit = waitingTime
		}
		waitingCost = model.Cost(credit) * f.Activity.WaitingRate(actor)
	}

	oldCosts := tpOld + actOld + waitingCost
	return newCosts - oldCosts
}

// SPDX-License-Identifier: MIT
package costs

import (
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/tour"
)

// TransportCost is the pure routing-matrix oracle consulted by the schedule
// feature. Implementations may be matrix-backed (time-independent) or
// time-dependent; travelTime.Direction selects which end of the query is
// anchored (spec.md §4.C).
type TransportCost interface {
	Duration(profile model.Profile, from, to model.Location, travelTime model.TravelTime) model.Duration
	Distance(profile model.Profile, from, to model.Location, travelTime model.TravelTime) model.Distance
	Cost(profile model.Profile, from, to model.Location, travelTime model.TravelTime) model.Cost
}

// ActivityCost is the pure service-time/service-cost oracle. EstimateArrival
// is the inverse of EstimateDeparture and backs the schedule feature's
// backward (latest-arrival) sweep and its hard-activity feasibility check, so
// a custom implementation (e.g. one accounting for reserved/break time) can
// change backward-sweep behavior without either caller knowing.
type ActivityCost interface {
	EstimateDeparture(actor *model.Actor, a *tour.Activity, arrival model.Timestamp) model.Timestamp
	EstimateArrival(actor *model.Actor, a *tour.Activity, departure model.Timestamp) model.Timestamp
	Cost(actor *model.Actor, a *tour.Activity, arrival model.Timestamp) model.Cost

	// WaitingRate exposes the per-second waiting rate an implementation
	// charges for actor, so callers outside this package (schedule's soft
	// cost, which must credit back predicted waiting at the next stop) can
	// price waiting time without duplicating the rate resolution.
	WaitingRate(actor *model.Actor) model.Cost
}

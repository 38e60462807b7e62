// SPDX-License-Identifier: MIT
package schedule

import (
	"github.com/katalvlaran/vrpcore/costs"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/routestate"
)

// RouteState keys this feature owns.
const (
	LatestArrival routestate.Key = 100 + iota
	Waiting
	TotalDistance
	TotalDuration
)

// Reason codes this feature owns (spec.md §7: "each feature owns a
// disjoint block of reason codes").
const (
	// CodeShiftExceeded is the hard barrier: the shift cannot possibly
	// reach prev, target, or next in time.
	CodeShiftExceeded = 100
	// CodeLatestArrivalExceeded is the hard (route-ending) transport check failure.
	CodeLatestArrivalExceeded = 101
	// CodeTimeWindowMissed is a soft (try-next-position) time-window miss.
	CodeTimeWindowMissed = 102
)

// Feature is component E. FastService, when true, applies the
// zero-duration/single-span short-circuit described in SPEC_FULL.md's
// supplemented features (grounded on vrp-core's fast_service.rs): such
// jobs skip the waiting-credit computation in SoftActivityCost, since they
// cannot consume predicted wait time at the next stop.
type Feature struct {
	Transport   costs.TransportCost
	Activity    costs.ActivityCost
	FastService bool
}

// profileOf resolves the routing Profile for a RouteContext's actor. Kept as
// a function so alternate actor-to-profile mappings can be substituted
// without touching the propagation logic.
func profileOf(actor *model.Actor) model.Profile { return actor.Vehicle.Profile }

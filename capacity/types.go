// SPDX-License-Identifier: MIT
package capacity

import "github.com/katalvlaran/vrpcore/routestate"

// RouteState keys this feature owns.
const (
	CurrentCapacity routestate.Key = 200 + iota
	MaxPastCapacity
	MaxFutureCapacity
	ReloadIntervals
)

// Reason codes this feature owns (spec.md §7).
const (
	// CodeCapacityPastExceeded is the hard (stopped) rejection: inserting
	// here would make some already-committed earlier point of the route
	// overloaded.
	CodeCapacityPastExceeded = 200
	// CodeCapacityFutureExceeded is the hard (stopped) rejection: inserting
	// here would overload some point later in the route that cannot be
	// avoided regardless of what else gets inserted after this one.
	CodeCapacityFutureExceeded = 201
	// CodeCapacityExceeded is the soft (try-next-position) rejection: this
	// exact position overloads the vehicle, but a later leg might not.
	CodeCapacityExceeded = 202
	// CodeReloadMisplaced rejects a reload marker at the very start or
	// very end of the tour: it must sit between two job activities.
	CodeReloadMisplaced = 203
)

// Interval is one contiguous, capacity-independent stretch of a route,
// bounded by reload-marker activities (spec.md §4.F). Both ends are
// inclusive tour indices. A route without reloads yields exactly one
// Interval spanning the whole tour.
type Interval struct {
	Start int
	End   int
}

// DefaultReloadThreshold is the fraction of vehicle capacity (by
// MaxPastCapacity at the route's end) that forces a route's remaining
// reload markers into play (spec.md §4.F).
const DefaultReloadThreshold = 0.9

// Feature is component F: the load propagator. ReloadThreshold of zero
// falls back to DefaultReloadThreshold.
type Feature struct {
	ReloadThreshold float64
}

func (f *Feature) threshold() float64 {
	if f.ReloadThreshold <= 0 {
		return DefaultReloadThreshold
	}
	return f.ReloadThreshold
}

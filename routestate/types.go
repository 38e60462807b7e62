// SPDX-License-Identifier: MIT
package routestate

import "github.com/katalvlaran/vrpcore/tour"

// Key is a small integer tag reserved by a feature for one piece of cached
// state. Features own disjoint blocks of these (see package schedule's
// LatestArrival/Waiting/TotalDistance/TotalDuration and package capacity's
// CurrentCapacity/MaxPastCapacity/MaxFutureCapacity/ReloadIntervals).
type Key int

type activityKey struct {
	ref tour.ActivityRef
	tag Key
}

// State holds a route-scoped map (key -> value) and an activity-scoped map
// ((activity identity, key) -> value). Both are untyped (any); callers
// type-assert on read, matching the teacher's fast-path/fallback style of
// keeping storage generic and pushing type safety to call sites.
type State struct {
	route    map[Key]any
	activity map[activityKey]any
}

// New returns an empty State.
func New() *State {
	return &State{route: make(map[Key]any), activity: make(map[activityKey]any)}
}

// Clone returns a shallow copy sharing no mutable map with the receiver —
// used by the RouteContext copy-on-write clone (package solution): reads
// against the clone see the parent's values until the clone's first write,
// at which point solution.RouteContext has already deep-cloned State so
// this method is only ever called once per clone lifetime.
func (s *State) Clone() *State {
	out := &State{
		route:    make(map[Key]any, len(s.route)),
		activity: make(map[activityKey]any, len(s.activity)),
	}
	for k, v := range s.route {
		out.route[k] = v
	}
	for k, v := range s.activity {
		out.activity[k] = v
	}
	return out
}

// SPDX-License-Identifier: MIT
package routestate

import "github.com/katalvlaran/vrpcore/tour"

// GetRouteState returns the route-scoped value for key, if present.
func (s *State) GetRouteState(key Key) (any, bool) {
	v, ok := s.route[key]
	return v, ok
}

// PutRouteState sets the route-scoped value for key.
func (s *State) PutRouteState(key Key, value any) {
	s.route[key] = value
}

// GetActivityState returns the value cached for (ref, key). A ref taken
// before the owning tour's last structural mutation never matches — the
// caller simply treats that as "not cached" and recomputes.
func (s *State) GetActivityState(ref tour.ActivityRef, key Key) (any, bool) {
	v, ok := s.activity[activityKey{ref: ref, tag: key}]
	return v, ok
}

// PutActivityState caches value for (ref, key).
func (s *State) PutActivityState(ref tour.ActivityRef, key Key, value any) {
	s.activity[activityKey{ref: ref, tag: key}] = value
}

// RemoveActivityStates drops every key cached for ref (all tags).
func (s *State) RemoveActivityStates(ref tour.ActivityRef) {
	for k := range s.activity {
		if k.ref == ref {
			delete(s.activity, k)
		}
	}
}

// ResetActivityStates discards the entire activity-scoped map — used by
// accept_route_state hooks (package feature) to recompute wholesale after
// a structural change, rather than pruning entry by entry.
func (s *State) ResetActivityStates() {
	s.activity = make(map[activityKey]any)
}

// AllKeys returns every route-scoped key currently populated.
func (s *State) AllKeys() []Key {
	out := make([]Key, 0, len(s.route))
	for k := range s.route {
		out = append(out, k)
	}
	return out
}

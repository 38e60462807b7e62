// SPDX-License-Identifier: MIT
// Package solution implements component I: RouteContext (a Route plus its
// cached RouteState, clone-on-write), SolutionContext (the required /
// ignored / unassigned / locked job buckets plus the ordered route list),
// and Registry (the actor pool).
//
// RouteContext's clone-on-write behavior is the "shadow context" spec.md
// §9 calls for: CloneShallow shares the underlying Tour/State with its
// parent; the first call to EnsureOwned (which callers make before
// mutating) deep-copies both exactly once, so a shadow that a permutation
// attempt (package insertion) never mutates costs no copy.
package solution

// SPDX-License-Identifier: MIT
// Package routestate implements component B: a cache mapping
// (activity identity, key) -> typed value, plus a route-scoped map keyed
// by tag alone.
//
// Activity identity is tour.ActivityRef (generation, position), not a
// pointer: a lookup against a stale ref (taken before the owning tour's
// last structural mutation) simply misses, which is how this package
// realizes the "invalidated by deep-copy or reallocation" contract of
// spec.md §3 without any explicit invalidation pass.
package routestate

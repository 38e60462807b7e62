// SPDX-License-Identifier: MIT
// Package capacity implements component F: the load propagator. It
// maintains CurrentCapacity, MaxPastCapacity and MaxFutureCapacity per
// activity, split into ReloadIntervals — contiguous stretches of a route
// bounded by reload-marker activities, each propagated independently so a
// multi-trip route never confuses "aboard now" with "aboard this leg".
//
// Grounded on vrp-core's legacy construction/constraints/capacity.rs for
// the per-activity fold (current/max_past/max_future), generalized from its
// single-interval fold to the interval-scoped fold spec.md §4.F describes,
// and on vrp-core's route_intervals.rs for the marker-split and
// promote/prune solution-state bookkeeping.
package capacity

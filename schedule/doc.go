// SPDX-License-Identifier: MIT
// Package schedule implements component E: the time propagator. It
// maintains each activity's Schedule (arrival/departure) via a forward
// pass, and two backward-propagated caches — LatestArrival and Waiting —
// used by the hard time-window check and the soft waiting-credit cost.
//
// Forward pass, hard check, and soft cost follow spec.md §4.E exactly;
// the backward sweep is grounded on lvlath/dijkstra's relaxation loop in
// spirit (a single right-to-left walk carrying a running triple) even
// though it needs no priority queue — the propagation here is already in
// tour order.
package schedule

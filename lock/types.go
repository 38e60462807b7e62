// SPDX-License-Identifier: MIT

// Package lock implements component G: positional locks tying jobs to a
// specific actor and/or to a position within that actor's tour.
//
// Grounded on vrp-core's legacy construction/constraints/locked_jobs.rs for
// the predicate+position model, generalized to the Order/Position product
// spec.md §4.G names (Any/Sequence/Strict × Any/Departure/Arrival/Fixed).
package lock

import "github.com/katalvlaran/vrpcore/model"

// Order constrains the relative tour order of a LockDetail's Jobs.
type Order uint8

const (
	// OrderAny imposes no ordering between the Detail's Jobs.
	OrderAny Order = iota
	// OrderSequence requires the Detail's Jobs to appear in the given
	// relative order, not necessarily contiguously.
	OrderSequence
	// OrderStrict requires the Detail's Jobs to appear contiguously, in
	// the given relative order.
	OrderStrict
)

// Position constrains where a LockDetail's Jobs sit within the tour.
type Position uint8

const (
	// PositionAny imposes no placement constraint.
	PositionAny Position = iota
	// PositionDeparture pins the Detail's first Job immediately after the
	// tour's start activity.
	PositionDeparture
	// PositionArrival pins the Detail's last Job immediately before the
	// tour's end activity.
	PositionArrival
	// PositionFixed requires the Detail's Jobs strictly between start and
	// end — true of any job activity by construction, so this adds no
	// check beyond Order.
	PositionFixed
)

// LockDetail is one ordered group of Jobs within a Lock, plus how they
// must be ordered and positioned.
type LockDetail struct {
	Order    Order
	Position Position
	Jobs     []model.Job
}

// Lock is a predicate on Actor plus the LockDetails it governs. A Job
// reachable from any Detail.Jobs is "locked" to every Actor satisfying
// Condition.
type Lock struct {
	Condition func(actor *model.Actor) bool
	Details   []LockDetail
}

// Reason codes this feature owns (spec.md §7).
const (
	// CodeActorMismatch is the hard route-level rejection: the Lock's
	// predicate excludes this Actor.
	CodeActorMismatch = 300
	// CodePositionViolated is the hard activity-level rejection: Departure
	// /Arrival pinning is not satisfied at this leg.
	CodePositionViolated = 301
	// CodeOrderViolated is the hard activity-level rejection: Sequence/
	// Strict ordering relative to a sibling Job is not satisfied.
	CodeOrderViolated = 302
)

// errMergeLockedUnlocked vetoes merging a locked Job with an unlocked one
// (spec.md §4.G, §7).
var errMergeLockedUnlocked = lockMergeError{}

type lockMergeError struct{}

func (lockMergeError) Error() string { return "lock: cannot merge a locked job with an unlocked one" }

// SPDX-License-Identifier: MIT

// Package insertion implements component H: given a partial solution and
// one unassigned job, decide whether and where it can be inserted, at
// what cost, trying every route the solution knows about plus one fresh
// route for the next unused Actor the Registry can offer.
//
// Grounded on original_source's construction/heuristics/evaluators.rs: its
// evaluate_job_insertion route fold and analyze_insertion_in_route leg/place
// /time-window walk are the source of the route-then-fresh-actor search and
// its first-wins tie-break, and its evaluate_multi permutation fold over a
// ShadowContext is the source of the Multi shadow-context walk.
package insertion

import (
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

// Position selects which legs of a route bestPlacement considers. Any tries
// every leg; Last restricts the search to the route's trailing leg, the
// placement a caller wants when appending rather than inserting anywhere
// feasible. In the Multi shadow search, relative order between a
// permutation's Singles is kept by the fromLeg index carried from one step
// to the next, not by Position — only the permutation's final step honors
// the caller-supplied Position, every earlier step searches with Any.
type Position uint8

const (
	// Any evaluates every leg of the route.
	Any Position = iota
	// Last evaluates only the route's trailing (possibly open-ended) leg.
	Last
)

// PlannedActivity is one Single's chosen placement, in the order it must
// be spliced into the real route: ascending leg index, each index already
// accounting for every activity spliced before it at apply time (spec.md
// §4.H).
type PlannedActivity struct {
	Index    int
	Activity *tour.Activity
}

// InsertionSuccess is the cheapest feasible placement found for one Job.
// RouteIndex is the index into the SolutionContext's Routes the caller
// passed in, or -1 when the cheapest placement is on a fresh route for
// NewActor (not yet appended to Routes — ApplyInsertion does that).
type InsertionSuccess struct {
	Job        model.Job
	RouteIndex int
	NewActor   *model.Actor
	Activities []PlannedActivity
	Cost       model.Cost
}

// InsertionFailure carries the most informative reason code encountered
// while searching every route (spec.md §7): the evaluator keeps whichever
// non-zero code it saw most recently, so the outer layer can classify why
// a job stayed unassigned.
type InsertionFailure struct {
	Code int
}

// InsertionResult is exactly one of Success or Failure.
type InsertionResult struct {
	Success *InsertionSuccess
	Failure *InsertionFailure
}

// routeCandidate pairs a RouteContext under evaluation with how to
// identify it afterward: an index into sol.Routes for an existing route,
// or a fresh Actor for a not-yet-created one.
type routeCandidate struct {
	route      *solution.RouteContext
	routeIndex int
	newActor   *model.Actor
}

func resolveLocation(place model.Place, prev *tour.Activity) model.Location {
	if place.Location != nil {
		return *place.Location
	}
	return prev.Location
}

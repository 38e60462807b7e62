// SPDX-License-Identifier: MIT
package feature

import (
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

// MoveKind selects which fields of a MoveContext are meaningful.
type MoveKind uint8

const (
	// MoveRoute is a route-level move: "can job go on this route at all".
	MoveRoute MoveKind = iota
	// MoveActivity is an activity-level move: "can target go between prev and next".
	MoveActivity
)

// MoveContext is the situation under which a constraint or objective is
// evaluated — spec.md §9's tagged-variant encoding of the source's
// MoveContext enum.
type MoveContext struct {
	Kind MoveKind

	// Solution is populated for route-level checks only.
	Solution *solution.SolutionContext
	Route    *solution.RouteContext
	// Job is the job under evaluation, populated for both Kinds: the
	// whole job at route level, and — since Target may not yet be
	// spliced into the tour, so features cannot resolve ownership by
	// scanning it — the job Target's Single belongs to at activity
	// level (package lock's position/order checks need exactly this).
	Job model.Job

	// Activity-level fields. Route is also populated (the owning route).
	Prev   *tour.Activity
	Target *tour.Activity
	Next   *tour.Activity
}

// NewRouteMove builds a MoveContext for a route-level hard/soft check.
func NewRouteMove(sol *solution.SolutionContext, route *solution.RouteContext, job model.Job) MoveContext {
	return MoveContext{Kind: MoveRoute, Solution: sol, Route: route, Job: job}
}

// NewActivityMove builds a MoveContext for an activity-level hard/soft
// check: inserting target (backing job) between prev and next (next is
// nil at an open tour's trailing leg).
func NewActivityMove(route *solution.RouteContext, job model.Job, prev, target, next *tour.Activity) MoveContext {
	return MoveContext{Kind: MoveActivity, Route: route, Job: job, Prev: prev, Target: target, Next: next}
}

// ConstraintViolation is returned by Constraint.Evaluate on infeasibility.
// Stopped true means: abandon this route entirely for this job (a hard
// barrier); false means: this specific position is infeasible but later
// positions in the same route may still work.
type ConstraintViolation struct {
	Code    int
	Stopped bool
}

// Constraint exposes a feasibility check over a MoveContext.
type Constraint interface {
	Evaluate(ctx *MoveContext) *ConstraintViolation
}

// ConstraintFunc adapts a plain function to Constraint.
type ConstraintFunc func(ctx *MoveContext) *ConstraintViolation

// Evaluate implements Constraint.
func (f ConstraintFunc) Evaluate(ctx *MoveContext) *ConstraintViolation { return f(ctx) }

// Merger is the optional merge-veto capability of spec.md §4.D, used by
// outer stages that fuse two near-duplicate jobs. Not every Constraint
// needs an opinion on merges, so it is a separate interface rather than a
// required method — Pipeline.Merge only consults Constraints that
// implement it.
type Merger interface {
	Merge(jobSrc, jobCand model.Job) (model.Job, error)
}

// StateUpdater reacts to structural changes. AcceptRouteState fires after
// any structural change to one route; AcceptSolutionState fires once per
// outer iteration; AcceptInsertion fires after a successful insert and may
// promote/demote jobs between solution buckets (e.g. reload locking,
// package capacity).
type StateUpdater interface {
	AcceptRouteState(route *solution.RouteContext)
	AcceptSolutionState(sol *solution.SolutionContext)
	AcceptInsertion(sol *solution.SolutionContext, routeIdx int, job model.Job)
}

// Objective contributes a soft cost delta at route or activity granularity.
type Objective interface {
	SoftRouteCost(ctx *MoveContext) model.Cost
	SoftActivityCost(ctx *MoveContext) model.Cost
}

// Feature bundles an optional Constraint, StateUpdater, and Objective under
// a name used only for diagnostics.
type Feature struct {
	Name         string
	Constraint   Constraint
	StateUpdater StateUpdater
	Objective    Objective
}

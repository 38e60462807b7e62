// SPDX-License-Identifier: MIT
package vrpcore

import (
	"github.com/katalvlaran/vrpcore/insertion"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/random"
	"github.com/katalvlaran/vrpcore/solution"
)

// InsertionContext is one mutable evaluation session over a Problem: a
// SolutionContext plus the Evaluator and Random source every external
// entry point of spec.md §6 is defined against.
type InsertionContext struct {
	Problem  *Problem
	Solution *solution.SolutionContext
	Random   random.Source

	evaluator *insertion.Evaluator
	bestCost  model.Cost
}

// New returns a fresh InsertionContext over problem: every job required,
// every Actor unused.
func New(problem *Problem, rng random.Source) *InsertionContext {
	registry := solution.NewRegistry(problem.Actors, problem.Config.logger)
	return &InsertionContext{
		Problem:   problem,
		Solution:  solution.New(problem.Jobs, registry),
		Random:    rng,
		evaluator: insertion.NewEvaluator(problem.Pipeline),
	}
}

// NewFromSolution reconstitutes an InsertionContext from a previously
// produced Solution snapshot and its best-known cost (spec.md §6): a fresh
// Registry is built over problem.Actors, and every Actor backing a
// non-empty route is marked used; a route left with no activities is
// simply dropped, returning its Actor to the pool (SPEC_FULL.md's
// repair_solution.rs grounding — an empty route carries no information
// worth keeping). Every job a surviving route carries is removed from
// required; the snapshot's own ignored/unassigned classification is then
// reapplied verbatim. Repair runs once before returning, pulling any job
// whose activities fail the round-trip invariants of spec.md §8 back out
// as unassigned rather than trusting a hand-edited or externally produced
// snapshot blindly.
func NewFromSolution(problem *Problem, snap solution.Solution, bestCost model.Cost, rng random.Source) *InsertionContext {
	registry := solution.NewRegistry(problem.Actors, problem.Config.logger)
	sc := solution.New(problem.Jobs, registry)

	routes := make([]*solution.RouteContext, 0, len(snap.Routes))
	for _, rc := range snap.Routes {
		if rc.Tour().ActivityCount() == 0 {
			continue
		}
		registry.UseActor(rc.Actor)
		routes = append(routes, rc)
		for _, job := range rc.Tour().Jobs() {
			sc.RemoveFromAllBuckets(job)
		}
	}
	sc.Routes = routes

	for job, reason := range snap.Unassigned {
		sc.MarkUnassigned(job, reason)
	}
	for _, job := range snap.Ignored {
		_ = sc.MoveToIgnored(job)
	}

	ctx := &InsertionContext{
		Problem:   problem,
		Solution:  sc,
		Random:    rng,
		evaluator: insertion.NewEvaluator(problem.Pipeline),
		bestCost:  bestCost,
	}
	ctx.Repair()
	return ctx
}

// EvaluateJobInsertion is a pure search over the current Solution: the
// cheapest feasible placement of job, or the most informative reason code
// encountered trying every route (spec.md §4.H, §6). Mutates nothing.
func (ctx *InsertionContext) EvaluateJobInsertion(job model.Job, position insertion.Position) insertion.InsertionResult {
	return ctx.evaluator.EvaluateJobInsertion(job, ctx.Solution, position)
}

// ApplyInsertion commits success against ctx.Solution and returns the
// index into ctx.Solution.Routes the job landed on.
func (ctx *InsertionContext) ApplyInsertion(success *insertion.InsertionSuccess) int {
	return ctx.evaluator.ApplyInsertion(ctx.Solution, success)
}

// BestCost returns the best objective value known so far, carried across a
// NewFromSolution reconciliation. The outer loop is the only writer.
func (ctx *InsertionContext) BestCost() model.Cost { return ctx.bestCost }

// SetBestCost updates the best-known objective value.
func (ctx *InsertionContext) SetBestCost(cost model.Cost) { ctx.bestCost = cost }

// Snapshot is solution.Solution plus the extras parameter spec.md §6's
// toSolution(extras) names: out-of-band data (timing stats, the outer
// loop's own bookkeeping) this package stores but never inspects.
type Snapshot struct {
	solution.Solution
	Extras any
}

// ToSolution snapshots ctx.Solution, attaching extras unexamined.
func (ctx *InsertionContext) ToSolution(extras any) Snapshot {
	return Snapshot{Solution: ctx.Solution.ToSolution(), Extras: extras}
}

// SPDX-License-Identifier: MIT
package insertion

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

// CodeNoFeasiblePosition is the fallback reason code for an InsertionFailure
// that never saw any Constraint reject a specific position — every route was
// simply exhausted (no legs, or every Single out of Places/Spans).
const CodeNoFeasiblePosition = 900

// Evaluator is component H: it owns nothing but a Pipeline, so callers are
// free to share one Evaluator across every job of a Problem.
type Evaluator struct {
	Pipeline *feature.Pipeline
}

// NewEvaluator returns an Evaluator over pipeline.
func NewEvaluator(pipeline *feature.Pipeline) *Evaluator {
	return &Evaluator{Pipeline: pipeline}
}

// placement is the minimal (index, activity, cost) result of searching one
// Single over one route — the unit evaluateSingle and the Multi shadow walk
// both build on.
type placement struct {
	Index    int
	Activity *tour.Activity
	Cost     model.Cost
}

// candidateResult is one candidate route's outcome, written by its own
// goroutine and read back only after every goroutine has returned.
type candidateResult struct {
	success *InsertionSuccess
	code    int
}

// EvaluateJobInsertion is a pure function: it mutates nothing, trying every
// route in sol plus one fresh route for the Registry's next unused Actor,
// and returns the cheapest feasible placement (spec.md §4.H, §6). Candidates
// are evaluated concurrently — each goroutine reads only its own route (a
// Multi job mutates only a shadow clone of it) and the shared read-only
// Pipeline/job, never writing back to
// sol (spec.md §5's "no writes are allowed") — bounded by a
// GOMAXPROCS-sized semaphore so a job with many routes never oversubscribes
// the machine. Selection afterward still walks results in candidate order,
// so ties are broken by first-found regardless of goroutine completion
// order — routes and, within a route, legs/places/spans are walked in a
// fixed order, so the first cost that is not strictly beaten wins (spec.md
// §9's deterministic tie-break).
func (e *Evaluator) EvaluateJobInsertion(job model.Job, sol *solution.SolutionContext, position Position) InsertionResult {
	candidates := e.candidates(sol)
	results := make([]candidateResult, len(candidates))

	g, gctx := errgroup.WithContext(context.Background())
	sem := semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))
	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			results[i] = e.evaluateCandidate(sol, cand, job, position)
			return nil
		})
	}
	_ = g.Wait() // evaluateCandidate never errors; Wait only guards semaphore acquisition

	var best *InsertionSuccess
	lastCode := 0
	for _, res := range results {
		if res.code != 0 {
			lastCode = res.code
		}
		if res.success == nil {
			continue
		}
		if best == nil || res.success.Cost < best.Cost {
			best = res.success
		}
	}

	if best == nil {
		if lastCode == 0 {
			lastCode = CodeNoFeasiblePosition
		}
		return InsertionResult{Failure: &InsertionFailure{Code: lastCode}}
	}
	return InsertionResult{Success: best}
}

// evaluateCandidate is the per-route body EvaluateJobInsertion fans out
// across goroutines: one hard-route check, then the Single or Multi search.
func (e *Evaluator) evaluateCandidate(sol *solution.SolutionContext, cand routeCandidate, job model.Job, position Position) candidateResult {
	routeMove := feature.NewRouteMove(sol, cand.route, job)
	if v := e.Pipeline.EvaluateHardRoute(&routeMove); v != nil {
		return candidateResult{code: v.Code}
	}

	var success *InsertionSuccess
	var code int
	switch job.Kind {
	case model.KindSingle:
		success, code = e.evaluateSingle(cand, job, position)
	case model.KindMulti:
		success, code = e.evaluateMulti(cand, job, position)
	}
	return candidateResult{success: success, code: code}
}

// candidates returns every route currently in sol, plus one bare route for
// the Registry's next unused Actor (routeIndex -1) when one is available.
// The bare route's own state is seeded once up front so its first leg's
// hard-activity check never mistakes "freshly built" for "never propagated".
func (e *Evaluator) candidates(sol *solution.SolutionContext) []routeCandidate {
	out := make([]routeCandidate, 0, len(sol.Routes)+1)
	for i, rc := range sol.Routes {
		out = append(out, routeCandidate{route: rc, routeIndex: i})
	}
	if actor := sol.Registry.Next(); actor != nil {
		rc := bareRoute(actor)
		e.Pipeline.AcceptRouteState(rc)
		out = append(out, routeCandidate{route: rc, routeIndex: -1, newActor: actor})
	}
	return out
}

// bareRoute builds the empty (start, [end]) route a fresh Actor would begin
// from: an end activity is only installed when Detail pins one, leaving the
// tour open otherwise (spec.md §3: an unset end location floats free).
func bareRoute(actor *model.Actor) *solution.RouteContext {
	rc := solution.NewRouteContext(actor)
	shift := actor.Detail.Shift
	start := &tour.Activity{
		Location:   actor.StartLocation(0),
		TimeWindow: shift,
		Schedule:   tour.Schedule{Arrival: shift.Start, Departure: shift.Start},
	}
	_ = rc.Tour().SetStart(start)
	if actor.Detail.End != nil {
		end := &tour.Activity{Location: *actor.Detail.End, TimeWindow: shift}
		_ = rc.Tour().SetEnd(end)
	}
	return rc
}

// evaluateSingle is the Single-job path: one bestPlacement search over the
// whole route.
func (e *Evaluator) evaluateSingle(cand routeCandidate, job model.Job, position Position) (*InsertionSuccess, int) {
	p, code := e.bestPlacement(cand.route, job, job.Single, position, 0)
	if p == nil {
		return nil, code
	}

	routeMove := feature.NewRouteMove(nil, cand.route, job)
	routeCost := e.Pipeline.SoftRouteCost(&routeMove)

	return &InsertionSuccess{
		Job:        job,
		RouteIndex: cand.routeIndex,
		NewActor:   cand.newActor,
		Activities: []PlannedActivity{{Index: p.Index, Activity: p.Activity}},
		Cost:       routeCost + p.Cost,
	}, 0
}

// evaluateMulti is the Multi-job path: every allowed permutation is tried
// against its own shadow RouteContext (spec.md §9's clone-on-write shadow
// context), placing each constituent Single in turn and re-propagating
// state before searching for the next one, so later Singles in the
// permutation see the earlier ones' effect on timing and capacity.
func (e *Evaluator) evaluateMulti(cand routeCandidate, job model.Job, position Position) (*InsertionSuccess, int) {
	lastCode := 0
	var best *InsertionSuccess

	for _, perm := range job.Multi.Permutations {
		shadow := cand.route.CloneShallow()
		activities := make([]PlannedActivity, 0, len(perm))
		var total model.Cost
		fromLeg := 0
		ok := true

		for step, singleIdx := range perm {
			single := job.Multi.Singles[singleIdx]
			stepPosition := Any
			if step == len(perm)-1 {
				stepPosition = position
			}

			p, code := e.bestPlacement(shadow, job, single, stepPosition, fromLeg)
			if p == nil {
				if code != 0 {
					lastCode = code
				}
				ok = false
				break
			}

			shadow.EnsureOwned()
			if err := shadow.Tour().InsertAt(p.Activity, job, p.Index); err != nil {
				ok = false
				break
			}
			e.Pipeline.AcceptRouteState(shadow)

			activities = append(activities, PlannedActivity{Index: p.Index, Activity: p.Activity})
			total += p.Cost
			fromLeg = p.Index
		}

		if !ok {
			continue
		}

		routeMove := feature.NewRouteMove(nil, shadow, job)
		total += e.Pipeline.SoftRouteCost(&routeMove)

		if best == nil || total < best.Cost {
			best = &InsertionSuccess{
				Job:        job,
				RouteIndex: cand.routeIndex,
				NewActor:   cand.newActor,
				Activities: activities,
				Cost:       total,
			}
		}
	}

	if best == nil {
		if lastCode == 0 {
			lastCode = CodeNoFeasiblePosition
		}
		return nil, lastCode
	}
	return best, 0
}

// bestPlacement walks route's legs (restricted to fromLeg onward, and to the
// trailing leg alone when position is Last), every Place of single, and
// every Place's allowed TimeSpans, keeping the cheapest feasible one. A
// Stopped violation abandons the whole route immediately; a non-Stopped one
// only rules out that specific (leg, place, span).
func (e *Evaluator) bestPlacement(route *solution.RouteContext, job model.Job, single *model.Single, position Position, fromLeg int) (*placement, int) {
	legs := route.Tour().Legs()
	lastCode := 0
	var best *placement

legLoop:
	for _, leg := range legs {
		if leg.Index < fromLeg {
			continue
		}
		if position == Last && leg.Next != nil {
			continue
		}

		for placeIdx, place := range single.Places {
			loc := resolveLocation(place, leg.Prev)
			for _, span := range place.Spans {
				target := &tour.Activity{
					Location:   loc,
					Duration:   place.Duration,
					TimeWindow: span.Resolve(route.Actor.Detail.Shift.Start),
					Single:     single,
					PlaceIndex: placeIdx,
				}

				move := feature.NewActivityMove(route, job, leg.Prev, target, leg.Next)
				if v := e.Pipeline.EvaluateHardActivity(&move); v != nil {
					lastCode = v.Code
					if v.Stopped {
						break legLoop
					}
					continue
				}

				cost := e.Pipeline.SoftActivityCost(&move)
				if best == nil || cost < best.Cost {
					best = &placement{Index: leg.Index + 1, Activity: target, Cost: cost}
				}
			}
		}
	}

	if best == nil {
		return nil, lastCode
	}
	return best, 0
}

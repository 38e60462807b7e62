// SPDX-License-Identifier: MIT
package feature

import (
	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
)

// Pipeline is an ordered, fixed list of Features, visited sequentially at
// each evaluation site (spec.md §9: "keep the pipeline as a vector of
// feature descriptors"). State updates compose associatively when features
// touch disjoint RouteState keys; when they do not, this declaration order
// is the deterministic tie-break spec.md §4.D calls for.
type Pipeline struct {
	features []Feature
}

// NewPipeline builds a Pipeline over features, in evaluation order.
func NewPipeline(features ...Feature) *Pipeline {
	return &Pipeline{features: features}
}

// EvaluateHardRoute runs every Feature's route-level Constraint and returns
// on the first violation (spec.md §4.D: "Evaluation at route level returns
// on first violation").
func (p *Pipeline) EvaluateHardRoute(ctx *MoveContext) *ConstraintViolation {
	for _, f := range p.features {
		if f.Constraint == nil {
			continue
		}
		if v := f.Constraint.Evaluate(ctx); v != nil {
			return v
		}
	}
	return nil
}

// EvaluateHardActivity runs every Feature's activity-level Constraint and
// returns on the first violation. The insertion evaluator (package
// insertion) is the one that interprets Stopped to decide whether to
// abandon the route or merely skip this position.
func (p *Pipeline) EvaluateHardActivity(ctx *MoveContext) *ConstraintViolation {
	for _, f := range p.features {
		if f.Constraint == nil {
			continue
		}
		if v := f.Constraint.Evaluate(ctx); v != nil {
			return v
		}
	}
	return nil
}

// SoftRouteCost sums every Feature's route-level Objective contribution.
func (p *Pipeline) SoftRouteCost(ctx *MoveContext) model.Cost {
	var total model.Cost
	for _, f := range p.features {
		if f.Objective != nil {
			total += f.Objective.SoftRouteCost(ctx)
		}
	}
	return total
}

// SoftActivityCost sums every Feature's activity-level Objective contribution.
func (p *Pipeline) SoftActivityCost(ctx *MoveContext) model.Cost {
	var total model.Cost
	for _, f := range p.features {
		if f.Objective != nil {
			total += f.Objective.SoftActivityCost(ctx)
		}
	}
	return total
}

// AcceptRouteState runs every Feature's state updater for a single-route
// structural change, in pipeline order.
func (p *Pipeline) AcceptRouteState(route *solution.RouteContext) {
	for _, f := range p.features {
		if f.StateUpdater != nil {
			f.StateUpdater.AcceptRouteState(route)
		}
	}
}

// AcceptSolutionState runs every Feature's state updater once per outer
// iteration, in pipeline order.
func (p *Pipeline) AcceptSolutionState(sol *solution.SolutionContext) {
	for _, f := range p.features {
		if f.StateUpdater != nil {
			f.StateUpdater.AcceptSolutionState(sol)
		}
	}
}

// AcceptInsertion runs every Feature's state updater after a successful
// insertion, in pipeline order.
func (p *Pipeline) AcceptInsertion(sol *solution.SolutionContext, routeIdx int, job model.Job) {
	for _, f := range p.features {
		if f.StateUpdater != nil {
			f.StateUpdater.AcceptInsertion(sol, routeIdx, job)
		}
	}
}

// Merge runs every Feature's Constraint that implements Merger; a veto does
// not stop the walk. Callers must propagate a returned error rather than
// silently dropping the merge (spec.md §7). Multiple vetoes (rare — most
// pipelines have at most one merge-aware feature) are aggregated with
// go-multierror so no veto reason is lost.
func (p *Pipeline) Merge(jobSrc, jobCand model.Job) (model.Job, error) {
	var errs *multierror.Error
	merged := jobCand
	for _, f := range p.features {
		m, ok := f.Constraint.(Merger)
		if !ok {
			continue
		}
		result, err := m.Merge(jobSrc, merged)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		merged = result
	}
	if errs != nil {
		return model.Job{}, errs.ErrorOrNil()
	}
	return merged, nil
}

// SPDX-License-Identifier: MIT
package lock

import (
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/model"
)

var (
	_ feature.Constraint = (*Feature)(nil)
	_ feature.Merger     = (*Feature)(nil)
)

// jobLock records which Lock+Detail governs a Job, and its 0-based
// position within Detail.Jobs.
type jobLock struct {
	lock   *Lock
	detail *LockDetail
	pos    int
}

// Feature is component G. Build it with NewFeature so the per-Job index it
// needs for O(1) lookups during insertion is built once up front rather
// than scanned on every Evaluate call.
type Feature struct {
	locks []Lock
	byJob map[model.Job]jobLock
}

// NewFeature indexes locks by Job for fast lookup.
func NewFeature(locks []Lock) *Feature {
	f := &Feature{locks: locks, byJob: make(map[model.Job]jobLock)}
	for li := range f.locks {
		l := &f.locks[li]
		for di := range l.Details {
			d := &l.Details[di]
			for pos, job := range d.Jobs {
				f.byJob[job] = jobLock{lock: l, detail: d, pos: pos}
			}
		}
	}
	return f
}

// LockOf returns the jobLock governing job, if any.
func (f *Feature) LockOf(job model.Job) (jobLock, bool) {
	jl, ok := f.byJob[job]
	return jl, ok
}

// IsLocked reports whether job is governed by any Lock.
func (f *Feature) IsLocked(job model.Job) bool {
	_, ok := f.byJob[job]
	return ok
}

// Evaluate implements feature.Constraint.
func (f *Feature) Evaluate(ctx *feature.MoveContext) *feature.ConstraintViolation {
	switch ctx.Kind {
	case feature.MoveRoute:
		return f.evaluateRoute(ctx)
	case feature.MoveActivity:
		return f.evaluateActivity(ctx)
	default:
		return nil
	}
}

// evaluateRoute implements spec.md §4.G: a locked job is accepted only on
// actors matching its predicate.
func (f *Feature) evaluateRoute(ctx *feature.MoveContext) *feature.ConstraintViolation {
	jl, ok := f.LockOf(ctx.Job)
	if !ok {
		return nil
	}
	if jl.lock.Condition != nil && !jl.lock.Condition(ctx.Route.Actor) {
		return &feature.ConstraintViolation{Code: CodeActorMismatch, Stopped: true}
	}
	return nil
}

// evaluateActivity implements spec.md §4.G's position/order checks for
// inserting ctx.Target, when ctx.Job is governed by a Lock.
func (f *Feature) evaluateActivity(ctx *feature.MoveContext) *feature.ConstraintViolation {
	jl, ok := f.LockOf(ctx.Job)
	if !ok {
		return nil
	}

	if v := f.checkPosition(ctx, jl); v != nil {
		return v
	}
	return f.checkOrder(ctx, jl)
}

// checkPosition implements Departure/Arrival pinning; Fixed and Any add no
// constraint here (Fixed's "strictly between start and end" is automatic
// for any job-bearing activity).
func (f *Feature) checkPosition(ctx *feature.MoveContext, jl jobLock) *feature.ConstraintViolation {
	switch jl.detail.Position {
	case PositionDeparture:
		if jl.pos == 0 && !ctx.Prev.HasJob() {
			return nil
		}
		if jl.pos == 0 {
			return &feature.ConstraintViolation{Code: CodePositionViolated, Stopped: true}
		}
	case PositionArrival:
		lastPos := len(jl.detail.Jobs) - 1
		if jl.pos == lastPos {
			if ctx.Next != nil && ctx.Next.HasJob() {
				return &feature.ConstraintViolation{Code: CodePositionViolated, Stopped: true}
			}
		}
	}
	return nil
}

// checkOrder implements Sequence/Strict ordering relative to sibling Jobs
// already placed on the same route. here is the leg index target would
// occupy once spliced in (one past ctx.Prev's current position, the index
// InsertAt receives).
func (f *Feature) checkOrder(ctx *feature.MoveContext, jl jobLock) *feature.ConstraintViolation {
	if jl.detail.Order == OrderAny {
		return nil
	}
	t := ctx.Route.Tour()
	here, ok := t.PositionOf(ctx.Prev)
	if !ok {
		here = t.Total() - 1
	}
	here++ // the index target will occupy once spliced after ctx.Prev

	if jl.pos > 0 {
		prevJob := jl.detail.Jobs[jl.pos-1]
		if idx, found := t.Index(prevJob); found {
			if idx >= here {
				return &feature.ConstraintViolation{Code: CodeOrderViolated, Stopped: true}
			}
			if jl.detail.Order == OrderStrict && idx != here-1 {
				return &feature.ConstraintViolation{Code: CodeOrderViolated, Stopped: true}
			}
		}
	}
	if jl.pos < len(jl.detail.Jobs)-1 {
		nextJob := jl.detail.Jobs[jl.pos+1]
		if idx, found := t.Index(nextJob); found {
			if idx < here {
				return &feature.ConstraintViolation{Code: CodeOrderViolated, Stopped: true}
			}
			if jl.detail.Order == OrderStrict && idx != here {
				return &feature.ConstraintViolation{Code: CodeOrderViolated, Stopped: true}
			}
		}
	}
	return nil
}

// Merge implements feature.Merger: vetoes fusing a locked Job with an
// unlocked one (spec.md §4.G, §7). Two locked Jobs under the same Lock, or
// two unlocked Jobs, are both safe to merge.
func (f *Feature) Merge(jobSrc, jobCand model.Job) (model.Job, error) {
	if f.IsLocked(jobSrc) != f.IsLocked(jobCand) {
		return model.Job{}, errMergeLockedUnlocked
	}
	return jobCand, nil
}

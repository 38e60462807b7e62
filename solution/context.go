// SPDX-License-Identifier: MIT
package solution

import (
	"errors"

	"github.com/hashicorp/go-set/v3"

	"github.com/katalvlaran/vrpcore/model"
)

// Sentinel errors for SolutionContext bucket operations.
var (
	// ErrJobAlreadyLocked indicates a job already in the locked bucket was
	// re-added to required/ignored, which would break the pairwise-disjoint
	// invariant of spec.md §8.
	ErrJobAlreadyLocked = errors.New("solution: job is locked")
)

// SolutionContext is the required / ignored / unassigned / locked job
// buckets plus the ordered list of RouteContexts and the actor Registry.
// The four job buckets are pairwise disjoint at all times (spec.md §8).
type SolutionContext struct {
	required   *set.Set[model.Job]
	ignored    *set.Set[model.Job]
	locked     *set.Set[model.Job]
	unassigned map[model.Job]int

	Routes   []*RouteContext
	Registry *Registry
}

// New returns an empty SolutionContext with every job in required.
func New(jobs []model.Job, registry *Registry) *SolutionContext {
	sc := &SolutionContext{
		required:   set.New[model.Job](len(jobs)),
		ignored:    set.New[model.Job](0),
		locked:     set.New[model.Job](0),
		unassigned: make(map[model.Job]int),
		Registry:   registry,
	}
	sc.required.InsertSlice(jobs)
	return sc
}

// Required returns the jobs still awaiting placement.
func (s *SolutionContext) Required() []model.Job { return s.required.Slice() }

// Ignored returns the jobs excluded from this pass.
func (s *SolutionContext) Ignored() []model.Job { return s.ignored.Slice() }

// Locked returns the jobs pinned to a specific actor/position.
func (s *SolutionContext) Locked() []model.Job { return s.locked.Slice() }

// Unassigned returns the reason code recorded for job, and whether one exists.
func (s *SolutionContext) Unassigned(job model.Job) (int, bool) {
	code, ok := s.unassigned[job]
	return code, ok
}

// UnassignedJobs returns every job currently unassigned, with its reason code.
func (s *SolutionContext) UnassignedJobs() map[model.Job]int {
	out := make(map[model.Job]int, len(s.unassigned))
	for j, c := range s.unassigned {
		out[j] = c
	}
	return out
}

// IsLocked reports whether job is in the locked bucket.
func (s *SolutionContext) IsLocked(job model.Job) bool { return s.locked.Contains(job) }

// MoveToRequired removes job from ignored/unassigned and inserts it into
// required. Returns ErrJobAlreadyLocked if job is locked.
func (s *SolutionContext) MoveToRequired(job model.Job) error {
	if s.locked.Contains(job) {
		return ErrJobAlreadyLocked
	}
	s.ignored.Remove(job)
	delete(s.unassigned, job)
	s.required.Insert(job)
	return nil
}

// MoveToIgnored removes job from required/unassigned and inserts it into ignored.
func (s *SolutionContext) MoveToIgnored(job model.Job) error {
	if s.locked.Contains(job) {
		return ErrJobAlreadyLocked
	}
	s.required.Remove(job)
	delete(s.unassigned, job)
	s.ignored.Insert(job)
	return nil
}

// MoveToLocked removes job from every other bucket and inserts it into locked.
func (s *SolutionContext) MoveToLocked(job model.Job) {
	s.required.Remove(job)
	s.ignored.Remove(job)
	delete(s.unassigned, job)
	s.locked.Insert(job)
}

// UnlockToRequired moves a previously locked job back into required — used
// when a reload marker must be forced back into play (package capacity).
func (s *SolutionContext) UnlockToRequired(job model.Job) {
	s.locked.Remove(job)
	s.required.Insert(job)
}

// MarkUnassigned removes job from required/ignored and records reason as
// its unassigned reason code. A locked job is left untouched and no reason
// is recorded for it.
func (s *SolutionContext) MarkUnassigned(job model.Job, reason int) {
	if s.locked.Contains(job) {
		return
	}
	s.required.Remove(job)
	s.ignored.Remove(job)
	s.unassigned[job] = reason
}

// RemoveFromAllBuckets drops job from required/ignored/unassigned/locked —
// used when a job is successfully placed on a route.
func (s *SolutionContext) RemoveFromAllBuckets(job model.Job) {
	s.required.Remove(job)
	s.ignored.Remove(job)
	s.locked.Remove(job)
	delete(s.unassigned, job)
}

// BucketsDisjoint verifies the pairwise-disjoint invariant of spec.md §8;
// tests and Repair (package vrpcore) use it as a consistency check.
func (s *SolutionContext) BucketsDisjoint() bool {
	seen := make(map[model.Job]int, s.required.Size()+s.ignored.Size()+s.locked.Size()+len(s.unassigned))
	mark := func(js []model.Job) bool {
		for _, j := range js {
			seen[j]++
			if seen[j] > 1 {
				return false
			}
		}
		return true
	}
	if !mark(s.required.Slice()) || !mark(s.ignored.Slice()) || !mark(s.locked.Slice()) {
		return false
	}
	for j := range s.unassigned {
		seen[j]++
		if seen[j] > 1 {
			return false
		}
	}
	return true
}

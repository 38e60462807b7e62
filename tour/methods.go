// SPDX-License-Identifier: MIT
package tour

import "github.com/katalvlaran/vrpcore/model"

// SetStart installs the start activity. Requires an empty tour and a
// job-less activity.
func (t *Tour) SetStart(a *Activity) error {
	if len(t.activities) != 0 {
		return ErrNotEmpty
	}
	if a.HasJob() {
		return ErrActivityHasJob
	}
	t.activities = append(t.activities, a)
	t.generation++
	return nil
}

// SetEnd installs the end activity. Requires a non-empty tour (start
// already set) and a job-less activity.
func (t *Tour) SetEnd(a *Activity) error {
	if len(t.activities) == 0 {
		return ErrEmpty
	}
	if a.HasJob() {
		return ErrActivityHasJob
	}
	if t.isClosed {
		t.activities[len(t.activities)-1] = a
	} else {
		t.activities = append(t.activities, a)
		t.isClosed = true
	}
	t.generation++
	return nil
}

// InsertAt splices a job-bearing activity into the tour at position index
// (0-based; shifts everything at and after index to the right). Requires a
// non-empty tour and a job-bearing activity. job is recorded so Jobs(),
// Contains() and RemoveActivityAt() can resolve the Activity back to its
// Job; a.Single must be one of the Singles in job (InsertAt does not
// deduplicate — callers insert each constituent Single exactly once).
func (t *Tour) InsertAt(a *Activity, job model.Job, index int) error {
	if len(t.activities) == 0 {
		return ErrEmpty
	}
	if !a.HasJob() {
		return ErrActivityNoJob
	}
	if index < 0 || index > len(t.activities) {
		return ErrIndexOutOfRange
	}
	t.activities = append(t.activities, nil)
	copy(t.activities[index+1:], t.activities[index:])
	t.activities[index] = a
	t.jobs[job.ID()] = job
	t.generation++
	return nil
}

// RemoveActivityAt deletes the activity at idx and returns the Job it
// backed. idx must reference a job-bearing activity.
func (t *Tour) RemoveActivityAt(idx int) (model.Job, error) {
	if idx < 0 || idx >= len(t.activities) {
		return model.Job{}, ErrIndexOutOfRange
	}
	a := t.activities[idx]
	if !a.HasJob() {
		return model.Job{}, ErrJobNotFound
	}
	job, ok := t.findOwner(a.Single)
	if !ok {
		return model.Job{}, ErrJobNotFound
	}
	t.activities = append(t.activities[:idx], t.activities[idx+1:]...)
	if !t.stillPresent(job) {
		delete(t.jobs, job.ID())
	}
	t.generation++
	return job, nil
}

// Remove deletes every activity backing job's constituent Singles. Returns
// false if the job has no activity on this tour.
func (t *Tour) Remove(job model.Job) bool {
	ids := singleSet(job)
	removed := false
	out := t.activities[:0:0]
	for _, a := range t.activities {
		if a.HasJob() {
			if _, match := ids[a.Single]; match {
				removed = true
				continue
			}
		}
		out = append(out, a)
	}
	if removed {
		t.activities = out
		delete(t.jobs, job.ID())
		t.generation++
	}
	return removed
}

func singleSet(job model.Job) map[*model.Single]struct{} {
	m := make(map[*model.Single]struct{}, len(job.Singles()))
	for _, s := range job.Singles() {
		m[s] = struct{}{}
	}
	return m
}

// findOwner resolves which tracked Job a Single belongs to.
func (t *Tour) findOwner(single *model.Single) (model.Job, bool) {
	for _, j := range t.jobs {
		for _, s := range j.Singles() {
			if s == single {
				return j, true
			}
		}
	}
	return model.Job{}, false
}

// stillPresent reports whether any activity still backs one of job's Singles.
func (t *Tour) stillPresent(job model.Job) bool {
	ids := singleSet(job)
	for _, a := range t.activities {
		if a.HasJob() {
			if _, ok := ids[a.Single]; ok {
				return true
			}
		}
	}
	return false
}

// AllActivities returns every activity in tour order, including start/end.
// The returned slice aliases internal storage and must not be mutated in
// length; callers may freely mutate Activity fields through it (this is the
// "all_activities_mut" access pattern of spec.md §4.A — Go has no
// mutability qualifier on slices, so one accessor serves both).
func (t *Tour) AllActivities() []*Activity { return t.activities }

// ActivitiesSlice returns the activities in [start, end] inclusive.
func (t *Tour) ActivitiesSlice(start, end int) []*Activity {
	if start < 0 || end >= len(t.activities) || start > end {
		return nil
	}
	return t.activities[start : end+1]
}

// Legs yields adjacent activity pairs. A closed tour yields Total()-1
// pairs. An open tour yields the same Total()-1 pairs plus a trailing
// singleton leg (Next == nil) at index Total()-1, so insertion after the
// last activity is always a candidate position — including on a bare
// (start-only) open tour, where it is the only leg.
func (t *Tour) Legs() []Leg {
	n := len(t.activities)
	if n == 0 {
		return nil
	}
	legs := make([]Leg, 0, n)
	for i := 0; i < n-1; i++ {
		legs = append(legs, Leg{Index: i, Prev: t.activities[i], Next: t.activities[i+1]})
	}
	if !t.isClosed {
		legs = append(legs, Leg{Index: n - 1, Prev: t.activities[n-1], Next: nil})
	}
	return legs
}

// Jobs returns the distinct jobs currently on the tour.
func (t *Tour) Jobs() []model.Job {
	out := make([]model.Job, 0, len(t.jobs))
	for _, j := range t.jobs {
		out = append(out, j)
	}
	return out
}

// RefAt returns the ActivityRef for the activity currently at idx, stamped
// with the tour's current generation.
func (t *Tour) RefAt(idx int) ActivityRef {
	return ActivityRef{Generation: t.generation, Position: idx}
}

// PositionOf returns the index of activity a within the tour, by pointer
// identity. Used to turn a *Activity carried on a MoveContext back into the
// ActivityRef routestate is keyed on.
func (t *Tour) PositionOf(a *Activity) (int, bool) {
	for i, candidate := range t.activities {
		if candidate == a {
			return i, true
		}
	}
	return 0, false
}

// Get returns the activity at idx, or nil if out of range.
func (t *Tour) Get(idx int) *Activity {
	if idx < 0 || idx >= len(t.activities) {
		return nil
	}
	return t.activities[idx]
}

// Start returns the start activity, or nil if not yet set.
func (t *Tour) Start() *Activity {
	if len(t.activities) == 0 {
		return nil
	}
	return t.activities[0]
}

// End returns the end activity, or nil if the tour is not closed.
func (t *Tour) End() *Activity {
	if !t.isClosed {
		return nil
	}
	return t.activities[len(t.activities)-1]
}

// Index returns the position of the first activity backing job, and
// whether one was found.
func (t *Tour) Index(job model.Job) (int, bool) {
	ids := singleSet(job)
	for i, a := range t.activities {
		if a.HasJob() {
			if _, ok := ids[a.Single]; ok {
				return i, true
			}
		}
	}
	return -1, false
}

// Contains reports whether job has any activity on this tour.
func (t *Tour) Contains(job model.Job) bool {
	_, ok := t.jobs[job.ID()]
	return ok
}

// DeepCopy returns an independent Tour: activities are copied (not shared),
// so mutating the copy never affects the original. The generation counter
// resets to 0 — the copy is a fresh lifetime for activity-identity purposes
// (see routestate), matching spec.md §3's "Activity identity ... is
// invalidated by deep-copy".
func (t *Tour) DeepCopy() *Tour {
	out := &Tour{
		activities: make([]*Activity, len(t.activities)),
		jobs:       make(map[string]model.Job, len(t.jobs)),
		isClosed:   t.isClosed,
	}
	for i, a := range t.activities {
		cp := *a
		out.activities[i] = &cp
	}
	for k, v := range t.jobs {
		out.jobs[k] = v
	}
	return out
}

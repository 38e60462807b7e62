// SPDX-License-Identifier: MIT
package tour

import (
	"errors"

	"github.com/katalvlaran/vrpcore/model"
)

// Sentinel errors for Tour structural operations.
var (
	// ErrNotEmpty indicates SetStart was called on a non-empty tour.
	ErrNotEmpty = errors.New("tour: tour is not empty")

	// ErrEmpty indicates SetEnd or InsertAt was called on an empty tour.
	ErrEmpty = errors.New("tour: tour is empty")

	// ErrActivityHasJob indicates SetStart/SetEnd was given a job-bearing activity.
	ErrActivityHasJob = errors.New("tour: start/end activity must not carry a job")

	// ErrActivityNoJob indicates InsertAt was given a job-less activity.
	ErrActivityNoJob = errors.New("tour: inserted activity must carry a job")

	// ErrIndexOutOfRange indicates an index argument fell outside the tour.
	ErrIndexOutOfRange = errors.New("tour: index out of range")

	// ErrJobNotFound indicates RemoveActivityAt referenced a non-job
	// activity or one whose Single belongs to no tracked job.
	ErrJobNotFound = errors.New("tour: job not found on tour")
)

// Schedule is the arrival/departure pair computed by the schedule feature
// for one Activity.
type Schedule struct {
	Arrival   model.Timestamp
	Departure model.Timestamp
}

// Activity is one concrete visit: the Place chosen, its resolved location
// and time window, its schedule, and an optional back-reference to the
// Single it serves. Start and end activities carry a nil Single.
type Activity struct {
	Location   model.Location
	Duration   model.Duration
	TimeWindow model.TimeWindow
	Schedule   Schedule
	Single     *model.Single
	PlaceIndex int
}

// HasJob reports whether this activity backs a Single (false for start/end).
func (a *Activity) HasJob() bool { return a.Single != nil }

// ActivityRef is the arena+index substitute for pointer identity (spec.md
// §9 Design Notes): a position within a tour, stamped with the tour's
// generation at the moment the ref was taken. Any structural mutation
// bumps the generation, so a stale ref — even one whose Position still
// exists — never matches a fresh lookup; routestate relies on exactly this
// to invalidate cached activity-scoped state without bookkeeping of its own.
type ActivityRef struct {
	Generation uint64
	Position   int
}

// Leg is an adjacent pair (prev, next) in a tour, indexed by prev's
// position. Next is nil for the trailing open-end leg of a non-closed tour.
type Leg struct {
	Index int
	Prev  *Activity
	Next  *Activity
}

// Tour is the ordered sequence of Activities for one route.
type Tour struct {
	activities []*Activity
	jobs       map[string]model.Job
	isClosed   bool
	generation uint64
}

// New returns an empty Tour (no start, no end, no jobs).
func New() *Tour {
	return &Tour{jobs: make(map[string]model.Job)}
}

// Generation returns the current structural-mutation counter. routestate
// uses it to detect and drop stale activity-scoped cache entries.
func (t *Tour) Generation() uint64 { return t.generation }

// IsClosed reports whether the tour has an end activity.
func (t *Tour) IsClosed() bool { return t.isClosed }

// Total returns the count of all activities, including start/end.
func (t *Tour) Total() int { return len(t.activities) }

// ActivityCount returns the count of job-bearing (non-terminal) activities.
func (t *Tour) ActivityCount() int {
	n := 0
	for _, a := range t.activities {
		if a.HasJob() {
			n++
		}
	}
	return n
}

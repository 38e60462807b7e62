// SPDX-License-Identifier: MIT
package model

import "github.com/google/uuid"

// Place is one allowed (location, duration, time-spans) choice for a Single.
// A nil Location means "inherit from the previous activity in the tour".
type Place struct {
	Location *Location
	Duration Duration
	Spans    []TimeSpan
}

// NewPlace validates and builds a Place.
func NewPlace(loc *Location, duration Duration, spans []TimeSpan) (Place, error) {
	if len(spans) == 0 {
		return Place{}, ErrEmptyTimeSpans
	}
	return Place{Location: loc, Duration: duration, Spans: spans}, nil
}

// Dimensions is a typed property bag carried by a Single: demand, skills,
// and arbitrary user tags. Demand is optional (nil for reload markers and
// depot-only singles).
type Dimensions struct {
	ID       string
	Demand   *Demand
	Skills   []string
	Reload   bool
	Tags     map[string]any
}

// HasSkills reports whether the dimensions require every skill in required
// to be present.
func (d Dimensions) HasSkills(required []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(d.Skills))
	for _, s := range d.Skills {
		have[s] = struct{}{}
	}
	for _, r := range required {
		if _, ok := have[r]; !ok {
			return false
		}
	}
	return true
}

// Single is one elementary activity specification.
type Single struct {
	Dimensions Dimensions
	Places     []Place
}

// NewSingle validates and builds a Single, assigning a uuid ID when
// Dimensions.ID is empty.
func NewSingle(dims Dimensions, places []Place) (*Single, error) {
	if len(places) == 0 {
		return nil, ErrEmptyPlaces
	}
	if dims.ID == "" {
		dims.ID = uuid.NewString()
	}
	return &Single{Dimensions: dims, Places: places}, nil
}

// Demand returns the Single's demand, or a zero Demand if it carries none
// (e.g. a reload marker or a pure visit with no load).
func (s *Single) Demand() Demand {
	if s.Dimensions.Demand == nil {
		return Demand{}
	}
	return *s.Dimensions.Demand
}

// Multi is an ordered list of Singles plus the subset of permutations of
// its Singles declared feasible. Every constituent Single must be placed
// on the same route in some allowed permutation.
type Multi struct {
	ID          string
	Singles     []*Single
	Permutations [][]int
}

// NewMulti validates and builds a Multi. permutations must be a non-empty
// subset of permutations of [0, len(singles)); pass nil to allow only the
// identity order.
func NewMulti(id string, singles []*Single, permutations [][]int) (*Multi, error) {
	if len(singles) == 0 {
		return nil, ErrEmptyMulti
	}
	if id == "" {
		id = uuid.NewString()
	}
	if permutations == nil {
		identity := make([]int, len(singles))
		for i := range identity {
			identity[i] = i
		}
		permutations = [][]int{identity}
	}
	if len(permutations) == 0 {
		return nil, ErrNoPermutations
	}
	for _, perm := range permutations {
		if len(perm) != len(singles) {
			return nil, ErrNoPermutations
		}
	}
	return &Multi{ID: id, Singles: singles, Permutations: permutations}, nil
}

// JobKind distinguishes the two Job variants.
type JobKind uint8

const (
	// KindSingle marks a Job backed by one Single.
	KindSingle JobKind = iota
	// KindMulti marks a Job backed by a Multi.
	KindMulti
)

// Job is a unit of work: either a Single or a Multi. Jobs are shared and
// immutable once the problem is constructed.
type Job struct {
	Kind   JobKind
	Single *Single
	Multi  *Multi
}

// NewSingleJob wraps a Single as a Job.
func NewSingleJob(s *Single) Job { return Job{Kind: KindSingle, Single: s} }

// NewMultiJob wraps a Multi as a Job.
func NewMultiJob(m *Multi) Job { return Job{Kind: KindMulti, Multi: m} }

// ID returns the underlying Single's or Multi's identifier.
func (j Job) ID() string {
	if j.Kind == KindSingle {
		return j.Single.Dimensions.ID
	}
	return j.Multi.ID
}

// Singles returns every constituent Single of the job, in declaration order.
func (j Job) Singles() []*Single {
	if j.Kind == KindSingle {
		return []*Single{j.Single}
	}
	return j.Multi.Singles
}

// IsReload reports whether the job is (or wholly consists of) reload markers.
func (j Job) IsReload() bool {
	for _, s := range j.Singles() {
		if !s.Dimensions.Reload {
			return false
		}
	}
	return true
}

// TotalDemand sums the demand of every constituent Single. The
// per-activity propagation in package capacity does not use it; it walks
// each Single independently.
func (j Job) TotalDemand() Demand {
	d := Demand{}
	for _, s := range j.Singles() {
		sd := s.Demand()
		d.Pickup.Static = orZero(d.Pickup.Static).Add(orZero(sd.Pickup.Static))
		d.Pickup.Dynamic = orZero(d.Pickup.Dynamic).Add(orZero(sd.Pickup.Dynamic))
		d.Delivery.Static = orZero(d.Delivery.Static).Add(orZero(sd.Delivery.Static))
		d.Delivery.Dynamic = orZero(d.Delivery.Dynamic).Add(orZero(sd.Delivery.Dynamic))
	}
	return d
}

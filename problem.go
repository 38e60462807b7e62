// SPDX-License-Identifier: MIT
package vrpcore

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/vrpcore/capacity"
	"github.com/katalvlaran/vrpcore/costs"
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/lock"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/schedule"
)

// Sentinel errors for Problem construction.
var (
	// ErrNoActors indicates a Problem was built with an empty fleet.
	ErrNoActors = errors.New("vrpcore: problem has no actors")

	// ErrNilTransport indicates a Problem was built with a nil TransportCost.
	ErrNilTransport = errors.New("vrpcore: problem has no transport cost")

	// ErrNilActivity indicates a Problem was built with a nil ActivityCost.
	ErrNilActivity = errors.New("vrpcore: problem has no activity cost")

	// ErrDuplicateJobID indicates two jobs share an ID; wrapped with the
	// offending ID via fmt.Errorf since the sentinel alone does not say
	// which job collided.
	ErrDuplicateJobID = errors.New("vrpcore: duplicate job id")
)

// Problem is the static, immutable input to every InsertionContext: the
// fleet, the jobs awaiting placement, any positional locks, the cost
// oracles, and the resolved Config driving the Pipeline assembled over
// them (spec.md §3, §4).
type Problem struct {
	Jobs   []model.Job
	Actors []*model.Actor
	Locks  []lock.Lock

	Transport costs.TransportCost
	Activity  costs.ActivityCost

	Config   Config
	Pipeline *feature.Pipeline
}

// NewProblem validates jobs/actors/oracles and assembles the Pipeline:
// schedule, then capacity, then lock, in that declaration order — the
// deterministic tie-break order spec.md §4.D calls for when two features
// touch the same position. Every independent validation failure is
// aggregated with go-multierror so a caller sees every problem at once
// rather than fixing them one `New` call at a time (spec.md §7).
func NewProblem(jobs []model.Job, actors []*model.Actor, locks []lock.Lock, transport costs.TransportCost, activity costs.ActivityCost, opts ...Option) (*Problem, error) {
	var errs *multierror.Error
	if len(actors) == 0 {
		errs = multierror.Append(errs, ErrNoActors)
	}
	if transport == nil {
		errs = multierror.Append(errs, ErrNilTransport)
	}
	if activity == nil {
		errs = multierror.Append(errs, ErrNilActivity)
	}

	seen := make(map[string]struct{}, len(jobs))
	for _, j := range jobs {
		id := j.ID()
		if _, dup := seen[id]; dup {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrDuplicateJobID, id))
			continue
		}
		seen[id] = struct{}{}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)

	sched := &schedule.Feature{Transport: transport, Activity: activity, FastService: cfg.fastService}
	cap := &capacity.Feature{ReloadThreshold: cfg.reloadThreshold}
	lk := lock.NewFeature(locks)

	pipeline := feature.NewPipeline(
		feature.Feature{Name: "schedule", Constraint: sched, StateUpdater: sched, Objective: sched},
		feature.Feature{Name: "capacity", Constraint: cap, StateUpdater: cap, Objective: cap},
		feature.Feature{Name: "lock", Constraint: lk},
	)

	return &Problem{
		Jobs:      jobs,
		Actors:    actors,
		Locks:     locks,
		Transport: transport,
		Activity:  activity,
		Config:    cfg,
		Pipeline:  pipeline,
	}, nil
}

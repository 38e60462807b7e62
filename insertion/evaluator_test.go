// SPDX-License-Identifier: MIT
package insertion_test

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/capacity"
	"github.com/katalvlaran/vrpcore/costs"
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/insertion"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/schedule"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

type straightLineTransport struct{}

func (straightLineTransport) Duration(_ model.Profile, from, to model.Location, _ model.TravelTime) model.Duration {
	return model.Duration(absLoc(to - from))
}
func (straightLineTransport) Distance(_ model.Profile, from, to model.Location, _ model.TravelTime) model.Distance {
	return model.Distance(absLoc(to - from))
}
func (straightLineTransport) Cost(model.Profile, model.Location, model.Location, model.TravelTime) model.Cost {
	return 0
}

func absLoc(l model.Location) model.Location {
	if l < 0 {
		return -l
	}
	return l
}

type flatZeroRates struct{}

func (flatZeroRates) VehicleRates(*model.Actor) costs.Rates { return costs.Rates{} }
func (flatZeroRates) DriverRates(*model.Actor) costs.Rates  { return costs.Rates{} }

func newPipeline() *feature.Pipeline {
	sched := &schedule.Feature{
		Transport: straightLineTransport{},
		Activity:  &costs.SimpleActivityCost{Rates: flatZeroRates{}, Mode: costs.DriverAndVehicle},
	}
	cap := &capacity.Feature{}
	return feature.NewPipeline(
		feature.Feature{Name: "schedule", Constraint: sched, StateUpdater: sched, Objective: sched},
		feature.Feature{Name: "capacity", Constraint: cap, StateUpdater: cap, Objective: cap},
	)
}

func singleWithDemand(id string, loc model.Location, change int64) *model.Single {
	d := model.Demand{}
	if change >= 0 {
		d.Pickup.Static = model.VectorLoad{change}
	} else {
		d.Delivery.Static = model.VectorLoad{-change}
	}
	return &model.Single{
		Dimensions: model.Dimensions{ID: id, Demand: &d},
		Places: []model.Place{{
			Location: &loc,
			Spans:    []model.TimeSpan{{Kind: model.SpanWindow, Window: model.TimeWindow{Start: 0, End: 1000}}},
		}},
	}
}

func newActor(cap int64) *model.Actor {
	loc0 := model.Location(0)
	return model.NewActor("v1", model.Vehicle{Capacity: model.VectorLoad{cap}}, model.Driver{},
		model.Detail{Start: &loc0, End: &loc0, Shift: model.TimeWindow{Start: 0, End: 1000}})
}

func TestEvaluator_EvaluateJobInsertion_FillsFreshRoute(t *testing.T) {
	actor := newActor(10)
	registry := solution.NewRegistry([]*model.Actor{actor}, hclog.NewNullLogger())
	job := model.NewSingleJob(singleWithDemand("job", 20, 3))
	sol := solution.New([]model.Job{job}, registry)

	ev := insertion.NewEvaluator(newPipeline())
	result := ev.EvaluateJobInsertion(job, sol, insertion.Any)
	require.NotNil(t, result.Success)
	assert.Equal(t, -1, result.Success.RouteIndex)
	assert.Same(t, actor, result.Success.NewActor)

	idx := ev.ApplyInsertion(sol, result.Success)
	assert.Equal(t, 0, idx)
	require.Len(t, sol.Routes, 1)
	assert.True(t, sol.Routes[0].Tour().Contains(job))
	assert.Empty(t, sol.Required())
}

func TestEvaluator_EvaluateJobInsertion_RejectsOverCapacity(t *testing.T) {
	actor := newActor(2)
	registry := solution.NewRegistry([]*model.Actor{actor}, hclog.NewNullLogger())
	job := model.NewSingleJob(singleWithDemand("job", 20, 5))
	sol := solution.New([]model.Job{job}, registry)

	ev := insertion.NewEvaluator(newPipeline())
	result := ev.EvaluateJobInsertion(job, sol, insertion.Any)
	require.Nil(t, result.Success)
	require.NotNil(t, result.Failure)
	assert.Equal(t, capacity.CodeCapacityFutureExceeded, result.Failure.Code)
}

func TestEvaluator_EvaluateJobInsertion_PrefersExistingRouteOnTie(t *testing.T) {
	actor := newActor(10)
	registry := solution.NewRegistry([]*model.Actor{actor}, hclog.NewNullLogger())
	job := model.NewSingleJob(singleWithDemand("job", 5, 1))
	sol := solution.New([]model.Job{job}, registry)

	pipeline := newPipeline()
	ev := insertion.NewEvaluator(pipeline)

	existing := solution.NewRouteContext(actor)
	require.NoError(t, existing.Tour().SetStart(&tour.Activity{Location: actor.StartLocation(0)}))
	require.NoError(t, existing.Tour().SetEnd(&tour.Activity{Location: actor.EndLocation(0)}))
	pipeline.AcceptRouteState(existing)
	sol.Routes = append(sol.Routes, existing)

	result := ev.EvaluateJobInsertion(job, sol, insertion.Any)
	require.NotNil(t, result.Success)
	assert.Equal(t, 0, result.Success.RouteIndex)
}

func TestEvaluator_EvaluateJobInsertion_PlacesMultiInPermutationOrder(t *testing.T) {
	actor := newActor(10)
	registry := solution.NewRegistry([]*model.Actor{actor}, hclog.NewNullLogger())

	pickup := singleWithDemand("pickup", 10, 2)
	delivery := singleWithDemand("delivery", 30, -2)
	multi, err := model.NewMulti("pickup-delivery", []*model.Single{pickup, delivery}, nil)
	require.NoError(t, err)
	job := model.NewMultiJob(multi)
	sol := solution.New([]model.Job{job}, registry)

	ev := insertion.NewEvaluator(newPipeline())
	result := ev.EvaluateJobInsertion(job, sol, insertion.Any)
	require.NotNil(t, result.Success)
	require.Len(t, result.Success.Activities, 2)
	assert.Less(t, result.Success.Activities[0].Index, result.Success.Activities[1].Index)
	assert.Same(t, pickup, result.Success.Activities[0].Activity.Single)
	assert.Same(t, delivery, result.Success.Activities[1].Activity.Single)

	idx := ev.ApplyInsertion(sol, result.Success)
	route := sol.Routes[idx]
	assert.True(t, route.Tour().Contains(job))
	assert.Equal(t, 4, route.Tour().Total())
}

// SPDX-License-Identifier: MIT
package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/costs"
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/schedule"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

// straightLineTransport treats Location as a position on a line: duration
// and distance are both the absolute difference between two locations,
// independent of travelTime direction.
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

func newZeroActivityCost() *costs.SimpleActivityCost {
	return &costs.SimpleActivityCost{Rates: flatZeroRates{}, Mode: costs.DriverAndVehicle}
}

type flatZeroRates struct{}

func (flatZeroRates) VehicleRates(*model.Actor) costs.Rates { return costs.Rates{} }
func (flatZeroRates) DriverRates(*model.Actor) costs.Rates  { return costs.Rates{} }

func jobActivity(loc model.Location, id string) (*tour.Activity, model.Job) {
	single := &model.Single{Dimensions: model.Dimensions{ID: id}}
	job := model.NewSingleJob(single)
	return &tour.Activity{Location: loc, TimeWindow: model.TimeWindow{Start: 0, End: 1000}, Single: single}, job
}

func buildRoute(t *testing.T, actor *model.Actor, closed bool, locs ...model.Location) *solution.RouteContext {
	t.Helper()
	route := solution.NewRouteContext(actor)
	require.NoError(t, route.Tour().SetStart(&tour.Activity{Location: actor.StartLocation(0)}))
	for i, loc := range locs {
		a, job := jobActivity(loc, "job")
		require.NoError(t, route.Tour().InsertAt(a, job, i+1))
	}
	if closed {
		require.NoError(t, route.Tour().SetEnd(&tour.Activity{Location: actor.EndLocation(0)}))
	}
	route.Tour().Start().Schedule.Departure = actor.Detail.Shift.Start
	return route
}

func latestArrivals(route *solution.RouteContext) []model.Timestamp {
	out := make([]model.Timestamp, 0, route.Tour().ActivityCount())
	for i, a := range route.Tour().AllActivities() {
		if !a.HasJob() {
			continue
		}
		v, _ := route.State().GetActivityState(route.Tour().RefAt(i), schedule.LatestArrival)
		out = append(out, v.(model.Timestamp))
	}
	return out
}

func TestFeature_BackwardPass_MatchesThreeActorScenario(t *testing.T) {
	f := &schedule.Feature{Transport: straightLineTransport{}, Activity: newZeroActivityCost()}

	loc0 := model.Location(0)
	v1 := model.NewActor("v1", model.Vehicle{}, model.Driver{}, model.Detail{Start: &loc0, End: &loc0, Shift: model.TimeWindow{Start: 0, End: 100}})
	route1 := buildRoute(t, v1, true, 10, 20, 30)
	f.AcceptRouteState(route1)
	assert.Equal(t, []model.Timestamp{50, 60, 70}, latestArrivals(route1))

	v2 := model.NewActor("v2", model.Vehicle{}, model.Driver{}, model.Detail{Start: &loc0, End: &loc0, Shift: model.TimeWindow{Start: 0, End: 60}})
	route2 := buildRoute(t, v2, true, 10, 20, 30)
	f.AcceptRouteState(route2)
	assert.Equal(t, []model.Timestamp{10, 20, 30}, latestArrivals(route2))

	loc40 := model.Location(40)
	v3 := model.NewActor("v3", model.Vehicle{}, model.Driver{}, model.Detail{Start: &loc40, Shift: model.TimeWindow{Start: 0, End: 100}})
	route3 := buildRoute(t, v3, false, 10, 20, 30)
	f.AcceptRouteState(route3)
	assert.Equal(t, []model.Timestamp{70, 80, 90}, latestArrivals(route3))
}

func TestFeature_HardActivityCheck_RejectsUnreachableTarget(t *testing.T) {
	f := &schedule.Feature{Transport: straightLineTransport{}, Activity: newZeroActivityCost()}
	loc0 := model.Location(0)
	actor := model.NewActor("v", model.Vehicle{}, model.Driver{}, model.Detail{Start: &loc0, End: &loc0, Shift: model.TimeWindow{Start: 0, End: 5}})
	route := buildRoute(t, actor, true, 10)
	f.AcceptRouteState(route)

	prev := route.Tour().Get(0)
	target, job := jobActivity(50, "late")
	next := route.Tour().Get(len(route.Tour().AllActivities()) - 1)

	move := feature.NewActivityMove(route, job, prev, target, next)
	v := f.Evaluate(&move)
	require.NotNil(t, v)
}

func TestFeature_HardActivityCheck_AcceptsFeasibleInsertion(t *testing.T) {
	f := &schedule.Feature{Transport: straightLineTransport{}, Activity: newZeroActivityCost()}
	loc0 := model.Location(0)
	actor := model.NewActor("v", model.Vehicle{}, model.Driver{}, model.Detail{Start: &loc0, End: &loc0, Shift: model.TimeWindow{Start: 0, End: 100}})
	route := buildRoute(t, actor, true, 10, 30)
	f.AcceptRouteState(route)

	acts := route.Tour().AllActivities()
	prev, next := acts[1], acts[2] // loc 10, loc 30
	target, job := jobActivity(20, "mid")

	move := feature.NewActivityMove(route, job, prev, target, next)
	v := f.Evaluate(&move)
	assert.Nil(t, v)
}

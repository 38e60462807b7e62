// SPDX-License-Identifier: MIT
package capacity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/capacity"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

func demandSingle(id string, change int64) *model.Single {
	d := model.Demand{}
	if change >= 0 {
		d.Pickup.Static = model.VectorLoad{change}
	} else {
		d.Delivery.Static = model.VectorLoad{-change}
	}
	return &model.Single{Dimensions: model.Dimensions{ID: id, Demand: &d}}
}

func buildCapacityRoute(t *testing.T, changes ...int64) *solution.RouteContext {
	t.Helper()
	actor := model.NewActor("v", model.Vehicle{Capacity: model.VectorLoad{10}}, model.Driver{}, model.Detail{})
	route := solution.NewRouteContext(actor)
	require.NoError(t, route.Tour().SetStart(&tour.Activity{}))
	for i, c := range changes {
		s := demandSingle("job", c)
		job := model.NewSingleJob(s)
		require.NoError(t, route.Tour().InsertAt(&tour.Activity{Single: s}, job, i+1))
	}
	require.NoError(t, route.Tour().SetEnd(&tour.Activity{}))
	return route
}

func currentCapacities(route *solution.RouteContext) []int64 {
	out := make([]int64, 0, route.Tour().Total())
	for i := range route.Tour().AllActivities() {
		v, _ := route.State().GetActivityState(route.Tour().RefAt(i), capacity.CurrentCapacity)
		out = append(out, int64(v.(model.VectorLoad)[0]))
	}
	return out
}

func TestFeature_Propagate_MatchesThreeSingleScenario(t *testing.T) {
	route := buildCapacityRoute(t, -1, 2, -3)
	f := &capacity.Feature{}
	f.Propagate(route)

	assert.Equal(t, []int64{4, 3, 5, 2, 2}, currentCapacities(route))
}

func TestFeature_DemandCheck_RejectsOverCapacity(t *testing.T) {
	route := buildCapacityRoute(t, 9)
	f := &capacity.Feature{}
	f.Propagate(route)

	d := model.Demand{Pickup: model.PairLoad{Static: model.VectorLoad{5}}}
	prev := route.Tour().Get(0)
	v := capacity.CheckAcrossIntervals(route, 1, route.Actor.Vehicle.Capacity, d)
	_ = prev
	require.NotNil(t, v)
}

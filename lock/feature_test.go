// SPDX-License-Identifier: MIT
package lock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/lock"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

func buildLockRoute(t *testing.T, actor *model.Actor, jobs ...model.Job) *solution.RouteContext {
	t.Helper()
	route := solution.NewRouteContext(actor)
	require.NoError(t, route.Tour().SetStart(&tour.Activity{}))
	for i, j := range jobs {
		require.NoError(t, route.Tour().InsertAt(&tour.Activity{Single: j.Single}, j, i+1))
	}
	require.NoError(t, route.Tour().SetEnd(&tour.Activity{}))
	return route
}

func singleJob(id string) model.Job {
	return model.NewSingleJob(&model.Single{Dimensions: model.Dimensions{ID: id}})
}

func TestFeature_EvaluateRoute_RejectsActorMismatch(t *testing.T) {
	job := singleJob("locked")
	f := lock.NewFeature([]lock.Lock{{
		Condition: func(a *model.Actor) bool { return a.ID == "only-me" },
		Details:   []lock.LockDetail{{Jobs: []model.Job{job}}},
	}})

	actor := model.NewActor("someone-else", model.Vehicle{}, model.Driver{}, model.Detail{})
	route := solution.NewRouteContext(actor)
	move := feature.NewRouteMove(nil, route, job)
	v := f.Evaluate(&move)
	require.NotNil(t, v)
	assert.Equal(t, lock.CodeActorMismatch, v.Code)
	assert.True(t, v.Stopped)
}

func TestFeature_EvaluateActivity_DepartureRequiresFirstLeg(t *testing.T) {
	job := singleJob("dep")
	f := lock.NewFeature([]lock.Lock{{
		Details: []lock.LockDetail{{Position: lock.PositionDeparture, Jobs: []model.Job{job}}},
	}})

	actor := model.NewActor("v", model.Vehicle{}, model.Driver{}, model.Detail{})
	other := singleJob("other")
	route := buildLockRoute(t, actor, other)

	// Attempt to insert job after "other" (not immediately after start): rejected.
	prevBad := route.Tour().Get(1)
	target := &tour.Activity{Single: job.Single}
	moveBad := feature.NewActivityMove(route, job, prevBad, target, nil)
	v := f.Evaluate(&moveBad)
	require.NotNil(t, v)
	assert.Equal(t, lock.CodePositionViolated, v.Code)

	// Immediately after start: accepted.
	prevGood := route.Tour().Get(0)
	moveGood := feature.NewActivityMove(route, job, prevGood, target, route.Tour().Get(1))
	v = f.Evaluate(&moveGood)
	assert.Nil(t, v)
}

func TestFeature_Merge_VetoesLockedUnlockedPair(t *testing.T) {
	locked := singleJob("locked")
	unlocked := singleJob("free")
	f := lock.NewFeature([]lock.Lock{{Details: []lock.LockDetail{{Jobs: []model.Job{locked}}}}})

	_, err := f.Merge(locked, unlocked)
	require.Error(t, err)

	_, err = f.Merge(unlocked, unlocked)
	require.NoError(t, err)
}

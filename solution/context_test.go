// SPDX-License-Identifier: MIT
package solution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/solution"
	"github.com/katalvlaran/vrpcore/tour"
)

func newJob(t *testing.T, id string) model.Job {
	t.Helper()
	place, err := model.NewPlace(nil, 0, []model.TimeSpan{{Window: model.TimeWindow{Start: 0, End: 10}}})
	require.NoError(t, err)
	single, err := model.NewSingle(model.Dimensions{ID: id}, []model.Place{place})
	require.NoError(t, err)
	return model.NewSingleJob(single)
}

func TestSolutionContext_BucketTransitions(t *testing.T) {
	j1 := newJob(t, "j1")
	sc := solution.New([]model.Job{j1}, solution.NewRegistry(nil, nil))
	require.Len(t, sc.Required(), 1)

	require.NoError(t, sc.MoveToIgnored(j1))
	assert.Empty(t, sc.Required())
	assert.Len(t, sc.Ignored(), 1)

	require.NoError(t, sc.MoveToRequired(j1))
	assert.Len(t, sc.Required(), 1)
	assert.Empty(t, sc.Ignored())

	sc.MoveToLocked(j1)
	assert.True(t, sc.IsLocked(j1))
	assert.Empty(t, sc.Required())
	assert.Equal(t, solution.ErrJobAlreadyLocked, sc.MoveToRequired(j1))

	sc.UnlockToRequired(j1)
	assert.False(t, sc.IsLocked(j1))
	assert.Len(t, sc.Required(), 1)

	sc.MarkUnassigned(j1, 42)
	code, ok := sc.Unassigned(j1)
	require.True(t, ok)
	assert.Equal(t, 42, code)

	assert.True(t, sc.BucketsDisjoint())
}

func TestRegistry_NextUseFree(t *testing.T) {
	loc := model.Location(0)
	detail := model.Detail{Start: &loc, Shift: model.TimeWindow{Start: 0, End: 100}}
	a1 := model.NewActor("a1", model.Vehicle{}, model.Driver{}, detail)
	a2 := model.NewActor("a2", model.Vehicle{}, model.Driver{}, detail)
	reg := solution.NewRegistry([]*model.Actor{a1, a2}, nil)

	first := reg.Next()
	require.NotNil(t, first)
	reg.UseActor(first)

	second := reg.Next()
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)

	reg.FreeActor(first)
	third := reg.Next()
	assert.Equal(t, first.ID, third.ID)
}

func TestRouteContext_CloneOnWrite(t *testing.T) {
	a := model.NewActor("a", model.Vehicle{}, model.Driver{}, model.Detail{})
	rc := solution.NewRouteContext(a)
	require.NoError(t, rc.Tour().SetStart(&tour.Activity{Location: 0}))

	shadow := rc.CloneShallow()
	assert.False(t, shadow.Dirty())
	assert.Same(t, rc.Tour(), shadow.Tour())

	shadow.EnsureOwned()
	assert.True(t, shadow.Dirty())
	assert.NotSame(t, rc.Tour(), shadow.Tour())
}

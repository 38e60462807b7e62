// SPDX-License-Identifier: MIT
package tour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/tour"
)

func loc(v int) *model.Location {
	l := model.Location(v)
	return &l
}

func jobActivity(t *testing.T, id string, l int) (*tour.Activity, model.Job) {
	t.Helper()
	place, err := model.NewPlace(loc(l), 0, []model.TimeSpan{{Window: model.TimeWindow{Start: 0, End: 1000}}})
	require.NoError(t, err)
	single, err := model.NewSingle(model.Dimensions{ID: id}, []model.Place{place})
	require.NoError(t, err)
	return &tour.Activity{Location: model.Location(l), Single: single}, model.NewSingleJob(single)
}

func TestTour_SetStartSetEnd(t *testing.T) {
	tr := tour.New()
	start := &tour.Activity{Location: 0}
	require.NoError(t, tr.SetStart(start))
	assert.Equal(t, tour.ErrNotEmpty, tr.SetStart(start))

	end := &tour.Activity{Location: 0}
	require.NoError(t, tr.SetEnd(end))
	assert.True(t, tr.IsClosed())
	assert.Equal(t, 2, tr.Total())
	assert.Equal(t, 0, tr.ActivityCount())
}

func TestTour_InsertAtAndRemove(t *testing.T) {
	tr := tour.New()
	require.NoError(t, tr.SetStart(&tour.Activity{Location: 0}))
	require.NoError(t, tr.SetEnd(&tour.Activity{Location: 0}))

	a1, job1 := jobActivity(t, "j1", 10)
	require.NoError(t, tr.InsertAt(a1, job1, 1))
	assert.True(t, tr.Contains(job1))
	assert.Equal(t, 1, tr.ActivityCount())

	idx, ok := tr.Index(job1)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	removed := tr.Remove(job1)
	assert.True(t, removed)
	assert.False(t, tr.Contains(job1))
	assert.Equal(t, 0, tr.ActivityCount())
}

func TestTour_Legs_ClosedVsOpen(t *testing.T) {
	closed := tour.New()
	require.NoError(t, closed.SetStart(&tour.Activity{Location: 0}))
	a1, job1 := jobActivity(t, "j1", 10)
	require.NoError(t, closed.InsertAt(a1, job1, 1))
	require.NoError(t, closed.SetEnd(&tour.Activity{Location: 0}))
	legs := closed.Legs()
	require.Len(t, legs, 2)
	for _, l := range legs {
		assert.NotNil(t, l.Next)
	}

	open := tour.New()
	require.NoError(t, open.SetStart(&tour.Activity{Location: 0}))
	a2, job2 := jobActivity(t, "j2", 10)
	require.NoError(t, open.InsertAt(a2, job2, 1))
	openLegs := open.Legs()
	require.Len(t, openLegs, 2)
	assert.Nil(t, openLegs[len(openLegs)-1].Next)
}

func TestTour_Legs_BareOpenTourYieldsSingleton(t *testing.T) {
	bare := tour.New()
	require.NoError(t, bare.SetStart(&tour.Activity{Location: 0}))
	legs := bare.Legs()
	require.Len(t, legs, 1)
	assert.Equal(t, 0, legs[0].Index)
	assert.Nil(t, legs[0].Next)
}

func TestTour_DeepCopyIsIndependent(t *testing.T) {
	tr := tour.New()
	require.NoError(t, tr.SetStart(&tour.Activity{Location: 0}))
	a1, job1 := jobActivity(t, "j1", 10)
	require.NoError(t, tr.InsertAt(a1, job1, 1))

	clone := tr.DeepCopy()
	clone.Get(1).Schedule.Arrival = 99

	assert.NotEqual(t, clone.Get(1).Schedule.Arrival, tr.Get(1).Schedule.Arrival)
	assert.Equal(t, tr.Total(), clone.Total())
}

func TestTour_RefAt_InvalidatesOnMutation(t *testing.T) {
	tr := tour.New()
	require.NoError(t, tr.SetStart(&tour.Activity{Location: 0}))
	ref := tr.RefAt(0)
	a1, job1 := jobActivity(t, "j1", 10)
	require.NoError(t, tr.InsertAt(a1, job1, 1))
	assert.NotEqual(t, ref.Generation, tr.RefAt(0).Generation)
}

// SPDX-License-Identifier: MIT
package routestate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vrpcore/routestate"
	"github.com/katalvlaran/vrpcore/tour"
)

const keyLatestArrival routestate.Key = 1

func TestState_RouteScoped(t *testing.T) {
	s := routestate.New()
	_, ok := s.GetRouteState(keyLatestArrival)
	assert.False(t, ok)

	s.PutRouteState(keyLatestArrival, 42.0)
	v, ok := s.GetRouteState(keyLatestArrival)
	assert.True(t, ok)
	assert.Equal(t, 42.0, v)
}

func TestState_ActivityScoped_StaleRefMisses(t *testing.T) {
	s := routestate.New()
	ref := tour.ActivityRef{Generation: 1, Position: 2}
	s.PutActivityState(ref, keyLatestArrival, 7.0)

	v, ok := s.GetActivityState(ref, keyLatestArrival)
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	stale := tour.ActivityRef{Generation: 2, Position: 2}
	_, ok = s.GetActivityState(stale, keyLatestArrival)
	assert.False(t, ok)
}

func TestState_Clone_IsIndependent(t *testing.T) {
	s := routestate.New()
	ref := tour.ActivityRef{Generation: 1, Position: 0}
	s.PutActivityState(ref, keyLatestArrival, 1.0)

	clone := s.Clone()
	clone.PutActivityState(ref, keyLatestArrival, 2.0)

	v, _ := s.GetActivityState(ref, keyLatestArrival)
	cv, _ := clone.GetActivityState(ref, keyLatestArrival)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 2.0, cv)
}

func TestState_ResetActivityStates(t *testing.T) {
	s := routestate.New()
	ref := tour.ActivityRef{Generation: 1, Position: 0}
	s.PutActivityState(ref, keyLatestArrival, 1.0)
	s.ResetActivityStates()
	_, ok := s.GetActivityState(ref, keyLatestArrival)
	assert.False(t, ok)
}

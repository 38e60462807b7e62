// SPDX-License-Identifier: MIT
package costs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/costs"
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/tour"
)

type flatRates struct{ vehicle, driver costs.Rates }

func (f flatRates) VehicleRates(*model.Actor) costs.Rates { return f.vehicle }
func (f flatRates) DriverRates(*model.Actor) costs.Rates  { return f.driver }

func TestSimpleActivityCost_DepartureAndWaiting(t *testing.T) {
	rates := flatRates{
		vehicle: costs.Rates{PerWaitingTime: 1, PerServiceTime: 2},
		driver:  costs.Rates{PerWaitingTime: 1, PerServiceTime: 1},
	}
	cc := &costs.SimpleActivityCost{Rates: rates, Mode: costs.DriverAndVehicle}

	a := &tour.Activity{Duration: 5, TimeWindow: model.TimeWindow{Start: 10, End: 100}}
	dep := cc.EstimateDeparture(nil, a, 3)
	assert.Equal(t, model.Timestamp(15), dep) // max(3,10)+5

	cost := cc.Cost(nil, a, 3)
	// waiting = 10-3 = 7, rate 2 (vehicle+driver) = 14; service = 5, rate 3 = 15; total 29
	assert.Equal(t, model.Cost(29), cost)
}

func TestSimpleActivityCost_VehicleOnlyMode(t *testing.T) {
	rates := flatRates{
		vehicle: costs.Rates{PerWaitingTime: 1, PerServiceTime: 2},
		driver:  costs.Rates{PerWaitingTime: 10, PerServiceTime: 10},
	}
	cc := &costs.SimpleActivityCost{Rates: rates, Mode: costs.VehicleOnly}
	a := &tour.Activity{Duration: 1, TimeWindow: model.TimeWindow{Start: 0, End: 100}}
	cost := cc.Cost(nil, a, 0)
	assert.Equal(t, model.Cost(2), cost)
}

func TestSimpleActivityCost_EstimateArrivalIsInverse(t *testing.T) {
	rates := flatRates{vehicle: costs.Rates{}, driver: costs.Rates{}}
	cc := &costs.SimpleActivityCost{Rates: rates}
	a := &tour.Activity{Duration: 5, TimeWindow: model.TimeWindow{Start: 0, End: 100}}
	dep := cc.EstimateDeparture(nil, a, 20)
	require.Equal(t, model.Timestamp(25), dep)
	arr := cc.EstimateArrival(nil, a, dep)
	assert.Equal(t, model.Timestamp(20), arr)
}

// SPDX-License-Identifier: MIT
package costs

import (
	"github.com/katalvlaran/vrpcore/model"
	"github.com/katalvlaran/vrpcore/tour"
)

// CostMode resolves the Open Question in spec.md §9: whether soft activity
// cost should combine driver and vehicle rates or charge the vehicle rate
// alone. Both paths are kept; callers pick one via SimpleActivityCost.Mode.
type CostMode uint8

const (
	// DriverAndVehicle sums driver and vehicle waiting/service rates.
	DriverAndVehicle CostMode = iota
	// VehicleOnly charges only the vehicle's rates.
	VehicleOnly
)

// Rates are the per-second costs of waiting and performing service, for
// either the vehicle or the driver.
type Rates struct {
	PerWaitingTime model.Cost
	PerServiceTime model.Cost
}

// Add sums two rate sets (used to combine vehicle+driver rates).
func (r Rates) Add(o Rates) Rates {
	return Rates{PerWaitingTime: r.PerWaitingTime + o.PerWaitingTime, PerServiceTime: r.PerServiceTime + o.PerServiceTime}
}

// RateLookup resolves an Actor to its vehicle and driver Rates. Problem
// construction supplies one implementation keyed off Vehicle.ID/Driver.ID;
// ActivityCost itself stays a pure function of whatever RateLookup returns.
type RateLookup interface {
	VehicleRates(actor *model.Actor) Rates
	DriverRates(actor *model.Actor) Rates
}

// SimpleActivityCost is the default ActivityCost: departure is
// max(arrival, place.time.start) + place.duration, and cost charges
// waiting (time between arrival and service start) plus the service
// duration itself, at the rates CostMode selects.
type SimpleActivityCost struct {
	Rates RateLookup
	Mode  CostMode
}

var _ ActivityCost = (*SimpleActivityCost)(nil)

func (c *SimpleActivityCost) rates(actor *model.Actor) Rates {
	v := c.Rates.VehicleRates(actor)
	if c.Mode == VehicleOnly {
		return v
	}
	return v.Add(c.Rates.DriverRates(actor))
}

// EstimateDeparture implements ActivityCost.
func (c *SimpleActivityCost) EstimateDeparture(actor *model.Actor, a *tour.Activity, arrival model.Timestamp) model.Timestamp {
	start := a.TimeWindow.Start
	wait := arrival
	if start > wait {
		wait = start
	}
	return wait + model.Timestamp(a.Duration)
}

// EstimateArrival implements ActivityCost: the inverse of EstimateDeparture,
// used by the backward (latest-arrival) sweep. Given a deadline departure
// must not exceed, the latest feasible arrival is departure - duration,
// capped at the activity's own window end — a generous deadline never buys
// arrival more room than the window itself allows.
func (c *SimpleActivityCost) EstimateArrival(actor *model.Actor, a *tour.Activity, departure model.Timestamp) model.Timestamp {
	arrival := departure - model.Timestamp(a.Duration)
	if arrival > a.TimeWindow.End {
		return a.TimeWindow.End
	}
	return arrival
}

// WaitingRate implements ActivityCost.
func (c *SimpleActivityCost) WaitingRate(actor *model.Actor) model.Cost {
	return c.rates(actor).PerWaitingTime
}

// Cost implements ActivityCost: waiting-time cost plus service-time cost.
func (c *SimpleActivityCost) Cost(actor *model.Actor, a *tour.Activity, arrival model.Timestamp) model.Cost {
	rates := c.rates(actor)
	waiting := model.Duration(0)
	if a.TimeWindow.Start > arrival {
		waiting = model.Duration(a.TimeWindow.Start - arrival)
	}
	return model.Cost(waiting)*rates.PerWaitingTime + model.Cost(a.Duration)*rates.PerServiceTime
}

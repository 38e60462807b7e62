// SPDX-License-Identifier: MIT
package model

import "github.com/google/uuid"

// Vehicle is the physical unit performing a shift: its capacity and the
// routing profile it travels under.
type Vehicle struct {
	ID       string
	Profile  Profile
	Capacity Load
}

// Driver identifies who operates the Vehicle for a Detail; drivers carry
// their own cost rates when the cost mode (vrpcore.WithDriverCostMode) is
// costs.DriverAndVehicle.
type Driver struct {
	ID string
}

// Detail fixes one shift: optional start/end locations and the shift's
// time window. Actors with an equal Detail may be pooled (see
// solution.Registry).
type Detail struct {
	Start    *Location
	End      *Location
	Shift    TimeWindow
}

// Equal reports whether two Details denote the same shift shape, allowing
// Registry to pool their Actors.
func (d Detail) Equal(o Detail) bool {
	if d.Shift != o.Shift {
		return false
	}
	locEq := func(a, b *Location) bool {
		if a == nil || b == nil {
			return a == b
		}
		return *a == *b
	}
	return locEq(d.Start, o.Start) && locEq(d.End, o.End)
}

// Actor is a (Vehicle, Driver, Detail) triple operating a single shift.
type Actor struct {
	ID      string
	Vehicle Vehicle
	Driver  Driver
	Detail  Detail
}

// NewActor builds an Actor, assigning a uuid ID when none is supplied.
func NewActor(id string, vehicle Vehicle, driver Driver, detail Detail) *Actor {
	if id == "" {
		id = uuid.NewString()
	}
	return &Actor{ID: id, Vehicle: vehicle, Driver: driver, Detail: detail}
}

// StartLocation returns the Detail's fixed start location, or fallback if the
// Detail leaves it unfixed (no start means "wherever the first job is").
func (a *Actor) StartLocation(fallback Location) Location {
	if a.Detail.Start != nil {
		return *a.Detail.Start
	}
	return fallback
}

// EndLocation returns the Detail's fixed end location, or fallback if the
// Detail leaves it unfixed.
func (a *Actor) EndLocation(fallback Location) Location {
	if a.Detail.End != nil {
		return *a.Detail.End
	}
	return fallback
}

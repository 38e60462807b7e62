// SPDX-License-Identifier: MIT
package costs

import (
	"github.com/katalvlaran/lvlath/matrix"

	"github.com/katalvlaran/vrpcore/model"
)

// MatrixTransportCost is a time-independent TransportCost backed by one
// lvlath/matrix.Matrix per Profile: duration and distance share one
// matrix, scaled by a per-profile speed, and cost applies a per-profile
// per-distance rate; there is no fixed per-route cost. Distances below takes
// whichever matrix.Matrix implementation the caller built, Dense or
// otherwise, and reads it only through the matrix.Matrix interface (no
// *matrix.Dense fast path).
type MatrixTransportCost struct {
	// Distances holds one distance matrix per Profile; missing profiles
	// fall back to Distances[0].
	Distances map[model.Profile]matrix.Matrix
	// SpeedByProfile converts a distance unit to a duration unit
	// (duration = distance / speed); zero or missing defaults to 1.
	SpeedByProfile map[model.Profile]float64
	// PerDistanceCost scales distance into Cost; missing profiles default to 1.
	PerDistanceCost map[model.Profile]model.Cost
}

var _ TransportCost = (*MatrixTransportCost)(nil)

func (m *MatrixTransportCost) matrixFor(profile model.Profile) matrix.Matrix {
	if mm, ok := m.Distances[profile]; ok {
		return mm
	}
	return m.Distances[0]
}

func (m *MatrixTransportCost) raw(profile model.Profile, from, to model.Location) float64 {
	mm := m.matrixFor(profile)
	if mm == nil {
		return 0
	}
	v, err := mm.At(int(from), int(to))
	if err != nil {
		return 0
	}
	return v
}

// Distance implements TransportCost. travelTime is accepted for interface
// symmetry; this implementation is time-independent so it is unused.
func (m *MatrixTransportCost) Distance(profile model.Profile, from, to model.Location, _ model.TravelTime) model.Distance {
	return model.Distance(m.raw(profile, from, to))
}

// Duration implements TransportCost.
func (m *MatrixTransportCost) Duration(profile model.Profile, from, to model.Location, _ model.TravelTime) model.Duration {
	speed := m.SpeedByProfile[profile]
	if speed <= 0 {
		speed = 1
	}
	return model.Duration(m.raw(profile, from, to) / speed)
}

// Cost implements TransportCost.
func (m *MatrixTransportCost) Cost(profile model.Profile, from, to model.Location, _ model.TravelTime) model.Cost {
	rate, ok := m.PerDistanceCost[profile]
	if !ok {
		rate = 1
	}
	return model.Cost(m.raw(profile, from, to)) * rate
}

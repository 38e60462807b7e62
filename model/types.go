// SPDX-License-Identifier: MIT
package model

import "errors"

// Sentinel errors for model construction and validation.
var (
	// ErrEmptyPlaces indicates a Single was built with no Places.
	ErrEmptyPlaces = errors.New("model: single has no places")

	// ErrEmptyTimeSpans indicates a Place was built with no allowed TimeSpans.
	ErrEmptyTimeSpans = errors.New("model: place has no time spans")

	// ErrInvalidTimeWindow indicates start > end for a TimeWindow.
	ErrInvalidTimeWindow = errors.New("model: time window start after end")

	// ErrEmptyMulti indicates a Multi was built with no constituent Singles.
	ErrEmptyMulti = errors.New("model: multi has no singles")

	// ErrNoPermutations indicates a Multi's allowed-permutation set is empty
	// for a non-empty Single list.
	ErrNoPermutations = errors.New("model: multi has no allowed permutations")
)

// Location is an opaque index into the routing matrix.
type Location int

// Timestamp is a point in time, seconds since the planning horizon's epoch.
type Timestamp float64

// Duration is an elapsed span in seconds.
type Duration float64

// Distance is a scalar distance in matrix units.
type Distance float64

// Cost is a scalar monetary/penalty cost.
type Cost float64

// Profile selects a routing matrix among several (e.g. truck vs. bike).
type Profile int

// TimeWindow is a closed interval [Start, End] with Start <= End.
type TimeWindow struct {
	Start Timestamp
	End   Timestamp
}

// NewTimeWindow validates and builds a TimeWindow.
func NewTimeWindow(start, end Timestamp) (TimeWindow, error) {
	if start > end {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{Start: start, End: end}, nil
}

// Contains reports whether t lies within the window, inclusive.
func (w TimeWindow) Contains(t Timestamp) bool {
	return t >= w.Start && t <= w.End
}

// Intersects reports whether the two windows overlap (inclusive).
func (w TimeWindow) Intersects(o TimeWindow) bool {
	return w.Start <= o.End && o.Start <= w.End
}

// TimeSpanKind distinguishes an absolute window from a shift-relative offset.
type TimeSpanKind uint8

const (
	// SpanWindow is an absolute TimeWindow.
	SpanWindow TimeSpanKind = iota
	// SpanOffset is a TimeWindow resolved against the actor's shift start.
	SpanOffset
)

// TimeSpan is either an absolute Window or a shift-relative Offset.
type TimeSpan struct {
	Kind   TimeSpanKind
	Window TimeWindow
}

// Resolve returns the absolute TimeWindow this span denotes given the
// actor's shift start. For SpanWindow the span is already absolute.
func (s TimeSpan) Resolve(shiftStart Timestamp) TimeWindow {
	if s.Kind == SpanWindow {
		return s.Window
	}
	return TimeWindow{Start: s.Window.Start + shiftStart, End: s.Window.End + shiftStart}
}

// TravelDirection selects which end of a transport query is anchored.
type TravelDirection uint8

const (
	// Departure anchors the query at a known departure time, asking for arrival.
	Departure TravelDirection = iota
	// Arrival anchors the query at a known arrival time, asking for departure.
	Arrival
)

// TravelTime carries a TravelDirection and its anchor timestamp.
type TravelTime struct {
	Direction TravelDirection
	At        Timestamp
}

// AtDeparture builds a departure-anchored TravelTime.
func AtDeparture(t Timestamp) TravelTime { return TravelTime{Direction: Departure, At: t} }

// AtArrival builds an arrival-anchored TravelTime.
func AtArrival(t Timestamp) TravelTime { return TravelTime{Direction: Arrival, At: t} }

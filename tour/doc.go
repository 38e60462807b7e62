// SPDX-License-Identifier: MIT
// Package tour implements component A of the insertion engine: the ordered
// sequence of Activities that makes up one vehicle's route.
//
// Tour owns its Activities; every structural mutation (SetStart, SetEnd,
// InsertAt, Remove, RemoveActivityAt) bumps the Tour's generation counter,
// which routestate uses to invalidate cached per-activity state without
// needing activity pointer identity to survive a deep copy (see §9 of the
// spec this package realizes: arena+index in place of pointer-keyed state).
package tour

// SPDX-License-Identifier: MIT
// Package model defines the primitive data types shared across vrpcore:
// locations, time windows, demands, jobs, and actors.
//
// Types here are constructed once per problem and never mutated — Jobs,
// Singles, and Actors are shared immutably across the whole system
// (see routestate, tour, and solution for the mutable layers built on
// top of them).
package model

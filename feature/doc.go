// SPDX-License-Identifier: MIT
// Package feature implements component D: the constraint/feature pipeline
// that composes hard feasibility tests, soft cost contributions, and
// stateful recompute hooks.
//
// A Feature bundles an optional Constraint, StateUpdater, and Objective.
// MoveContext is a tagged variant (spec.md §9: "Represent MoveContext ...
// as sum types") rather than a trait-object hierarchy: Kind selects which
// fields are meaningful, matching the Route{solution,route,job} /
// Activity{route,activity_ctx} split of spec.md §4.D.
package feature

// SPDX-License-Identifier: MIT

// Package vrpcore assembles components A–I into the five external entry
// points a constructive-insertion heuristic drives a Problem through:
// New/NewFromSolution to obtain an InsertionContext, EvaluateJobInsertion
// to price a candidate placement, ApplyInsertion to commit it, and
// ToSolution to snapshot the result back out (spec.md §6).
//
// The package itself holds no outer-loop search logic — no regret
// heuristics, no ruin-and-recreate, no metaheuristic acceptance criteria.
// It owns exactly the boundary between a Problem's static input and one
// SolutionContext's mutable state: Config resolves the Open Questions
// (driver+vehicle vs. vehicle-only soft cost, the capacity feature's
// reload threshold, schedule's fast-service short-circuit) into an
// immutable value via functional Options, and Problem assembles the
// Constraint/Objective/StateUpdater Pipeline those resolved values drive.
package vrpcore

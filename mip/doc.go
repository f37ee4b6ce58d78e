// Package mip defines the solver boundary for 0/1 integer linear programs
// with lazy constraints, and ships a pure-Go exact reference backend behind
// that boundary.
//
// # Boundary
//
// Model construction happens before Optimize: AddBinaryVar creates one
// binary decision variable with an objective coefficient, AddConstr adds a
// linear constraint over existing variables. During the search the solver
// reports every integer-feasible candidate to the registered Callback,
// synchronously and exactly once per candidate, handing it two capabilities:
//
//   - Candidate — read the candidate's value for a variable (valid only
//     while the callback is executing);
//   - CutPool — append lazy constraints, valid for the whole feasible
//     region, that join the constraint pool for the remainder of the search.
//
// The callback must not touch the model through any other path; the
// construction API is reserved for the pre-solve phase. If the callback
// returns an error the solve aborts and the error propagates — callback
// problems are never swallowed, since a corrupted cut could make the model
// incorrectly infeasible or prune valid solutions.
//
// A candidate that none of its freshly added cuts excludes is accepted as
// the new incumbent when it improves the objective; otherwise the search
// resumes with the cuts in force.
//
// # Reference backend
//
// Optimize runs a depth-first branch-and-bound over the binary variables:
// deterministic static branching order (ascending objective coefficient,
// index tiebreak), incremental constraint activity bounds for feasibility
// pruning, trail-based propagation of forced assignments, objective bound
// pruning against the incumbent, and a cooperative time limit checked
// sparsely (every 4096 node events). Worst case is exponential by design —
// the backend targets the small instances this module samples; larger runs
// belong to an external solver implementing the same boundary.
//
// Determinism: identical models and options produce identical searches,
// candidate sequences and results.
package mip

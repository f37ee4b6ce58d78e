// Package subtour is the lazy subtour-elimination engine for TSP
// branch-and-cut: given the candidate 0/1 edge assignment the solver reports
// at an integer-feasible node, decompose it into its vertex-disjoint cycles,
// identify the shortest one, and emit the cutting constraint that forbids
// that exact vertex subset from forming an isolated cycle again.
//
// Pipeline, run once per callback invocation:
//
//  1. Extract — build a fresh symmetric boolean candidate matrix S with
//     S[u][v] = (value(x_uv) > 0.5).
//  2. VerifyDegrees — defensive check of the degree-2 invariant the
//     upstream constraints guarantee; a violation is a logic error,
//     surfaced as ErrDegenerateCandidate and never recovered from.
//  3. ShortestCycle — walk S as a union of disjoint cycles, report the one
//     with fewest vertices; a full n-vertex cycle means the candidate is a
//     Hamiltonian tour and no violation exists.
//  4. Cut — for a cycle of length ℓ < n, build Σ_{u<v ∈ cycle} x_uv ≤ ℓ−1.
//
// Eliminator bundles the pipeline behind the mip.Callback contract: exactly
// zero or one cut per invocation per tour. Every invocation allocates its
// own candidate matrix and keeps no state across invocations, so a solver
// that parallelizes its search may drive distinct invocations re-entrantly.
//
// Costs O(n²) per invocation; candidate solutions are sparse in time
// (callback frequency), not in size, so this is cheap where it matters.
package subtour
